package earlyhelp

import "github.com/kailas-cloud/earlyhelp/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound             = domain.ErrNotFound
	ErrAlreadyExists        = domain.ErrAlreadyExists
	ErrInvalidRequest       = domain.ErrInvalidRequest
	ErrEntryNotFound        = domain.ErrEntryNotFound
	ErrCategoryNotFound     = domain.ErrCategoryNotFound
	ErrGlossaryItemNotFound = domain.ErrGlossaryItemNotFound
	ErrContactNotFound      = domain.ErrContactNotFound
	ErrSessionNotFound      = domain.ErrSessionNotFound
)
