package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidRequest signals a request that failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrEntryNotFound signals a missing library entry.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrCategoryNotFound signals a missing category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrGlossaryItemNotFound signals a missing glossary item.
	ErrGlossaryItemNotFound = errors.New("glossary item not found")
	// ErrContactNotFound signals a missing support contact.
	ErrContactNotFound = errors.New("contact not found")
	// ErrSessionNotFound signals a missing or expired checklist session.
	ErrSessionNotFound = errors.New("checklist session not found")

	// ErrUnauthorized signals missing or invalid admin credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
