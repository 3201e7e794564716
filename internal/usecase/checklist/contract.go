package checklist

import (
	"context"

	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
)

// SessionRepository persists checklist sessions.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (domchecklist.Session, bool, error)
	Save(ctx context.Context, s domchecklist.Session) error
	Delete(ctx context.Context, sessionID string) error
}
