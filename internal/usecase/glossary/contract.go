package glossary

import (
	"context"

	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
)

// Repository defines the storage contract for glossary items.
type Repository interface {
	List(ctx context.Context) ([]domglossary.Item, error)
	Get(ctx context.Context, id string) (domglossary.Item, error)
	Upsert(ctx context.Context, it domglossary.Item) (bool, error)
	Delete(ctx context.Context, id string) error
}
