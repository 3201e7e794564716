package navigator

import (
	"context"

	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
)

// Repository defines the storage contract for support contacts.
type Repository interface {
	List(ctx context.Context) ([]contact.Contact, error)
	Get(ctx context.Context, id string) (contact.Contact, error)
	Upsert(ctx context.Context, c contact.Contact) (bool, error)
	Delete(ctx context.Context, id string) error
}
