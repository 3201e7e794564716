package content

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/kailas-cloud/earlyhelp/internal/domain"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
)

var contactColumns = []string{
	"id", "name", "role", "region", "zip_codes", "phone", "email", "website", "description", "category",
	"created_at", "updated_at",
}

// Contacts implements usecase/navigator.Repository.
type Contacts struct {
	q   querier
	now func() time.Time
}

// NewContacts creates a support contact repository.
func NewContacts(q querier) *Contacts {
	return &Contacts{q: q, now: time.Now}
}

// List returns all contacts ordered by name.
func (r *Contacts) List(ctx context.Context) ([]contact.Contact, error) {
	b := psql.Select(contactColumns...).From("support_contacts").OrderBy("name", "id")
	contacts, err := list(ctx, r.q, b, scanContact)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Get returns the contact with id.
func (r *Contacts) Get(ctx context.Context, id string) (contact.Contact, error) {
	b := psql.Select(contactColumns...).From("support_contacts").Where(squirrel.Eq{"id": id})
	var f contact.Fields
	if err := getOne(ctx, r.q, b, domain.ErrContactNotFound, contactDest(&f)...); err != nil {
		return contact.Contact{}, err
	}
	return contact.Reconstruct(f), nil
}

// Upsert inserts or replaces c. Returns true when created.
func (r *Contacts) Upsert(ctx context.Context, c contact.Contact) (bool, error) {
	now := r.now().UTC()
	b := psql.Insert("support_contacts").
		Columns(contactColumns...).
		Values(
			c.ID(), c.Name(), c.Role(), c.Region(), orEmpty(c.ZipCodes()), c.Phone(), c.Email(), c.Website(),
			c.Description(), c.Category(), nowOr(c.CreatedAt(), now), now,
		).
		Suffix(upsertSuffix(
			"name", "role", "region", "zip_codes", "phone", "email", "website", "description", "category",
			"updated_at",
		))

	created, err := upsert(ctx, r.q, b)
	if err != nil {
		return false, fmt.Errorf("upsert contact: %w", err)
	}
	return created, nil
}

// Delete removes the contact with id.
func (r *Contacts) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.q, "support_contacts", id, domain.ErrContactNotFound)
}

func contactDest(f *contact.Fields) []any {
	return []any{
		&f.ID, &f.Name, &f.Role, &f.Region, &f.ZipCodes, &f.Phone, &f.Email, &f.Website, &f.Description,
		&f.Category, &f.CreatedAt, &f.UpdatedAt,
	}
}

func scanContact(row pgx.Row) (contact.Contact, error) {
	var f contact.Fields
	if err := row.Scan(contactDest(&f)...); err != nil {
		return contact.Contact{}, err
	}
	return contact.Reconstruct(f), nil
}
