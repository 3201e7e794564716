package contact

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Audience roles a contact serves. RoleAll matches every requested role.
const (
	RoleParent       = "parent"
	RoleTeacher      = "teacher"
	RoleSocialWorker = "social_worker"
	RoleAll          = "all"
)

// MaxZipCodes is the maximum number of postal codes per contact.
const MaxZipCodes = 512

// IsValidRole reports whether r is one of the known audience roles.
func IsValidRole(r string) bool {
	switch r {
	case RoleParent, RoleTeacher, RoleSocialWorker, RoleAll:
		return true
	}
	return false
}

// Fields carries the raw attributes of a support contact.
type Fields struct {
	ID          string
	Name        string
	Role        string
	Region      string
	ZipCodes    []string
	Phone       string
	Email       string
	Website     string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contact is a Help Navigator support contact (immutable value object).
type Contact struct {
	id          string
	name        string
	role        string
	region      string
	zipCodes    []string
	phone       string
	email       string
	website     string
	description string
	category    string
	createdAt   time.Time
	updatedAt   time.Time
}

// New validates and creates a Contact.
func New(f Fields) (Contact, error) {
	if strings.TrimSpace(f.ID) == "" {
		return Contact{}, fmt.Errorf("contact ID is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		return Contact{}, fmt.Errorf("name is required")
	}
	if !IsValidRole(f.Role) {
		return Contact{}, fmt.Errorf("invalid role %q", f.Role)
	}
	if len(f.ZipCodes) > MaxZipCodes {
		return Contact{}, fmt.Errorf("too many zip codes (max %d)", MaxZipCodes)
	}
	for _, z := range f.ZipCodes {
		if strings.TrimSpace(z) == "" {
			return Contact{}, fmt.Errorf("zip codes must not be empty")
		}
	}
	return Reconstruct(f), nil
}

// Reconstruct creates a Contact without validation (storage hydration).
func Reconstruct(f Fields) Contact {
	return Contact{
		id:          f.ID,
		name:        f.Name,
		role:        f.Role,
		region:      f.Region,
		zipCodes:    slices.Clone(f.ZipCodes),
		phone:       f.Phone,
		email:       f.Email,
		website:     f.Website,
		description: f.Description,
		category:    f.Category,
		createdAt:   f.CreatedAt,
		updatedAt:   f.UpdatedAt,
	}
}

// ID returns the contact identifier.
func (c Contact) ID() string { return c.id }

// Name returns the organisation or person name.
func (c Contact) Name() string { return c.name }

// Role returns the audience role the contact serves.
func (c Contact) Role() string { return c.role }

// Region returns the human-readable service area.
func (c Contact) Region() string { return c.region }

// ZipCodes returns the postal codes or prefixes the contact covers.
func (c Contact) ZipCodes() []string { return c.zipCodes }

// Phone returns the phone number, if any.
func (c Contact) Phone() string { return c.phone }

// Email returns the email address, if any.
func (c Contact) Email() string { return c.email }

// Website returns the website URL, if any.
func (c Contact) Website() string { return c.website }

// Description returns what the contact offers.
func (c Contact) Description() string { return c.description }

// Category returns the kind of service, e.g. hotline or counselling.
func (c Contact) Category() string { return c.category }

// CreatedAt returns the creation time.
func (c Contact) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last modification time.
func (c Contact) UpdatedAt() time.Time { return c.updatedAt }

// Fields returns a copy of the contact attributes.
func (c Contact) Fields() Fields {
	return Fields{
		ID:          c.id,
		Name:        c.name,
		Role:        c.role,
		Region:      c.region,
		ZipCodes:    slices.Clone(c.zipCodes),
		Phone:       c.phone,
		Email:       c.email,
		Website:     c.website,
		Description: c.description,
		Category:    c.category,
		CreatedAt:   c.createdAt,
		UpdatedAt:   c.updatedAt,
	}
}

// SearchFields returns name, region, description and category.
func (c Contact) SearchFields() []string {
	return []string{c.name, c.region, c.description, c.category}
}

// SearchTerms returns nothing: contacts carry no tags.
func (c Contact) SearchTerms() []string { return nil }

// TextField resolves a named string field for ranked matching.
func (c Contact) TextField(name string) (string, bool) {
	switch name {
	case "id":
		return c.id, true
	case "name":
		return c.name, true
	case "role":
		return c.role, true
	case "region":
		return c.region, true
	case "description":
		return c.description, true
	case "category":
		return c.category, true
	default:
		return "", false
	}
}
