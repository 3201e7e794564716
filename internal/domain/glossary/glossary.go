package glossary

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// MaxRelatedTerms is the maximum number of related terms per item.
const MaxRelatedTerms = 32

// Fields carries the raw attributes of a glossary item.
type Fields struct {
	ID           string
	Term         string
	Meaning      string
	Context      string
	Examples     string
	RelatedTerms []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Item is a glossary term (immutable value object).
type Item struct {
	id           string
	term         string
	meaning      string
	context      string
	examples     string
	relatedTerms []string
	createdAt    time.Time
	updatedAt    time.Time
}

// New validates and creates an Item.
func New(f Fields) (Item, error) {
	if strings.TrimSpace(f.ID) == "" {
		return Item{}, fmt.Errorf("glossary item ID is required")
	}
	if strings.TrimSpace(f.Term) == "" {
		return Item{}, fmt.Errorf("term is required")
	}
	if strings.TrimSpace(f.Meaning) == "" {
		return Item{}, fmt.Errorf("meaning is required")
	}
	if len(f.RelatedTerms) > MaxRelatedTerms {
		return Item{}, fmt.Errorf("too many related terms (max %d)", MaxRelatedTerms)
	}
	return Reconstruct(f), nil
}

// Reconstruct creates an Item without validation (storage hydration).
func Reconstruct(f Fields) Item {
	return Item{
		id:           f.ID,
		term:         f.Term,
		meaning:      f.Meaning,
		context:      f.Context,
		examples:     f.Examples,
		relatedTerms: slices.Clone(f.RelatedTerms),
		createdAt:    f.CreatedAt,
		updatedAt:    f.UpdatedAt,
	}
}

// ID returns the item identifier.
func (i Item) ID() string { return i.id }

// Term returns the glossary term.
func (i Item) Term() string { return i.term }

// Meaning returns the plain-language definition.
func (i Item) Meaning() string { return i.meaning }

// Context returns where the term is typically used.
func (i Item) Context() string { return i.context }

// Examples returns usage examples.
func (i Item) Examples() string { return i.examples }

// RelatedTerms returns associated terms.
func (i Item) RelatedTerms() []string { return i.relatedTerms }

// CreatedAt returns the creation time.
func (i Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last modification time.
func (i Item) UpdatedAt() time.Time { return i.updatedAt }

// Fields returns a copy of the item attributes.
func (i Item) Fields() Fields {
	return Fields{
		ID:           i.id,
		Term:         i.term,
		Meaning:      i.meaning,
		Context:      i.context,
		Examples:     i.examples,
		RelatedTerms: slices.Clone(i.relatedTerms),
		CreatedAt:    i.createdAt,
		UpdatedAt:    i.updatedAt,
	}
}

// SearchFields returns term, meaning and context.
func (i Item) SearchFields() []string {
	return []string{i.term, i.meaning, i.context}
}

// SearchTerms returns the related terms.
func (i Item) SearchTerms() []string { return i.relatedTerms }

// TextField resolves a named string field for ranked matching.
func (i Item) TextField(name string) (string, bool) {
	switch name {
	case "id":
		return i.id, true
	case "term":
		return i.term, true
	case "meaning":
		return i.meaning, true
	case "context":
		return i.context, true
	case "examples":
		return i.examples, true
	default:
		return "", false
	}
}
