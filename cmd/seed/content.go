package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
)

// contentFile is the on-disk YAML layout of a seed file.
type contentFile struct {
	Categories []categoryDoc `yaml:"categories"`
	Entries    []entryDoc    `yaml:"entries"`
	Glossary   []glossaryDoc `yaml:"glossary"`
	Contacts   []contactDoc  `yaml:"contacts"`
}

type categoryDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Slug        string `yaml:"slug"`
	Order       int    `yaml:"order"`
}

type entryDoc struct {
	ID          string    `yaml:"id"`
	Category    string    `yaml:"category"`
	Title       string    `yaml:"title"`
	Summary     string    `yaml:"summary"`
	Content     string    `yaml:"content"`
	Tags        []string  `yaml:"tags"`
	Published   *bool     `yaml:"published"`
	Order       int       `yaml:"order"`
	LastUpdated time.Time `yaml:"last_updated"`
}

type glossaryDoc struct {
	ID           string   `yaml:"id"`
	Term         string   `yaml:"term"`
	Meaning      string   `yaml:"meaning"`
	Context      string   `yaml:"context"`
	Examples     string   `yaml:"examples"`
	RelatedTerms []string `yaml:"related_terms"`
}

type contactDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Role        string   `yaml:"role"`
	Region      string   `yaml:"region"`
	ZipCodes    []string `yaml:"zip_codes"`
	Phone       string   `yaml:"phone"`
	Email       string   `yaml:"email"`
	Website     string   `yaml:"website"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
}

// content is a validated seed file.
type content struct {
	categories []category.Category
	entries    []entry.Entry
	glossary   []domglossary.Item
	contacts   []contact.Contact
}

// parseContent decodes and validates a seed file. Every invalid record is
// reported; nothing is returned unless the whole file is valid.
func parseContent(r io.Reader) (content, error) {
	var f contentFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return content{}, fmt.Errorf("decode content: %w", err)
	}

	var (
		out  content
		errs []error
	)
	seen := map[string]struct{}{}
	dup := func(kind, id string) bool {
		key := kind + "/" + id
		if _, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("%s %q: duplicate id", kind, id))
			return true
		}
		seen[key] = struct{}{}
		return false
	}

	catIDs := map[string]struct{}{}
	for _, d := range f.Categories {
		c, err := category.New(d.ID, d.Name, d.Description, d.Slug, d.Order)
		if err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", d.ID, err))
			continue
		}
		if dup("category", d.ID) {
			continue
		}
		catIDs[d.ID] = struct{}{}
		out.categories = append(out.categories, c)
	}

	for _, d := range f.Entries {
		published := true
		if d.Published != nil {
			published = *d.Published
		}
		e, err := entry.New(entry.Fields{
			ID:          d.ID,
			CategoryID:  d.Category,
			Title:       d.Title,
			Summary:     d.Summary,
			Body:        d.Content,
			Tags:        d.Tags,
			Published:   published,
			Order:       d.Order,
			LastUpdated: d.LastUpdated,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %q: %w", d.ID, err))
			continue
		}
		if _, ok := catIDs[d.Category]; !ok {
			errs = append(errs, fmt.Errorf("entry %q: unknown category %q", d.ID, d.Category))
			continue
		}
		if dup("entry", d.ID) {
			continue
		}
		out.entries = append(out.entries, e)
	}

	for _, d := range f.Glossary {
		it, err := domglossary.New(domglossary.Fields{
			ID:           d.ID,
			Term:         d.Term,
			Meaning:      d.Meaning,
			Context:      d.Context,
			Examples:     d.Examples,
			RelatedTerms: d.RelatedTerms,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("glossary %q: %w", d.ID, err))
			continue
		}
		if dup("glossary", d.ID) {
			continue
		}
		out.glossary = append(out.glossary, it)
	}

	for _, d := range f.Contacts {
		c, err := contact.New(contact.Fields{
			ID:          d.ID,
			Name:        d.Name,
			Role:        d.Role,
			Region:      d.Region,
			ZipCodes:    d.ZipCodes,
			Phone:       d.Phone,
			Email:       d.Email,
			Website:     d.Website,
			Description: d.Description,
			Category:    d.Category,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("contact %q: %w", d.ID, err))
			continue
		}
		if dup("contact", d.ID) {
			continue
		}
		out.contacts = append(out.contacts, c)
	}

	if err := errors.Join(errs...); err != nil {
		return content{}, err
	}
	return out, nil
}
