// Package filter provides predicate filters over in-memory content records.
// Every filter returns a new slice and leaves its input untouched; an absent
// criterion returns the input unchanged so filters chain as a logical AND.
package filter

import (
	"slices"
	"sort"
	"strings"
)

// RoleAll is the sentinel role that matches every requested role.
const RoleAll = "all"

// Categorized records belong to a category.
type Categorized interface {
	CategoryID() string
}

// Tagged records carry tags.
type Tagged interface {
	Tags() []string
}

// RoleScoped records serve an audience role.
type RoleScoped interface {
	Role() string
}

// Zoned records cover postal codes.
type Zoned interface {
	ZipCodes() []string
}

// Publishable records can be hidden from readers.
type Publishable interface {
	Published() bool
}

// Ordered records have an explicit position and a title tie-breaker.
type Ordered interface {
	Order() int
	Title() string
}

// ByCategory keeps records whose category equals categoryID.
func ByCategory[T Categorized](records []T, categoryID string) []T {
	if categoryID == "" {
		return records
	}
	return keep(records, func(r T) bool { return r.CategoryID() == categoryID })
}

// ByTags keeps records with at least one tag in tags (case-insensitive).
func ByTags[T Tagged](records []T, tags []string) []T {
	if len(tags) == 0 {
		return records
	}
	wanted := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		wanted[strings.ToLower(t)] = struct{}{}
	}
	return keep(records, func(r T) bool { return HasAnyTag(r.Tags(), wanted) })
}

// ByRole keeps records serving role or RoleAll.
func ByRole[T RoleScoped](records []T, role string) []T {
	if role == "" {
		return records
	}
	return keep(records, func(r T) bool { return MatchesRole(r.Role(), role) })
}

// ByZipCode keeps records with a code matching zip by MatchesZipCode.
func ByZipCode[T Zoned](records []T, zip string) []T {
	if zip == "" {
		return records
	}
	return keep(records, func(r T) bool { return MatchesZipCode(r.ZipCodes(), zip) })
}

// Published keeps published records.
func Published[T Publishable](records []T) []T {
	return keep(records, func(r T) bool { return r.Published() })
}

// HasAnyTag reports whether any of tags, lower-cased, is in wanted.
// wanted keys must already be lower-case.
func HasAnyTag(tags []string, wanted map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := wanted[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}

// MatchesRole reports whether a record role serves the requested role.
func MatchesRole(recordRole, requested string) bool {
	return recordRole == requested || recordRole == RoleAll
}

// MatchesZipCode reports whether any code equals zip or either is a prefix
// of the other. A short query like "10" matches "10115", and a stored
// district prefix like "101" matches a full query "10115".
func MatchesZipCode(codes []string, zip string) bool {
	for _, c := range codes {
		if c == zip || strings.HasPrefix(c, zip) || strings.HasPrefix(zip, c) {
			return true
		}
	}
	return false
}

// UniqueTags returns the sorted set of tags across records (case-sensitive).
func UniqueTags[T Tagged](records []T) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		for _, t := range r.Tags() {
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SortByOrder returns a copy sorted by Order ascending, ties by Title.
func SortByOrder[T Ordered](records []T) []T {
	out := slices.Clone(records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order() != out[j].Order() {
			return out[i].Order() < out[j].Order()
		}
		return out[i].Title() < out[j].Title()
	})
	return out
}

func keep[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
