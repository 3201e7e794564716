package match

import (
	"sort"
	"strings"
)

// Per-field score weights. Exact, prefix and substring are mutually exclusive;
// word hits add up independently.
const (
	exactScore     = 100
	prefixScore    = 50
	substringScore = 25
	wordScore      = 10
)

// FieldSource resolves named string fields. ok=false means the field is
// absent or not a string and is skipped.
type FieldSource interface {
	TextField(name string) (value string, ok bool)
}

// Scored pairs a record with its relevance score.
type Scored[T any] struct {
	Record T
	Score  int
}

// Rank returns records with a positive score across fields, sorted by
// descending score. Equal scores keep input order. An empty or
// whitespace-only query returns records unchanged.
func Rank[T FieldSource](records []T, query string, fields []string) []T {
	scored := RankScored(records, query, fields)
	if scored == nil {
		return records
	}
	out := make([]T, len(scored))
	for i, s := range scored {
		out[i] = s.Record
	}
	return out
}

// RankScored is Rank that keeps the scores. Returns nil for an empty query.
func RankScored[T FieldSource](records []T, query string, fields []string) []Scored[T] {
	q := normalize(query)
	if q == "" {
		return nil
	}
	words := strings.Fields(q)

	out := make([]Scored[T], 0, len(records))
	for _, r := range records {
		if s := score(r, q, words, fields); s > 0 {
			out = append(out, Scored[T]{Record: r, Score: s})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Score computes the relevance of a single record. Returns 0 for an empty query.
func Score(r FieldSource, query string, fields []string) int {
	q := normalize(query)
	if q == "" {
		return 0
	}
	return score(r, q, strings.Fields(q), fields)
}

func score(r FieldSource, q string, words, fields []string) int {
	total := 0
	for _, name := range fields {
		v, ok := r.TextField(name)
		if !ok {
			continue
		}
		total += fieldScore(strings.ToLower(v), q, words)
	}
	return total
}

func fieldScore(value, q string, words []string) int {
	s := 0
	switch {
	case value == q:
		s += exactScore
	case strings.HasPrefix(value, q):
		s += prefixScore
	case strings.Contains(value, q):
		s += substringScore
	}
	for _, w := range words {
		if strings.Contains(value, w) {
			s += wordScore
		}
	}
	return s
}
