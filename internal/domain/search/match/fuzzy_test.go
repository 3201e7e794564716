package match

import (
	"reflect"
	"testing"
)

// record is a minimal FieldSource with one non-string field.
type record struct {
	id    string
	title string
	desc  string
	count int
}

func (r record) TextField(name string) (string, bool) {
	switch name {
	case "title":
		return r.title, true
	case "desc":
		return r.desc, true
	default:
		return "", false
	}
}

func recIDs(rs []record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.id
	}
	return out
}

func TestRank_EmptyQueryReturnsInput(t *testing.T) {
	recs := []record{{id: "a", title: "x"}, {id: "b", title: "y"}}
	for _, q := range []string{"", "   "} {
		got := Rank(recs, q, []string{"title"})
		if !reflect.DeepEqual(got, recs) {
			t.Errorf("Rank(%q) = %v, want input", q, recIDs(got))
		}
	}
}

func TestRank_ExactAboveContains(t *testing.T) {
	recs := []record{
		{id: "contains", title: "A test of things"},
		{id: "exact", title: "Exact Match"},
	}
	got := Rank(recs, "exact match", []string{"title"})
	if len(got) == 0 || got[0].id != "exact" {
		t.Fatalf("expected exact first, got %v", recIDs(got))
	}
	if Score(recs[1], "exact match", []string{"title"}) <= Score(recs[0], "exact match", []string{"title"}) {
		t.Error("exact match must score strictly higher")
	}
}

func TestScore_Tiers(t *testing.T) {
	fields := []string{"title"}
	tests := []struct {
		name  string
		title string
		query string
		want  int
	}{
		{"exact single word", "Memes", "memes", 100 + 10},
		{"prefix", "Memes and more", "memes", 50 + 10},
		{"substring", "About memes", "memes", 25 + 10},
		{"words only", "hate speech online", "online hate", 10 + 10},
		{"one word", "hate speech", "online hate", 10},
		{"exact two words", "Online Hate", "online hate", 100 + 20},
		{"no match", "unrelated", "memes", 0},
		{"empty field", "", "memes", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(record{title: tt.title}, tt.query, fields)
			if got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.title, tt.query, got, tt.want)
			}
		})
	}
}

func TestScore_SumsAcrossFieldsAndSkipsNonString(t *testing.T) {
	r := record{title: "memes", desc: "memes everywhere", count: 3}
	got := Score(r, "memes", []string{"title", "desc", "count", "missing"})
	want := (100 + 10) + (50 + 10)
	if got != want {
		t.Errorf("Score = %d, want %d", got, want)
	}
}

func TestRank_DropsZeroAndSortsDescending(t *testing.T) {
	recs := []record{
		{id: "none", title: "nothing"},
		{id: "sub", title: "the radical path"},
		{id: "prefix", title: "radical ideas"},
		{id: "exact", title: "radical"},
	}
	got := recIDs(Rank(recs, "radical", []string{"title"}))
	want := []string{"exact", "prefix", "sub"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_StableTies(t *testing.T) {
	recs := []record{
		{id: "first", title: "about memes"},
		{id: "second", title: "more memes"},
	}
	got := recIDs(Rank(recs, "memes", []string{"title"}))
	want := []string{"first", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRankScored_KeepsScores(t *testing.T) {
	recs := []record{{id: "a", title: "memes"}}
	got := RankScored(recs, "memes", []string{"title"})
	if len(got) != 1 || got[0].Score != 110 {
		t.Fatalf("RankScored = %+v", got)
	}
	if RankScored(recs, " ", []string{"title"}) != nil {
		t.Error("empty query must return nil")
	}
}
