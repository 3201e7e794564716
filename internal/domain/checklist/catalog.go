package checklist

import (
	"slices"
	"sort"
)

// Item categories.
const (
	CategorySocial    = "social"
	CategoryDigital   = "digital"
	CategoryContent   = "content"
	CategoryThinking  = "thinking"
	CategoryValues    = "values"
	CategoryEmotional = "emotional"
)

// Item is a fixed checklist catalog entry.
type Item struct {
	ID          string
	Text        string
	Explanation string
	Category    string
}

var catalog = [...]Item{
	{
		ID:          "c1",
		Text:        "Sudden change in friend groups or social isolation",
		Explanation: "Withdrawal from longtime friends or sudden new peer groups can indicate identity shifts or external influence.",
		Category:    CategorySocial,
	},
	{
		ID:          "c2",
		Text:        "Increased secrecy about online activities",
		Explanation: "Hiding screens, using encrypted apps excessively, or refusing to discuss online interactions may signal concerning content consumption.",
		Category:    CategoryDigital,
	},
	{
		ID:          "c3",
		Text:        "New interest in extremist symbols, memes, or language",
		Explanation: "Unfamiliar logos, coded language, or memes associated with extremist groups should be taken seriously.",
		Category:    CategoryContent,
	},
	{
		ID:          "c4",
		Text:        "Us vs. them mentality or conspiracy thinking",
		Explanation: "Increasingly rigid worldviews that divide people into absolute categories can be early warning signs.",
		Category:    CategoryThinking,
	},
	{
		ID:          "c5",
		Text:        "Rejection of previously held values or beliefs",
		Explanation: "Sudden dismissal of family values, educational institutions, or democratic principles.",
		Category:    CategoryValues,
	},
	{
		ID:          "c6",
		Text:        "Justification of violence or hatred toward groups",
		Explanation: "Any rhetoric that dehumanizes or advocates harm against identifiable groups is a red flag.",
		Category:    CategoryThinking,
	},
	{
		ID:          "c7",
		Text:        "Consuming media from questionable sources exclusively",
		Explanation: "Relying solely on fringe websites, channels, or forums while dismissing mainstream or verified sources.",
		Category:    CategoryContent,
	},
	{
		ID:          "c8",
		Text:        "Changes in mood: increased anger or hopelessness",
		Explanation: "Persistent negative emotions can make individuals vulnerable to extremist narratives offering simple answers.",
		Category:    CategoryEmotional,
	},
}

// Size is the number of items in the catalog.
const Size = len(catalog)

// Catalog returns a copy of the checklist items in display order.
func Catalog() []Item {
	return slices.Clone(catalog[:])
}

// Lookup returns the catalog item with the given id.
func Lookup(id string) (Item, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ItemsByCategory returns the catalog items in category.
func ItemsByCategory(category string) []Item {
	var out []Item
	for _, it := range catalog {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Categories returns the distinct catalog categories, sorted.
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, it := range catalog {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out
}
