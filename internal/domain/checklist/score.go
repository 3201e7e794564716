package checklist

import (
	"slices"
	"time"
)

// Level labels a band of the threshold ladder.
type Level string

// Ladder levels, lowest first.
const (
	LevelNone     Level = "none"
	LevelFew      Level = "few"
	LevelSeveral  Level = "several"
	LevelMultiple Level = "multiple"
)

// Progress maps catalog item ids to their checked state. Missing ids are unchecked.
type Progress map[string]bool

// Result is the interpretation of a Progress against the catalog.
type Result struct {
	CheckedCount   int
	TotalCount     int
	Categories     map[string]int
	Level          Level
	Interpretation string
	NextSteps      []string
}

// band is one rung of the ladder; it applies when checked >= minChecked.
type band struct {
	minChecked     int
	level          Level
	interpretation string
	nextSteps      []string
}

// ladder is evaluated top-down; the first band whose minimum is met wins.
var ladder = [...]band{
	{
		minChecked:     5,
		level:          LevelMultiple,
		interpretation: "Multiple warning signs checked. It's important to seek professional support.",
		nextSteps: []string{
			"Reach out to professional support services immediately",
			"Use the Help Navigator to find local resources",
			"Consult with school administration and counselors",
			"Consider involving mental health professionals",
			"Document specific behaviors and statements",
			"Do not confront aggressively—maintain trust",
		},
	},
	{
		minChecked:     3,
		level:          LevelSeveral,
		interpretation: "Several warning signs present. Consider taking action to understand what's happening.",
		nextSteps: []string{
			"Initiate calm, curious conversations",
			"Consult with school counselors or teachers",
			"Review online activity together",
			"Consider professional guidance from the Help Navigator",
			"Document patterns you notice",
		},
	},
	{
		minChecked:     1,
		level:          LevelFew,
		interpretation: "Few warning signs noted. This may be normal adolescent development, but stay attentive.",
		nextSteps: []string{
			"Have open, non-judgmental conversations",
			"Show interest in their online activities",
			"Reinforce media literacy skills",
			"Monitor for changes",
		},
	},
	{
		minChecked:     0,
		level:          LevelNone,
		interpretation: "No warning signs checked. Continue to maintain open communication and stay engaged.",
		nextSteps: []string{
			"Keep communication channels open",
			"Stay informed about digital literacy",
			"Encourage critical thinking skills",
		},
	},
}

// Score evaluates progress against the catalog. Ids outside the catalog are ignored.
func Score(p Progress) Result {
	categories := make(map[string]int)
	checked := 0
	for _, it := range catalog {
		if p[it.ID] {
			checked++
			categories[it.Category]++
		}
	}

	b := bandFor(checked)
	return Result{
		CheckedCount:   checked,
		TotalCount:     Size,
		Categories:     categories,
		Level:          b.level,
		Interpretation: b.interpretation,
		NextSteps:      slices.Clone(b.nextSteps),
	}
}

func bandFor(checked int) band {
	for _, b := range ladder {
		if checked >= b.minChecked {
			return b
		}
	}
	return ladder[len(ladder)-1]
}

// Clean returns a copy of p restricted to catalog ids.
func (p Progress) Clean() Progress {
	out := make(Progress, len(p))
	for id, v := range p {
		if _, ok := Lookup(id); ok {
			out[id] = v
		}
	}
	return out
}

// Session is a persisted, anonymous checklist progress record.
type Session struct {
	ID        string
	Progress  Progress
	UpdatedAt time.Time
}
