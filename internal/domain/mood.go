package domain

import "time"

// Mood is the descriptor supplied by a client on check-in.
type Mood struct {
	ID    string `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// MoodEntry is one immutable mood check-in row.
type MoodEntry struct {
	ID        string
	UserID    string
	MoodType  string
	Icon      string
	Label     string
	CreatedAt time.Time
}

// MoodDescriptor is the display-neutral catalog entry for a mood type.
type MoodDescriptor struct {
	Icon        string
	Color       string
	Description string
}

// DefaultMoodTrend is returned by MoodTrend when no entries exist.
const DefaultMoodTrend = "calm"

// neutralMood is the fallback for unrecognized or missing mood types.
var neutralMood = MoodDescriptor{
	Icon:        "help",
	Color:       "#9E9E9E",
	Description: "No mood recorded",
}

var moodCatalog = map[string]MoodDescriptor{
	"happy":    {Icon: "sentiment_very_satisfied", Color: "#FFC107", Description: "Feeling happy"},
	"calm":     {Icon: "self_improvement", Color: "#4CAF50", Description: "Feeling calm"},
	"excited":  {Icon: "celebration", Color: "#FF9800", Description: "Feeling excited"},
	"tired":    {Icon: "bedtime", Color: "#9575CD", Description: "Feeling tired"},
	"sad":      {Icon: "sentiment_dissatisfied", Color: "#64B5F6", Description: "Feeling sad"},
	"anxious":  {Icon: "psychology", Color: "#FF7043", Description: "Feeling anxious"},
	"stressed": {Icon: "bolt", Color: "#EF5350", Description: "Feeling stressed"},
	"angry":    {Icon: "mood_bad", Color: "#E53935", Description: "Feeling angry"},
}

// ResolveMood maps a mood type id to its catalog entry. It never fails:
// unknown or empty types resolve to the neutral descriptor.
func ResolveMood(moodType string) MoodDescriptor {
	if d, ok := moodCatalog[moodType]; ok {
		return d
	}
	return neutralMood
}

// KnownMood reports whether the type id exists in the catalog.
func KnownMood(moodType string) bool {
	_, ok := moodCatalog[moodType]
	return ok
}

// MoodTrend returns the most frequent mood type across the entries. Ties are
// broken by first encounter in slice order. An empty or nil input returns
// DefaultMoodTrend.
func MoodTrend(entries []MoodEntry) string {
	if len(entries) == 0 {
		return DefaultMoodTrend
	}

	counts := make(map[string]int, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, seen := counts[e.MoodType]; !seen {
			order = append(order, e.MoodType)
		}
		counts[e.MoodType]++
	}

	trend := order[0]
	for _, moodType := range order[1:] {
		if counts[moodType] > counts[trend] {
			trend = moodType
		}
	}
	return trend
}
