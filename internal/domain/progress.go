package domain

// ProgressSummary is the derived output of the summary aggregator. It is
// recomputed on every call and never persisted.
type ProgressSummary struct {
	FocusTimeMinutes        int64 `json:"focusTimeMinutes"`
	MindfulMinutes          int64 `json:"mindfulMinutes"`
	TotalExercisesCompleted int   `json:"totalExercisesCompleted"`
	ActiveDays              int   `json:"activeDays"`
}

// WeekBucket is one (ISO year, week) group of the weekly progress series.
type WeekBucket struct {
	Year  int    `json:"year"`
	Week  int    `json:"week"`
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// ExerciseStats is the derived output of the log-based statistics helpers.
type ExerciseStats struct {
	WeeklyStreak      int            `json:"weeklyStreak"`
	WeeklyProgress    []WeekBucket   `json:"weeklyProgress"`
	ExerciseBreakdown map[string]int `json:"exerciseBreakdown"`
	FocusTimeMinutes  int64          `json:"focusTimeMinutes"`
	MindfulMinutes    int64          `json:"mindfulMinutes"`
	MoodTrend         string         `json:"moodTrend"`
	ActiveGoals       []Goal         `json:"activeGoals"`
}

// WeekDaySlot is one day of the 7-slot mood week grid, oldest first,
// today last.
type WeekDaySlot struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	MoodType string `json:"moodType,omitempty"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Label    string `json:"label,omitempty"`
	HasEntry bool   `json:"hasEntry"`
}
