package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"mindwell-backend/internal/domain"
)

// The log-based helpers below summarize by type tag and convert minutes by
// rounding. The completion-flag summary in service.go floors instead. The
// two families serve different call sites and are deliberately not unified.

// weeklyProgressBuckets caps the weekly progress series.
const weeklyProgressBuckets = 8

// focusLogTypes are the exercise_logs type tags counted as focus time.
var focusLogTypes = map[string]bool{
	domain.ExerciseTypeBinaural: true,
	domain.ExerciseTypeDeepWork: true,
}

// mindfulLogTypes are the exercise_logs type tags counted as mindful minutes.
var mindfulLogTypes = map[string]bool{
	domain.ExerciseTypeVisualization: true,
	domain.ExerciseTypeMindfulness:   true,
}

// WeeklyStreak returns 1 when at least one log falls inside the trailing
// 7 days of now, else 0. Despite the name this is an "active this week"
// flag, not a multi-week streak count; the behavior is kept as-is.
func WeeklyStreak(now time.Time, logs []domain.ExerciseLog) int {
	weekAgo := now.AddDate(0, 0, -7)
	for _, l := range logs {
		if l.CreatedAt.After(weekAgo) {
			return 1
		}
	}
	return 0
}

// WeeklyProgress groups logs by ISO (year, week), counts per group and
// returns the last 8 buckets sorted ascending by week key.
func WeeklyProgress(logs []domain.ExerciseLog) []domain.WeekBucket {
	type weekID struct {
		year, week int
	}
	counts := make(map[weekID]int)
	for _, l := range logs {
		year, week := domain.ISOWeekOf(l.CreatedAt)
		counts[weekID{year, week}]++
	}

	buckets := make([]domain.WeekBucket, 0, len(counts))
	for id, count := range counts {
		buckets = append(buckets, domain.WeekBucket{
			Year:  id.year,
			Week:  id.week,
			Key:   fmt.Sprintf("%04d-W%02d", id.year, id.week),
			Count: count,
		})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Key < buckets[j].Key })

	if len(buckets) > weeklyProgressBuckets {
		buckets = buckets[len(buckets)-weeklyProgressBuckets:]
	}
	return buckets
}

// ExerciseBreakdown counts logs per type tag.
func ExerciseBreakdown(logs []domain.ExerciseLog) map[string]int {
	breakdown := make(map[string]int)
	for _, l := range logs {
		breakdown[l.Type]++
	}
	return breakdown
}

// FocusTimeFromLogs sums the durations of focus-tagged logs (null-safe as
// zero) and converts to minutes by rounding.
func FocusTimeFromLogs(logs []domain.ExerciseLog) int64 {
	return roundedMinutes(sumLogSeconds(logs, focusLogTypes))
}

// MindfulMinutesFromLogs sums the durations of mindful-tagged logs
// (null-safe as zero) and converts to minutes by rounding.
func MindfulMinutesFromLogs(logs []domain.ExerciseLog) int64 {
	return roundedMinutes(sumLogSeconds(logs, mindfulLogTypes))
}

func sumLogSeconds(logs []domain.ExerciseLog, types map[string]bool) int64 {
	var total int64
	for _, l := range logs {
		if !types[l.Type] {
			continue
		}
		if l.DurationSeconds != nil {
			total += *l.DurationSeconds
		}
	}
	return total
}

func roundedMinutes(seconds int64) int64 {
	return int64(math.Round(float64(seconds) / 60.0))
}
