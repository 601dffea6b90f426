// Package domain contains the record types and pure logic of the wellness
// progress core. Nothing in this package touches the record store.
package domain

import "time"

// BinauralSession is one binaural-beats listening session. Duration and
// completion timestamp are nullable: legacy rows may carry neither.
type BinauralSession struct {
	ID                    string
	UserID                string
	ActualDurationSeconds *int64
	Completed             bool
	CompletedAt           *time.Time
}

// DeepWorkSession is one deep-work timer run. A session counts as finished
// only when EndTime is non-nil; duration is derived as EndTime - StartTime.
type DeepWorkSession struct {
	ID        string
	UserID    string
	StartTime *time.Time
	EndTime   *time.Time
}

// DurationSeconds returns the whole-second duration of the session, or 0
// when either timestamp is missing or the computed duration is not positive.
func (s DeepWorkSession) DurationSeconds() int64 {
	if s.StartTime == nil || s.EndTime == nil {
		return 0
	}
	d := int64(s.EndTime.Sub(*s.StartTime) / time.Second)
	if d <= 0 {
		return 0
	}
	return d
}

// VisualizationSession is one guided visualization session.
type VisualizationSession struct {
	ID              string
	UserID          string
	DurationSeconds *int64
	Completed       bool
	CompletedAt     *time.Time
}

// MindfulnessLog is one logged mindfulness practice.
type MindfulnessLog struct {
	ID              string
	UserID          string
	DurationSeconds *int64
	Completed       bool
	CompletedAt     *time.Time
}
