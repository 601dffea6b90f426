package repository

// Collection names in the hosted record store.
const (
	CollectionMoods            = "moods"
	CollectionBinauralSessions = "binaural_sessions"
	CollectionDeepWorkSessions = "deep_work_sessions"
	CollectionVisualizations   = "visualizations"
	CollectionMindfulnessLogs  = "mindfulness_logs"
	CollectionExerciseLogs     = "exercise_logs"
	CollectionGoals            = "goals"
	CollectionJournalEntries   = "journal_entries"
)
