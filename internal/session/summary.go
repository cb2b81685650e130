package session

import "time"

// SessionSummary holds the data displayed when a lesson ends.
type SessionSummary struct {
	LessonTitle string
	Duration    time.Duration
	Words       int
	Score       int
	Attempts    int
	FinalScore  int
}

// BuildSummary creates a SessionSummary from the current session state.
func BuildSummary(state *SessionState) *SessionSummary {
	end := state.CompletedAt
	if end.IsZero() {
		end = time.Now()
	}
	return &SessionSummary{
		LessonTitle: state.LessonTitle,
		Duration:    end.Sub(state.StartTime),
		Words:       len(state.Words),
		Score:       state.Score,
		Attempts:    state.Attempts,
		FinalScore:  FinalScore(state),
	}
}
