package session

import (
	"math"

	"github.com/abhisek/speakup/internal/store"
)

// FinalScore returns round(100 * Score / len(Words)).
func FinalScore(state *SessionState) int {
	if len(state.Words) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(state.Score) / float64(len(state.Words))))
}

// ClaimProgress returns the progress record to upsert for a completed
// session. It yields a record exactly once; later calls return false.
func ClaimProgress(state *SessionState) (store.ProgressRecord, bool) {
	if state.Phase != PhaseCompleted || state.Save != SaveNone {
		return store.ProgressRecord{}, false
	}
	state.Save = SavePending
	return buildRecord(state), true
}

// RetryProgress reissues the record after a failed upsert. It is only
// available in SaveFailed.
func RetryProgress(state *SessionState) (store.ProgressRecord, bool) {
	if state.Phase != PhaseCompleted || state.Save != SaveFailed {
		return store.ProgressRecord{}, false
	}
	state.Save = SavePending
	state.SaveErr = nil
	return buildRecord(state), true
}

// RecordSaveResult stores the outcome of the pending upsert.
func RecordSaveResult(state *SessionState, err error) {
	if state.Save != SavePending {
		return
	}
	if err != nil {
		state.Save = SaveFailed
		state.SaveErr = err
		return
	}
	state.Save = SaveDone
	state.SaveErr = nil
}

func buildRecord(state *SessionState) store.ProgressRecord {
	score := FinalScore(state)
	return store.ProgressRecord{
		StudentID:          state.StudentID,
		LessonID:           state.LessonID,
		Score:              score,
		PronunciationScore: score,
		Completed:          true,
		CompletedAt:        state.CompletedAt,
	}
}
