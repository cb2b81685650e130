package session

import (
	"time"
)

// Outcome describes how a transcript was judged.
type Outcome struct {
	// Applied is false when the transcript was ignored (no capture in
	// flight, wrong phase, or a second result for the same capture).
	Applied    bool
	Correct    bool
	Target     string
	Transcript string
	Similarity float64
}

// Transition is the result of the feedback display period ending.
type Transition int

const (
	TransitionNone      Transition = iota // Nothing to do
	TransitionNextWord                    // Moved to the next word
	TransitionRetry                       // Same word again
	TransitionCompleted                   // Lesson finished
)

// Open displays the first word: PhaseIdle -> PhaseAwaitingInput.
func Open(state *SessionState) bool {
	if state.Phase != PhaseIdle {
		return false
	}
	state.Phase = PhaseAwaitingInput
	return true
}

// BeginCapture marks a capture as in flight. It is a no-op returning false
// while another capture is active or when the loop is not waiting for input.
func BeginCapture(state *SessionState) bool {
	if state.RecordingActive || state.Phase != PhaseAwaitingInput {
		return false
	}
	state.RecordingActive = true
	state.resultSeen = false
	return true
}

// HandleTranscript classifies the transcript of the in-flight capture and
// moves the loop to PhaseAdvancing (match) or PhaseRetrying (no match).
// Only the first transcript of a capture is classified.
func HandleTranscript(state *SessionState, transcript string) Outcome {
	if !state.RecordingActive || state.resultSeen || state.Phase != PhaseAwaitingInput {
		return Outcome{}
	}
	state.resultSeen = true
	state.Phase = PhaseClassifying

	target := state.CurrentWord().Word
	correct := Classify(transcript, target)
	similarity := Similarity(transcript, target)

	state.Attempts++
	state.LastTranscript = transcript
	state.LastSimilarity = similarity

	if correct {
		state.Score++
		state.LastFeedback = FeedbackCorrect
		state.Phase = PhaseAdvancing
	} else {
		state.LastFeedback = FeedbackIncorrect
		state.Phase = PhaseRetrying
	}

	return Outcome{
		Applied:    true,
		Correct:    correct,
		Target:     target,
		Transcript: transcript,
		Similarity: similarity,
	}
}

// HandleCaptureError records a failed capture. The learner stays on the same
// word and may capture again immediately.
func HandleCaptureError(state *SessionState) {
	state.RecordingActive = false
}

// HandleCaptureEnd clears the capture gate. It fires after a result, after an
// error, or when the learner stopped talking without a result.
func HandleCaptureEnd(state *SessionState) {
	state.RecordingActive = false
}

// FeedbackDone ends the feedback display period. From PhaseAdvancing it
// moves to the next word or completes the lesson; from PhaseRetrying it
// returns to the same word.
func FeedbackDone(state *SessionState, now time.Time) Transition {
	switch state.Phase {
	case PhaseAdvancing:
		state.LastFeedback = FeedbackNone
		if state.CurrentIndex < len(state.Words)-1 {
			state.CurrentIndex++
			state.Phase = PhaseAwaitingInput
			return TransitionNextWord
		}
		state.Phase = PhaseCompleted
		state.CompletedAt = now
		return TransitionCompleted

	case PhaseRetrying:
		state.LastFeedback = FeedbackNone
		state.Phase = PhaseAwaitingInput
		return TransitionRetry
	}
	return TransitionNone
}
