package session

import (
	"errors"
	"time"

	"github.com/abhisek/speakup/internal/lessons"
)

// ErrEmptyLesson is returned when a lesson without words is opened. Such a
// lesson can never complete (the final score would divide by zero).
var ErrEmptyLesson = errors.New("lesson has no words to practise")

// Phase represents the current phase of the practice loop.
type Phase int

const (
	PhaseIdle          Phase = iota // Words loaded, nothing displayed yet
	PhaseAwaitingInput              // Current word displayed, waiting for a capture
	PhaseClassifying                // Transcript received, being judged
	PhaseAdvancing                  // Match; showing correct feedback
	PhaseRetrying                   // No match; showing incorrect feedback
	PhaseCompleted                  // All words matched; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseClassifying:
		return "classifying"
	case PhaseAdvancing:
		return "advancing"
	case PhaseRetrying:
		return "retrying"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Feedback is the result shown to the learner after a capture.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// SaveStatus tracks the progress upsert issued at completion.
type SaveStatus int

const (
	SaveNone    SaveStatus = iota // Not issued yet
	SavePending                   // Upsert in flight
	SaveDone                      // Upsert succeeded
	SaveFailed                    // Upsert rejected; a manual retry is allowed
)

// SessionState tracks one learner's visit to one lesson.
type SessionState struct {
	// SessionID is the UUID for this visit.
	SessionID string

	LessonID    string
	LessonTitle string
	StudentID   string

	// Words is the ordered practice list. Never empty.
	Words []lessons.Word

	// CurrentIndex only moves forward, one step at a time.
	CurrentIndex int

	// Score is the number of words matched so far. Never exceeds len(Words).
	Score int

	// RecordingActive gates capture starts. At most one capture is in flight.
	RecordingActive bool

	// LastFeedback is what the learner currently sees.
	LastFeedback Feedback

	// Phase is the current phase of the loop.
	Phase Phase

	// Attempts counts classified captures across all words.
	Attempts int

	// LastTranscript is the most recent classified transcript.
	LastTranscript string

	// LastSimilarity is the closeness of LastTranscript to its target (0-1).
	LastSimilarity float64

	// StartTime is when the session was created.
	StartTime time.Time

	// CompletedAt is set on entering PhaseCompleted.
	CompletedAt time.Time

	// Save tracks the progress upsert.
	Save SaveStatus

	// SaveErr holds the last upsert failure.
	SaveErr error

	// resultSeen is set once the in-flight capture has produced a transcript.
	resultSeen bool
}

// NewSessionState creates a session for lesson in PhaseIdle. A lesson with
// no words is refused.
func NewSessionState(lesson *lessons.Lesson, studentID, sessionID string) (*SessionState, error) {
	if lesson == nil || len(lesson.Content.Words) == 0 {
		return nil, ErrEmptyLesson
	}

	words := make([]lessons.Word, len(lesson.Content.Words))
	copy(words, lesson.Content.Words)

	return &SessionState{
		SessionID:   sessionID,
		LessonID:    lesson.ID,
		LessonTitle: lesson.Title,
		StudentID:   studentID,
		Words:       words,
		StartTime:   time.Now(),
		Phase:       PhaseIdle,
	}, nil
}

// CurrentWord returns the word being practised.
func (s *SessionState) CurrentWord() lessons.Word {
	return s.Words[s.CurrentIndex]
}

// Total returns the number of words in the session.
func (s *SessionState) Total() int {
	return len(s.Words)
}

// IsLastWord reports whether the current word is the final one.
func (s *SessionState) IsLastWord() bool {
	return s.CurrentIndex == len(s.Words)-1
}

// Progress returns the displayed progress fraction (current word position).
func (s *SessionState) Progress() float64 {
	return float64(s.CurrentIndex+1) / float64(len(s.Words))
}
