package practice

import (
	"github.com/abhisek/speakup/internal/lessons"
)

// Every message below that is produced after a delay or by a background
// capture carries the session it belongs to. Messages for any other session
// are dropped, so a timer that fires after the learner left cannot touch
// the next visit.

// lessonLoadedMsg is sent when the lesson has been read from the store.
type lessonLoadedMsg struct {
	Lesson *lessons.Lesson
	Err    error
}

// captureResultMsg is sent when a capture produced a transcript or failed.
type captureResultMsg struct {
	SessionID  string
	Transcript string
	Err        error
}

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct {
	SessionID string
}

// progressSavedMsg is sent when the progress upsert returns.
type progressSavedMsg struct {
	SessionID string
	Err       error
}

// exitMsg is sent when the post-save delay ends.
type exitMsg struct {
	SessionID string
}
