// Package practice implements the pronunciation practice screen: one word
// at a time, the learner listens, speaks and gets feedback until every word
// of the lesson has been matched.
package practice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/speakup/internal/router"
	"github.com/abhisek/speakup/internal/screen"
	"github.com/abhisek/speakup/internal/screens/summary"
	sess "github.com/abhisek/speakup/internal/session"
	"github.com/abhisek/speakup/internal/speech"
	"github.com/abhisek/speakup/internal/store"
	"github.com/abhisek/speakup/internal/ui/components"
	"github.com/abhisek/speakup/internal/ui/layout"
)

// Deps holds everything the practice screen talks to.
type Deps struct {
	Lessons  store.LessonRepo
	Progress store.ProgressRepo
	Events   store.EventRepo // optional

	Recognizer speech.Recognizer
	Synth      speech.Synthesizer

	// Keyboard replaces the microphone with a typed answer.
	Keyboard bool

	StudentID     string
	FeedbackDelay time.Duration
	ExitDelay     time.Duration
}

// PracticeScreen implements screen.Screen for one visit to one lesson.
type PracticeScreen struct {
	deps     Deps
	lessonID string
	state    *sess.SessionState
	input    components.TextInput
	typing   bool
	micOff   bool // recognizer reported itself unavailable mid-session
	notice   string
	errMsg   string

	// ctx bounds captures and playback; it is cancelled when the screen
	// leaves the stack.
	ctx    context.Context
	cancel context.CancelFunc

	now   func() time.Time
	newID func() string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscapeHandler = (*PracticeScreen)(nil)
var _ screen.Listener = (*PracticeScreen)(nil)
var _ screen.Closer = (*PracticeScreen)(nil)

// New creates a practice screen for the lesson with the given id.
func New(deps Deps, lessonID string) *PracticeScreen {
	if deps.Recognizer == nil {
		deps.Recognizer = speech.Unavailable{}
	}
	if deps.Synth == nil {
		deps.Synth = speech.Unavailable{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &PracticeScreen{
		deps:     deps,
		lessonID: lessonID,
		input:    components.NewTextInput("Type the word...", true, 40),
		ctx:      ctx,
		cancel:   cancel,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// Close stops any capture or playback still running and, when the learner
// leaves before finishing, records the visit as quit.
func (s *PracticeScreen) Close() tea.Cmd {
	s.cancel()
	if s.state == nil || s.state.Phase == sess.PhaseCompleted {
		return nil
	}
	slog.Info("practice abandoned", "session", s.state.SessionID, "word", s.state.CurrentIndex)
	return s.appendSessionEvent("quit")
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.loadLesson()
}

func (s *PracticeScreen) Title() string {
	if s.state != nil {
		return s.state.LessonTitle
	}
	return "Practice"
}

// Listening reports whether a microphone capture is in flight.
func (s *PracticeScreen) Listening() bool {
	return s.state != nil && s.state.RecordingActive && !s.typing
}

// HandlesEscape keeps Esc inside the screen while the answer box is open.
func (s *PracticeScreen) HandlesEscape() bool {
	return s.typing
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.state.Phase == sess.PhaseCompleted {
		if s.state.Save == sess.SaveFailed {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry save"},
				{Key: "Esc", Description: "Back"},
			}
		}
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}

	var hints []layout.KeyHint
	if s.captureAvailable() {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Speak"})
	}
	if s.playbackAvailable() {
		hints = append(hints, layout.KeyHint{Key: "L", Description: "Listen"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonLoadedMsg:
		return s.handleLoaded(msg)

	case captureResultMsg:
		return s, s.handleCaptureResult(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)

	case progressSavedMsg:
		return s.handleSaved(msg)

	case exitMsg:
		return s.handleExit(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.typing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PracticeScreen) loadLesson() tea.Cmd {
	repo, id := s.deps.Lessons, s.lessonID
	return func() tea.Msg {
		l, err := repo.Get(context.Background(), id)
		return lessonLoadedMsg{Lesson: l, Err: err}
	}
}

func (s *PracticeScreen) handleLoaded(msg lessonLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("load lesson failed", "lesson", s.lessonID, "error", msg.Err)
		s.errMsg = "Couldn't open this lesson."
		return s, nil
	}

	state, err := sess.NewSessionState(msg.Lesson, s.deps.StudentID, s.newID())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.state = state
	sess.Open(state)
	slog.Info("practice started", "session", state.SessionID, "lesson", state.LessonID, "words", state.Total())

	return s, s.appendSessionEvent("start")
}

func (s *PracticeScreen) captureAvailable() bool {
	if s.deps.Keyboard {
		return true
	}
	return !s.micOff && s.deps.Recognizer.Available()
}

func (s *PracticeScreen) playbackAvailable() bool {
	return s.deps.Synth.Available()
}

func (s *PracticeScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.state == nil {
		return s, nil
	}

	if s.typing {
		switch key {
		case "enter":
			return s, s.submitTyped()
		case "esc":
			s.typing = false
			s.input.Reset()
			sess.HandleCaptureEnd(s.state)
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "space", " ", "enter", "s":
		return s, s.startCapture()
	case "l", "p":
		return s, s.playWord()
	case "r":
		return s, s.retrySave()
	}
	return s, nil
}

// startCapture opens a capture for the current word. It does nothing while
// another capture is in flight, while feedback is showing, or when no
// capture backend is available.
func (s *PracticeScreen) startCapture() tea.Cmd {
	if !s.captureAvailable() {
		s.notice = "Speaking isn't available here. You can still listen to the word."
		return nil
	}
	if !sess.BeginCapture(s.state) {
		return nil
	}
	s.notice = ""

	if s.deps.Keyboard {
		s.typing = true
		s.input.Reset()
		return s.input.Init()
	}

	rec, id, ctx := s.deps.Recognizer, s.state.SessionID, s.ctx
	slog.Debug("capture started", "session", id, "word", s.state.CurrentWord().Word)
	return func() tea.Msg {
		transcript, err := rec.Recognize(ctx)
		return captureResultMsg{SessionID: id, Transcript: transcript, Err: err}
	}
}

func (s *PracticeScreen) submitTyped() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	s.typing = false
	if text == "" {
		// Closed without an answer: same as a capture that heard nothing.
		sess.HandleCaptureEnd(s.state)
		return nil
	}
	return s.handleCaptureResult(captureResultMsg{SessionID: s.state.SessionID, Transcript: text})
}

func (s *PracticeScreen) handleCaptureResult(msg captureResultMsg) tea.Cmd {
	if s.state == nil || msg.SessionID != s.state.SessionID {
		return nil
	}

	if msg.Err != nil {
		sess.HandleCaptureError(s.state)
		sess.HandleCaptureEnd(s.state)
		s.notice = captureNotice(msg.Err)
		if errors.Is(msg.Err, speech.ErrUnavailable) {
			s.micOff = true
		}
		slog.Warn("capture failed", "session", msg.SessionID, "error", msg.Err)
		return nil
	}

	index := s.state.CurrentIndex
	outcome := sess.HandleTranscript(s.state, msg.Transcript)
	sess.HandleCaptureEnd(s.state)
	if !outcome.Applied {
		return nil
	}
	s.input.Submit(outcome.Correct)
	slog.Debug("attempt classified", "session", msg.SessionID, "word", outcome.Target,
		"transcript", outcome.Transcript, "correct", outcome.Correct)

	return tea.Batch(
		s.appendAttempt(index, outcome),
		s.afterDelay(s.deps.FeedbackDelay, feedbackDoneMsg{SessionID: msg.SessionID}),
	)
}

func captureNotice(err error) string {
	var ce *speech.CaptureError
	switch {
	case errors.Is(err, speech.ErrNoSpeech):
		return "I didn't hear anything. Try again!"
	case errors.Is(err, speech.ErrUnavailable):
		return "The microphone isn't available right now."
	case errors.As(err, &ce) && ce.Reason != "":
		return "Oops, " + ce.Reason + ". Try again!"
	}
	return "Something went wrong. Try again!"
}

func (s *PracticeScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || msg.SessionID != s.state.SessionID {
		return s, nil
	}

	switch sess.FeedbackDone(s.state, s.now()) {
	case sess.TransitionNextWord, sess.TransitionRetry:
		s.input.Reset()
		return s, nil

	case sess.TransitionCompleted:
		slog.Info("practice completed", "session", s.state.SessionID,
			"score", s.state.Score, "attempts", s.state.Attempts)
		rec, ok := sess.ClaimProgress(s.state)
		if !ok {
			return s, nil
		}
		return s, tea.Batch(s.saveProgress(rec), s.appendSessionEvent("complete"))
	}
	return s, nil
}

func (s *PracticeScreen) retrySave() tea.Cmd {
	rec, ok := sess.RetryProgress(s.state)
	if !ok {
		return nil
	}
	slog.Info("retrying progress save", "session", s.state.SessionID)
	return s.saveProgress(rec)
}

func (s *PracticeScreen) saveProgress(rec store.ProgressRecord) tea.Cmd {
	repo, id := s.deps.Progress, s.state.SessionID
	return func() tea.Msg {
		err := repo.Upsert(context.Background(), rec)
		return progressSavedMsg{SessionID: id, Err: err}
	}
}

func (s *PracticeScreen) handleSaved(msg progressSavedMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || msg.SessionID != s.state.SessionID {
		return s, nil
	}
	sess.RecordSaveResult(s.state, msg.Err)
	if msg.Err != nil {
		slog.Error("save progress failed", "session", msg.SessionID, "error", msg.Err)
		return s, nil
	}
	return s, s.afterDelay(s.deps.ExitDelay, exitMsg{SessionID: msg.SessionID})
}

func (s *PracticeScreen) handleExit(msg exitMsg) (screen.Screen, tea.Cmd) {
	if s.state == nil || msg.SessionID != s.state.SessionID || s.state.Save != sess.SaveDone {
		return s, nil
	}
	sum := sess.BuildSummary(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

// playWord speaks the current word. Playback never changes the loop state.
func (s *PracticeScreen) playWord() tea.Cmd {
	if !s.playbackAvailable() || s.state.Phase == sess.PhaseCompleted {
		return nil
	}
	synth, word, ctx := s.deps.Synth, s.state.CurrentWord().Word, s.ctx
	return func() tea.Msg {
		speech.Trigger(ctx, synth, word)
		return nil
	}
}

func (s *PracticeScreen) afterDelay(d time.Duration, msg tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (s *PracticeScreen) appendAttempt(index int, outcome sess.Outcome) tea.Cmd {
	if s.deps.Events == nil {
		return nil
	}
	repo := s.deps.Events
	data := store.AttemptEventData{
		SessionID:  s.state.SessionID,
		StudentID:  s.state.StudentID,
		LessonID:   s.state.LessonID,
		WordIndex:  index,
		Word:       outcome.Target,
		Transcript: outcome.Transcript,
		Correct:    outcome.Correct,
		Similarity: outcome.Similarity,
	}
	return func() tea.Msg {
		if err := repo.AppendAttempt(context.Background(), data); err != nil {
			slog.Warn("append attempt failed", "session", data.SessionID, "error", err)
		}
		return nil
	}
}

func (s *PracticeScreen) appendSessionEvent(action string) tea.Cmd {
	if s.deps.Events == nil {
		return nil
	}
	repo := s.deps.Events
	data := store.SessionEventData{
		SessionID: s.state.SessionID,
		StudentID: s.state.StudentID,
		LessonID:  s.state.LessonID,
		Action:    action,
		Words:     s.state.Total(),
	}
	if action == "complete" {
		data.Score = sess.FinalScore(s.state)
		data.DurationSecs = int(s.state.CompletedAt.Sub(s.state.StartTime).Seconds())
	}
	return func() tea.Msg {
		if err := repo.AppendSessionEvent(context.Background(), data); err != nil {
			slog.Warn("append session event failed", "session", data.SessionID, "action", data.Action, "error", err)
		}
		return nil
	}
}
