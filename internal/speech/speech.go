// Package speech defines the capture and playback capabilities used by the
// practice screen, and the capability-absent fallback for both.
//
// A Recognizer produces exactly one transcript per Recognize call: it is
// single-shot, non-continuous and never reports interim results. A
// Synthesizer plays one utterance per Speak call in a fixed locale and rate.
// Concrete backends live in the whisper, espeak and gtts subpackages.
package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnavailable is returned when the platform lacks a capability.
var ErrUnavailable = errors.New("speech capability unavailable")

// ErrNoSpeech is returned when a capture ended without any recognised words.
var ErrNoSpeech = errors.New("no speech detected")

// Default playback and capture settings.
const (
	DefaultLocale = "en-US"
	DefaultRate   = 0.8
)

// CaptureError reports why a capture failed to yield a transcript.
type CaptureError struct {
	Backend string // e.g. "whisper"
	Reason  string // short, learner-facing
	Err     error
}

func (e *CaptureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s capture: %s: %v", e.Backend, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s capture: %s", e.Backend, e.Reason)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// Recognizer is a single-shot speech-to-text capability.
type Recognizer interface {
	// Available reports whether capture can run on this platform.
	Available() bool

	// Recognize captures one utterance and returns its transcript.
	Recognize(ctx context.Context) (string, error)
}

// Synthesizer is a text-to-speech capability.
type Synthesizer interface {
	// Available reports whether playback can run on this platform.
	Available() bool

	// Speak plays text and returns when playback has finished.
	Speak(ctx context.Context, text string) error
}

// Unavailable implements Recognizer and Synthesizer for platforms without
// the capability.
type Unavailable struct{}

var (
	_ Recognizer  = Unavailable{}
	_ Synthesizer = Unavailable{}
)

func (Unavailable) Available() bool { return false }

func (Unavailable) Recognize(context.Context) (string, error) { return "", ErrUnavailable }

func (Unavailable) Speak(context.Context, string) error { return ErrUnavailable }

// Trigger plays word through synth and discards the outcome. Failures are
// logged at debug level only. It blocks until playback ends, so callers run
// it off the UI loop.
func Trigger(ctx context.Context, synth Synthesizer, word string) {
	word = strings.TrimSpace(word)
	if synth == nil || word == "" || !synth.Available() {
		return
	}
	if err := synth.Speak(ctx, word); err != nil {
		slog.Debug("playback failed", "word", word, "error", err)
	}
}

// Language returns the primary language subtag of a BCP-47 locale,
// e.g. "en" for "en-US".
func Language(locale string) string {
	lang, _, _ := strings.Cut(locale, "-")
	lang, _, _ = strings.Cut(lang, "_")
	return strings.ToLower(lang)
}
