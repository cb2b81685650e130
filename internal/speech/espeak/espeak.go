// Package espeak implements speech.Synthesizer by running espeak-ng locally.
package espeak

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/abhisek/speakup/internal/speech"
)

const (
	defaultCommand = "espeak-ng"

	// baseWPM is espeak's normal speaking rate; rate 1.0 maps to it.
	baseWPM = 175
)

var _ speech.Synthesizer = (*Synthesizer)(nil)

// Option is a functional option for configuring a Synthesizer.
type Option func(*Synthesizer)

// WithCommand overrides the espeak binary (e.g. "espeak").
func WithCommand(cmd string) Option {
	return func(s *Synthesizer) {
		if cmd != "" {
			s.command = cmd
		}
	}
}

// Synthesizer speaks words through espeak-ng.
type Synthesizer struct {
	command  string
	voice    string
	wpm      int
	lookPath func(string) (string, error)
	run      func(cmd *exec.Cmd) error
}

// New creates a Synthesizer for locale (e.g. "en-US") at the given rate,
// where 1.0 is normal speed.
func New(locale string, rate float64, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		command:  defaultCommand,
		voice:    Voice(locale),
		wpm:      WordsPerMinute(rate),
		lookPath: exec.LookPath,
		run:      func(cmd *exec.Cmd) error { return cmd.Run() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Available reports whether the espeak binary is on PATH.
func (s *Synthesizer) Available() bool {
	_, err := s.lookPath(s.command)
	return err == nil
}

// Speak plays text and waits for playback to finish.
func (s *Synthesizer) Speak(ctx context.Context, text string) error {
	if !s.Available() {
		return speech.ErrUnavailable
	}
	cmd := exec.CommandContext(ctx, s.command, s.args(text)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := s.run(cmd); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", s.command, err, msg)
		}
		return fmt.Errorf("%s: %w", s.command, err)
	}
	return nil
}

func (s *Synthesizer) args(text string) []string {
	return []string{"-v", s.voice, "-s", strconv.Itoa(s.wpm), "--", text}
}

// Voice maps a BCP-47 locale to an espeak-ng voice name, e.g. "en-US" to
// "en-us". A bare language falls through unchanged.
func Voice(locale string) string {
	if locale == "" {
		locale = speech.DefaultLocale
	}
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}

// WordsPerMinute converts a relative rate to espeak's -s value, clamped to
// the range espeak accepts.
func WordsPerMinute(rate float64) int {
	if rate <= 0 {
		rate = speech.DefaultRate
	}
	wpm := int(math.Round(baseWPM * rate))
	return max(80, min(450, wpm))
}
