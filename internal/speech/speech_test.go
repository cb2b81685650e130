package speech

import (
	"context"
	"errors"
	"testing"
)

type fakeSynth struct {
	available bool
	err       error
	spoken    []string
}

func (f *fakeSynth) Available() bool { return f.available }

func (f *fakeSynth) Speak(_ context.Context, text string) error {
	f.spoken = append(f.spoken, text)
	return f.err
}

func TestUnavailable(t *testing.T) {
	var u Unavailable
	if u.Available() {
		t.Error("Unavailable reports available")
	}
	if _, err := u.Recognize(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Recognize error = %v, want ErrUnavailable", err)
	}
	if err := u.Speak(context.Background(), "cat"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Speak error = %v, want ErrUnavailable", err)
	}
}

func TestTrigger(t *testing.T) {
	ctx := context.Background()

	s := &fakeSynth{available: true}
	Trigger(ctx, s, " cat ")
	if len(s.spoken) != 1 || s.spoken[0] != "cat" {
		t.Errorf("spoken = %v, want [cat]", s.spoken)
	}

	// Failures are swallowed.
	failing := &fakeSynth{available: true, err: errors.New("no audio device")}
	Trigger(ctx, failing, "dog")
	if len(failing.spoken) != 1 {
		t.Errorf("failing synth called %d times, want 1", len(failing.spoken))
	}

	off := &fakeSynth{available: false}
	Trigger(ctx, off, "cat")
	Trigger(ctx, s, "   ")
	Trigger(ctx, nil, "cat")
	if len(off.spoken) != 0 {
		t.Error("unavailable synth should not be called")
	}
	if len(s.spoken) != 1 {
		t.Error("blank word should not be spoken")
	}
}

func TestCaptureError(t *testing.T) {
	inner := errors.New("device busy")
	err := error(&CaptureError{Backend: "whisper", Reason: "recorder failed", Err: inner})

	if !errors.Is(err, inner) {
		t.Error("CaptureError should unwrap to its cause")
	}
	var ce *CaptureError
	if !errors.As(err, &ce) || ce.Reason != "recorder failed" {
		t.Errorf("errors.As = %v", ce)
	}
	if got := err.Error(); got != "whisper capture: recorder failed: device busy" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&CaptureError{Backend: "keyboard", Reason: "empty"}).Error(); got != "keyboard capture: empty" {
		t.Errorf("Error() = %q", got)
	}
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "en"},
		{"es_MX", "es"},
		{"FR", "fr"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Language(tt.locale); got != tt.want {
			t.Errorf("Language(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}
