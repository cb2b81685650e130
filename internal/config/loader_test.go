package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadFromReader_Defaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Speech.Locale != "en-US" {
		t.Errorf("Locale = %q, want en-US", cfg.Speech.Locale)
	}
	if cfg.Speech.Rate != 0.8 {
		t.Errorf("Rate = %v, want 0.8", cfg.Speech.Rate)
	}
	if cfg.Practice.FeedbackDelay != 1500*time.Millisecond {
		t.Errorf("FeedbackDelay = %v, want 1.5s", cfg.Practice.FeedbackDelay)
	}
	if cfg.Practice.ExitDelay != 2*time.Second {
		t.Errorf("ExitDelay = %v, want 2s", cfg.Practice.ExitDelay)
	}
}

func TestLoadFromReader_Overlay(t *testing.T) {
	yaml := `
log_level: debug
student: Ana
speech:
  locale: es-MX
  capture: whisper
  whisper:
    url: http://localhost:8080
    duration: 4s
  gtts:
    player: mpv
    player_args: ["--really-quiet"]
practice:
  feedback_delay: 500ms
`
	cfg, err := LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.LogLevel != LogDebug || cfg.Student != "Ana" {
		t.Errorf("top-level = %+v", cfg)
	}
	if cfg.Speech.Locale != "es-MX" || cfg.Speech.Capture != CaptureWhisper {
		t.Errorf("speech = %+v", cfg.Speech)
	}
	if cfg.Speech.Whisper.Duration != 4*time.Second {
		t.Errorf("whisper.duration = %v", cfg.Speech.Whisper.Duration)
	}
	// Untouched fields keep their defaults.
	if cfg.Speech.Whisper.Recorder != "arecord" || cfg.Speech.Rate != 0.8 {
		t.Errorf("defaults lost: %+v", cfg.Speech)
	}
	if len(cfg.Speech.GTTS.PlayerArgs) != 1 || cfg.Speech.GTTS.PlayerArgs[0] != "--really-quiet" {
		t.Errorf("player_args = %v", cfg.Speech.GTTS.PlayerArgs)
	}
	if cfg.Practice.FeedbackDelay != 500*time.Millisecond || cfg.Practice.ExitDelay != 2*time.Second {
		t.Errorf("practice = %+v", cfg.Practice)
	}
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("speech:\n  volume: 11\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"empty locale", func(c *Config) { c.Speech.Locale = "" }, "speech.locale"},
		{"rate too low", func(c *Config) { c.Speech.Rate = 0 }, "speech.rate"},
		{"rate too high", func(c *Config) { c.Speech.Rate = 3 }, "speech.rate"},
		{"bad capture", func(c *Config) { c.Speech.Capture = "telepathy" }, "speech.capture"},
		{"bad synth", func(c *Config) { c.Speech.Synth = "robot" }, "speech.synth"},
		{"negative delay", func(c *Config) { c.Practice.FeedbackDelay = -time.Second }, "feedback_delay"},
		{"whisper without url only warns", func(c *Config) { c.Speech.Capture = CaptureWhisper }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SPEAKUP_LOG_LEVEL":      "DEBUG",
		"SPEAKUP_LOCALE":         "en-GB",
		"SPEAKUP_RATE":           "1.1",
		"SPEAKUP_CAPTURE":        "Whisper",
		"SPEAKUP_SYNTH":          "gtts",
		"SPEAKUP_WHISPER_URL":    "http://whisper:8080",
		"SPEAKUP_FEEDBACK_DELAY": "750ms",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := ApplyEnv(cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.LogLevel != LogDebug {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Speech.Locale != "en-GB" || cfg.Speech.Rate != 1.1 {
		t.Errorf("speech = %+v", cfg.Speech)
	}
	if cfg.Speech.Capture != CaptureWhisper || cfg.Speech.Synth != SynthGTTS {
		t.Errorf("backends = %s/%s", cfg.Speech.Capture, cfg.Speech.Synth)
	}
	if cfg.Speech.Whisper.URL != "http://whisper:8080" {
		t.Errorf("whisper.url = %q", cfg.Speech.Whisper.URL)
	}
	if cfg.Practice.FeedbackDelay != 750*time.Millisecond {
		t.Errorf("FeedbackDelay = %v", cfg.Practice.FeedbackDelay)
	}
}

func TestApplyEnv_BadValues(t *testing.T) {
	env := map[string]string{
		"SPEAKUP_RATE":       "fast",
		"SPEAKUP_EXIT_DELAY": "soon",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	err := ApplyEnv(Default(), lookup)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"SPEAKUP_RATE", "SPEAKUP_EXIT_DELAY"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Speech.Locale == "" {
		t.Error("expected defaults")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("student: Bo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPEAKUP_STUDENT", "Cy")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Student != "Cy" {
		t.Errorf("Student = %q, want env override Cy", cfg.Student)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/cfg/speakup/config.yaml" {
		t.Errorf("DefaultPath = %q", got)
	}
}
