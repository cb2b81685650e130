// Package config provides the configuration schema and loader for speakup.
package config

import (
	"log/slog"
	"time"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level converts l to a slog level. Unknown values map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// CaptureBackend selects how utterances are captured.
type CaptureBackend string

const (
	// CaptureWhisper records from the microphone and transcribes with a
	// whisper.cpp server.
	CaptureWhisper CaptureBackend = "whisper"

	// CaptureKeyboard lets the learner type what they said.
	CaptureKeyboard CaptureBackend = "keyboard"

	// CaptureNone disables capture.
	CaptureNone CaptureBackend = "none"
)

// IsValid reports whether c is a recognised capture backend.
func (c CaptureBackend) IsValid() bool {
	switch c {
	case CaptureWhisper, CaptureKeyboard, CaptureNone:
		return true
	}
	return false
}

// SynthBackend selects how words are spoken.
type SynthBackend string

const (
	SynthEspeak SynthBackend = "espeak"
	SynthGTTS   SynthBackend = "gtts"
	SynthNone   SynthBackend = "none"
)

// IsValid reports whether s is a recognised synthesizer backend.
func (s SynthBackend) IsValid() bool {
	switch s {
	case SynthEspeak, SynthGTTS, SynthNone:
		return true
	}
	return false
}

// Config is the root configuration.
type Config struct {
	LogLevel LogLevel       `yaml:"log_level"`
	Student  string         `yaml:"student"`
	Speech   SpeechConfig   `yaml:"speech"`
	Practice PracticeConfig `yaml:"practice"`
}

// SpeechConfig configures capture and playback.
type SpeechConfig struct {
	Locale  string         `yaml:"locale"`
	Rate    float64        `yaml:"rate"`
	Capture CaptureBackend `yaml:"capture"`
	Synth   SynthBackend   `yaml:"synth"`
	Whisper WhisperConfig  `yaml:"whisper"`
	Espeak  EspeakConfig   `yaml:"espeak"`
	GTTS    GTTSConfig     `yaml:"gtts"`
}

// WhisperConfig configures the whisper.cpp recognizer.
type WhisperConfig struct {
	URL      string        `yaml:"url"`
	Model    string        `yaml:"model"`
	Recorder string        `yaml:"recorder"`
	Duration time.Duration `yaml:"duration"`
}

// EspeakConfig configures the espeak-ng synthesizer.
type EspeakConfig struct {
	Command string `yaml:"command"`
}

// GTTSConfig configures the Google Translate TTS synthesizer.
type GTTSConfig struct {
	Player     string   `yaml:"player"`
	PlayerArgs []string `yaml:"player_args"`
	CacheDir   string   `yaml:"cache_dir"`
}

// PracticeConfig configures the practice screen timing.
type PracticeConfig struct {
	// FeedbackDelay is how long correct/incorrect feedback stays on screen.
	FeedbackDelay time.Duration `yaml:"feedback_delay"`

	// ExitDelay is the pause between a saved result and leaving the lesson.
	ExitDelay time.Duration `yaml:"exit_delay"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: LogInfo,
		Speech: SpeechConfig{
			Locale:  "en-US",
			Rate:    0.8,
			Capture: CaptureKeyboard,
			Synth:   SynthEspeak,
			Whisper: WhisperConfig{
				Recorder: "arecord",
				Duration: 3 * time.Second,
			},
			Espeak: EspeakConfig{Command: "espeak-ng"},
			GTTS: GTTSConfig{
				Player:     "mpg123",
				PlayerArgs: []string{"-q"},
			},
		},
		Practice: PracticeConfig{
			FeedbackDelay: 1500 * time.Millisecond,
			ExitDelay:     2 * time.Second,
		},
	}
}
