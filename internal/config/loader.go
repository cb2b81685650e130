package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPEAKUP_"

// DefaultPath returns $XDG_CONFIG_HOME/speakup/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "speakup", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	default:
		defer f.Close()
		if err := decode(f, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r over the defaults and
// validates the result. Environment overrides are not applied.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := decode(r, cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overlays SPEAKUP_* variables onto cfg.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error

	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = d
		}
	}

	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = LogLevel(strings.ToLower(v))
	}
	str("STUDENT", &cfg.Student)
	str("LOCALE", &cfg.Speech.Locale)
	if v, ok := lookup(EnvPrefix + "RATE"); ok {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sRATE: %w", EnvPrefix, err))
		} else {
			cfg.Speech.Rate = rate
		}
	}
	if v, ok := lookup(EnvPrefix + "CAPTURE"); ok {
		cfg.Speech.Capture = CaptureBackend(strings.ToLower(v))
	}
	if v, ok := lookup(EnvPrefix + "SYNTH"); ok {
		cfg.Speech.Synth = SynthBackend(strings.ToLower(v))
	}
	str("WHISPER_URL", &cfg.Speech.Whisper.URL)
	str("WHISPER_MODEL", &cfg.Speech.Whisper.Model)
	dur("FEEDBACK_DELAY", &cfg.Practice.FeedbackDelay)
	dur("EXIT_DELAY", &cfg.Practice.ExitDelay)

	return errors.Join(errs...)
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	sp := cfg.Speech
	if sp.Locale == "" {
		errs = append(errs, errors.New("speech.locale is required"))
	}
	if sp.Rate < 0.1 || sp.Rate > 2.0 {
		errs = append(errs, fmt.Errorf("speech.rate %.2f is out of range [0.1, 2.0]", sp.Rate))
	}
	if !sp.Capture.IsValid() {
		errs = append(errs, fmt.Errorf("speech.capture %q is invalid; valid values: whisper, keyboard, none", sp.Capture))
	}
	if !sp.Synth.IsValid() {
		errs = append(errs, fmt.Errorf("speech.synth %q is invalid; valid values: espeak, gtts, none", sp.Synth))
	}
	if sp.Capture == CaptureWhisper && sp.Whisper.URL == "" {
		slog.Warn("speech.capture is whisper but speech.whisper.url is empty; capture will be disabled")
	}
	if sp.Whisper.Duration < 0 {
		errs = append(errs, fmt.Errorf("speech.whisper.duration %s must not be negative", sp.Whisper.Duration))
	}

	if cfg.Practice.FeedbackDelay < 0 {
		errs = append(errs, fmt.Errorf("practice.feedback_delay %s must not be negative", cfg.Practice.FeedbackDelay))
	}
	if cfg.Practice.ExitDelay < 0 {
		errs = append(errs, fmt.Errorf("practice.exit_delay %s must not be negative", cfg.Practice.ExitDelay))
	}

	return errors.Join(errs...)
}
