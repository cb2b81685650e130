package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/abhisek/speakup/internal/config"
	"github.com/abhisek/speakup/internal/speech"
	"github.com/abhisek/speakup/internal/speech/espeak"
	"github.com/abhisek/speakup/internal/speech/gtts"
	"github.com/abhisek/speakup/internal/speech/whisper"
	"github.com/abhisek/speakup/internal/store"
)

// buildRecognizer returns the capture backend named in cfg. Keyboard and
// none both yield speech.Unavailable; keyboard mode is handled by the
// practice screen.
func buildRecognizer(cfg config.SpeechConfig) (speech.Recognizer, error) {
	switch cfg.Capture {
	case config.CaptureWhisper:
		opts := []whisper.Option{
			whisper.WithLanguage(speech.Language(cfg.Locale)),
			whisper.WithDuration(cfg.Whisper.Duration),
		}
		if cfg.Whisper.Model != "" {
			opts = append(opts, whisper.WithModel(cfg.Whisper.Model))
		}
		if cfg.Whisper.Recorder != "" {
			opts = append(opts, whisper.WithRecorderCommand(cfg.Whisper.Recorder))
		}
		return whisper.New(cfg.Whisper.URL, opts...), nil
	case config.CaptureKeyboard, config.CaptureNone:
		return speech.Unavailable{}, nil
	}
	return nil, fmt.Errorf("unknown capture backend %q", cfg.Capture)
}

// buildSynthesizer returns the playback backend named in cfg.
func buildSynthesizer(cfg config.SpeechConfig) (speech.Synthesizer, error) {
	switch cfg.Synth {
	case config.SynthEspeak:
		var opts []espeak.Option
		if cfg.Espeak.Command != "" {
			opts = append(opts, espeak.WithCommand(cfg.Espeak.Command))
		}
		return espeak.New(cfg.Locale, cfg.Rate, opts...), nil
	case config.SynthGTTS:
		cacheDir := cfg.GTTS.CacheDir
		if cacheDir == "" {
			dataDir, err := store.DataDir()
			if err != nil {
				return nil, err
			}
			cacheDir = filepath.Join(dataDir, "tts")
		}
		var opts []gtts.Option
		if cfg.GTTS.Player != "" {
			opts = append(opts, gtts.WithPlayer(cfg.GTTS.Player, cfg.GTTS.PlayerArgs...))
		}
		return gtts.New(cacheDir, cfg.Locale, cfg.Rate, opts...), nil
	case config.SynthNone:
		return speech.Unavailable{}, nil
	}
	return nil, fmt.Errorf("unknown synth backend %q", cfg.Synth)
}
