package cmd

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/abhisek/speakup/internal/config"
	"github.com/abhisek/speakup/internal/speech"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the configured speech backends work",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		if !runDoctor(ctx, cmd.OutOrStdout(), cfg.Speech) {
			return fmt.Errorf("some checks failed")
		}
		return nil
	},
}

// pinger is implemented by recognizers that talk to a server.
type pinger interface {
	Ping(ctx context.Context) error
}

// runDoctor prints one line per check and reports whether all passed.
func runDoctor(ctx context.Context, out io.Writer, cfg config.SpeechConfig) bool {
	ok := true
	check := func(name string, err error) {
		if err != nil {
			ok = false
			fmt.Fprintf(out, "✗ %-10s %v\n", name, err)
			return
		}
		fmt.Fprintf(out, "✓ %-10s ok\n", name)
	}

	switch cfg.Capture {
	case config.CaptureWhisper:
		check("recorder", lookPath(cfg.Whisper.Recorder))
		rec, err := buildRecognizer(cfg)
		if err == nil {
			if p, isPinger := rec.(pinger); isPinger {
				err = p.Ping(ctx)
			}
		}
		check("whisper", err)
	default:
		fmt.Fprintf(out, "- %-10s %s mode, no microphone used\n", "capture", cfg.Capture)
	}

	switch cfg.Synth {
	case config.SynthEspeak:
		check("espeak", lookPath(cfg.Espeak.Command))
	case config.SynthGTTS:
		check("player", lookPath(cfg.GTTS.Player))
	default:
		fmt.Fprintf(out, "- %-10s disabled\n", "playback")
	}

	synth, err := buildSynthesizer(cfg)
	if err == nil && !synth.Available() && cfg.Synth != config.SynthNone {
		err = speech.ErrUnavailable
	}
	if cfg.Synth != config.SynthNone {
		check("synth", err)
	}
	return ok
}

func lookPath(name string) error {
	if name == "" {
		return fmt.Errorf("no command configured")
	}
	_, err := exec.LookPath(name)
	return err
}
