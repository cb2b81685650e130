package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/speakup/internal/arena"
	"github.com/abhisek/speakup/internal/config"
	"github.com/abhisek/speakup/internal/lessons"
	"github.com/abhisek/speakup/internal/speech"
	"github.com/abhisek/speakup/internal/speech/espeak"
	"github.com/abhisek/speakup/internal/speech/gtts"
	"github.com/abhisek/speakup/internal/speech/whisper"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecognizer(t *testing.T) {
	cfg := config.Default().Speech

	cfg.Capture = config.CaptureKeyboard
	r, err := buildRecognizer(cfg)
	require.NoError(t, err)
	assert.IsType(t, speech.Unavailable{}, r)

	cfg.Capture = config.CaptureWhisper
	cfg.Whisper.URL = "http://localhost:8080"
	r, err = buildRecognizer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &whisper.Recognizer{}, r)

	cfg.Capture = "telepathy"
	_, err = buildRecognizer(cfg)
	assert.Error(t, err)
}

func TestBuildSynthesizer(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	cfg := config.Default().Speech

	s, err := buildSynthesizer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &espeak.Synthesizer{}, s)

	cfg.Synth = config.SynthGTTS
	s, err = buildSynthesizer(cfg)
	require.NoError(t, err)
	assert.IsType(t, &gtts.Synthesizer{}, s)

	cfg.Synth = config.SynthNone
	s, err = buildSynthesizer(cfg)
	require.NoError(t, err)
	assert.False(t, s.Available())
}

func TestFindLesson(t *testing.T) {
	l, err := findLesson("", "animals-1")
	require.NoError(t, err)
	assert.Equal(t, "Farm Animals", l.Title)

	_, err = findLesson("", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "animals-1")
}

func TestFindLesson_Pack(t *testing.T) {
	pack := `lessons:
  - id: fruit-1
    title: Fruit
    type: pronunciation
    difficulty: easy
    content:
      words:
        - word: apple
`
	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o644))

	l, err := findLesson(path, "fruit-1")
	require.NoError(t, err)
	assert.Equal(t, 1, l.WordCount())
}

func TestPreviewLesson(t *testing.T) {
	lesson := &lessons.Lesson{
		ID:    "l1",
		Title: "Two Words",
		Content: lessons.Content{Words: []lessons.Word{
			{Word: "cat"},
			{Word: "dog"},
		}},
	}
	// Miss, empty, hit, hit.
	in := strings.NewReader("cap\n\nthe cat\ndog\n")
	var out bytes.Buffer

	require.NoError(t, previewLesson(in, &out, lesson))

	got := out.String()
	assert.Contains(t, got, "Not quite")
	assert.Contains(t, got, "(no speech detected)")
	assert.Contains(t, got, "Great job!")
	assert.Contains(t, got, "Summary: 2/2 words, 3 tries")
}

func TestPreviewLesson_InputClosed(t *testing.T) {
	lesson := &lessons.Lesson{Content: lessons.Content{Words: []lessons.Word{{Word: "cat"}}}}
	var out bytes.Buffer
	require.NoError(t, previewLesson(strings.NewReader(""), &out, lesson))
	assert.Contains(t, out.String(), "(input closed)")
	assert.NotContains(t, out.String(), "Summary")
}

type lastRand struct{}

func (lastRand) IntN(n int) int { return n - 1 }

func TestPlayArena(t *testing.T) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	g := arena.NewGame(lastRand{})
	require.NoError(t, playArena(cmd, g, "Hipodoge", []string{"fire", "AGUA"}))

	assert.Equal(t, arena.Hipodoge, g.PlayerPet)
	assert.Equal(t, arena.Ratigueya, g.EnemyPet)
	assert.Len(t, g.Log, 2)
	assert.Contains(t, out.String(), "attacked with FUEGO")
}

func TestPlayArena_Errors(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := playArena(cmd, arena.NewGame(lastRand{}), "", nil)
	assert.ErrorContains(t, err, "--pet")

	err = playArena(cmd, arena.NewGame(lastRand{}), "capipepo", []string{"wind"})
	assert.ErrorIs(t, err, arena.ErrUnknownAttack)
}

func TestRunDoctor_NoBackends(t *testing.T) {
	cfg := config.Default().Speech
	cfg.Capture = config.CaptureKeyboard
	cfg.Synth = config.SynthNone

	var out bytes.Buffer
	assert.True(t, runDoctor(context.Background(), &out, cfg))
	assert.Contains(t, out.String(), "keyboard mode")
}

func TestRunDoctor_MissingCommands(t *testing.T) {
	cfg := config.Default().Speech
	cfg.Capture = config.CaptureWhisper
	cfg.Whisper.Recorder = "speakup-no-such-recorder"
	cfg.Espeak.Command = "speakup-no-such-espeak"

	var out bytes.Buffer
	assert.False(t, runDoctor(context.Background(), &out, cfg))
	assert.Contains(t, out.String(), "✗ recorder")
	assert.Contains(t, out.String(), "✗ whisper")
	assert.Contains(t, out.String(), "✗ espeak")
}
