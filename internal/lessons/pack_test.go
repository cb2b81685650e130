package lessons

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePack = `
lessons:
  - id: weather-1
    title: Weather
    difficulty: easy
    content:
      words:
        - word: rain
          translation: lluvia
          image: "🌧️"
        - word: snow
          translation: nieve
          image: "❄️"
  - id: weather-2
    title: More Weather
    is_active: false
    order_index: 7
    content:
      words:
        - word: wind
          translation: viento
          image: "🌬️"
`

func TestDecodePack(t *testing.T) {
	got, err := DecodePack(strings.NewReader(samplePack))
	if err != nil {
		t.Fatalf("DecodePack: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("lessons = %d, want 2", len(got))
	}

	first := got[0]
	if !first.Active {
		t.Error("is_active should default to true")
	}
	if first.Type != TypePronunciation {
		t.Errorf("type = %q, want default %q", first.Type, TypePronunciation)
	}
	if first.OrderIndex != 1 {
		t.Errorf("order_index = %d, want position default 1", first.OrderIndex)
	}
	if first.WordCount() != 2 {
		t.Errorf("word count = %d, want 2", first.WordCount())
	}

	second := got[1]
	if second.Active {
		t.Error("explicit is_active: false was ignored")
	}
	if second.OrderIndex != 7 {
		t.Errorf("order_index = %d, want 7", second.OrderIndex)
	}
}

func TestDecodePack_JSON(t *testing.T) {
	raw := `{"lessons":[{"id":"x","title":"X","content":{"words":[{"word":"cat","translation":"gato","image":"🐱"}]}}]}`
	got, err := DecodePack(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodePack: %v", err)
	}
	if got[0].Content.Words[0].Word != "cat" {
		t.Errorf("unexpected words: %+v", got[0].Content.Words)
	}
}

func TestDecodePack_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty pack", "lessons: []\n"},
		{"no words", "lessons:\n  - id: a\n    title: A\n    content:\n      words: []\n"},
		{"duplicate ids", "lessons:\n  - id: a\n    title: A\n    content:\n      words:\n        - {word: cat, translation: gato, image: c}\n  - id: a\n    title: B\n    content:\n      words:\n        - {word: dog, translation: perro, image: d}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePack(strings.NewReader(tt.raw))
			if !errors.Is(err, ErrInvalidContent) {
				t.Errorf("err = %v, want ErrInvalidContent", err)
			}
		})
	}
}

func TestDecodePack_UnknownField(t *testing.T) {
	raw := "lessons:\n  - id: a\n    title: A\n    colour: red\n    content:\n      words:\n        - {word: cat, translation: gato, image: c}\n"
	if _, err := DecodePack(strings.NewReader(raw)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadPack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(path, []byte(samplePack), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("lessons = %d, want 2", len(got))
	}

	if _, err := LoadPack(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
