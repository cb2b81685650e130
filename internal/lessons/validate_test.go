package lessons

import (
	"errors"
	"testing"
)

func TestParseContent_Valid(t *testing.T) {
	raw := []byte(`{"words":[{"word":"cat","translation":"gato","image":"🐱"},{"word":"dog","translation":"perro","image":"🐶"}]}`)
	c, err := ParseContent(raw)
	if err != nil {
		t.Fatalf("ParseContent: %v", err)
	}
	if len(c.Words) != 2 {
		t.Fatalf("words = %d, want 2", len(c.Words))
	}
	if c.Words[1].Word != "dog" || c.Words[1].Translation != "perro" {
		t.Errorf("second word = %+v", c.Words[1])
	}
}

func TestParseContent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{words`},
		{"missing words", `{}`},
		{"empty words", `{"words":[]}`},
		{"blank word", `{"words":[{"word":"","translation":"x","image":"y"}]}`},
		{"missing image", `{"words":[{"word":"cat","translation":"gato"}]}`},
		{"extra field", `{"words":[{"word":"cat","translation":"gato","image":"🐱","audio":"x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContent([]byte(tt.raw))
			if !errors.Is(err, ErrInvalidContent) {
				t.Errorf("err = %v, want ErrInvalidContent", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	good := Builtin()[0]
	if err := Validate(&good); err != nil {
		t.Fatalf("builtin lesson invalid: %v", err)
	}

	noID := good
	noID.ID = " "
	if err := Validate(&noID); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("missing id: err = %v", err)
	}

	empty := good
	empty.Content = Content{}
	if err := Validate(&empty); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("empty words: err = %v", err)
	}

	blank := good
	blank.Content = Content{Words: []Word{{Word: "   ", Translation: "x", Image: "y"}}}
	if err := Validate(&blank); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("whitespace word: err = %v", err)
	}

	if err := Validate(nil); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("nil lesson: err = %v", err)
	}
}

func TestBuiltin_AllValidAndOrdered(t *testing.T) {
	prev := 0
	ids := map[string]bool{}
	for _, l := range Builtin() {
		if err := Validate(&l); err != nil {
			t.Errorf("lesson %s: %v", l.ID, err)
		}
		if l.OrderIndex <= prev {
			t.Errorf("lesson %s order_index %d not increasing", l.ID, l.OrderIndex)
		}
		prev = l.OrderIndex
		if ids[l.ID] {
			t.Errorf("duplicate id %s", l.ID)
		}
		ids[l.ID] = true
	}
}
