package lessons

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Pack is a file-based collection of lessons. YAML is the native format;
// JSON files decode too since JSON is valid YAML.
type Pack struct {
	Lessons []packEntry `yaml:"lessons"`
}

type packEntry struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Type        string  `yaml:"type"`
	Difficulty  string  `yaml:"difficulty"`
	Description string  `yaml:"description"`
	OrderIndex  int     `yaml:"order_index"`
	Active      *bool   `yaml:"is_active"`
	Content     Content `yaml:"content"`
}

// LoadPack reads and validates the lesson pack at path.
func LoadPack(path string) ([]Lesson, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lesson pack %q: %w", path, err)
	}
	defer f.Close()

	lessons, err := DecodePack(f)
	if err != nil {
		return nil, fmt.Errorf("lesson pack %q: %w", path, err)
	}
	return lessons, nil
}

// DecodePack decodes a lesson pack from r. Every lesson is validated; the
// first invalid lesson aborts the decode.
func DecodePack(r io.Reader) ([]Lesson, error) {
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(p.Lessons) == 0 {
		return nil, fmt.Errorf("%w: pack contains no lessons", ErrInvalidContent)
	}

	seen := make(map[string]bool, len(p.Lessons))
	out := make([]Lesson, 0, len(p.Lessons))
	for i, e := range p.Lessons {
		l := Lesson{
			ID:          e.ID,
			Title:       e.Title,
			Type:        e.Type,
			Difficulty:  e.Difficulty,
			Description: e.Description,
			OrderIndex:  e.OrderIndex,
			Active:      e.Active == nil || *e.Active,
			Content:     e.Content,
		}
		if l.Type == "" {
			l.Type = TypePronunciation
		}
		if l.OrderIndex == 0 {
			l.OrderIndex = i + 1
		}
		if err := Validate(&l); err != nil {
			return nil, err
		}
		if seen[l.ID] {
			return nil, fmt.Errorf("%w: duplicate lesson id %q", ErrInvalidContent, l.ID)
		}
		seen[l.ID] = true
		out = append(out, l)
	}
	return out, nil
}
