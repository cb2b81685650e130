package lessons

import "errors"

// ErrInvalidContent is returned when lesson content fails validation.
var ErrInvalidContent = errors.New("invalid lesson content")

// Word is a single practice item. Order within a lesson is meaningful.
type Word struct {
	Word        string `json:"word" yaml:"word"`
	Translation string `json:"translation" yaml:"translation"`
	Image       string `json:"image" yaml:"image"` // glyph shown next to the word
}

// Content is the structured body of a lesson.
type Content struct {
	Words []Word `json:"words" yaml:"words"`
}

// Lesson is a named, ordered set of word-practice items.
type Lesson struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Type        string  `json:"type" yaml:"type"`
	Difficulty  string  `json:"difficulty" yaml:"difficulty"`
	Description string  `json:"description" yaml:"description"`
	OrderIndex  int     `json:"order_index" yaml:"order_index"`
	Active      bool    `json:"is_active" yaml:"is_active"`
	Content     Content `json:"content" yaml:"content"`
}

// Lesson types.
const (
	TypePronunciation = "pronunciation"
	TypeVocabulary    = "vocabulary"
)

// WordCount returns the number of practice words in the lesson.
func (l *Lesson) WordCount() int {
	if l == nil {
		return 0
	}
	return len(l.Content.Words)
}
