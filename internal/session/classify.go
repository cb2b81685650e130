package session

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// Classify reports whether the spoken transcript matches the target word.
// The check is a loose containment test so carrier phrases such as
// "the cat" still match "cat".
func Classify(transcript, target string) bool {
	return strings.Contains(
		strings.ToLower(strings.TrimSpace(transcript)),
		strings.ToLower(target),
	)
}

// Similarity returns the Jaro-Winkler closeness (0-1) between target and the
// closest word of transcript. It is only used for learner feedback.
func Similarity(transcript, target string) float64 {
	t := strings.ToLower(strings.TrimSpace(target))
	if t == "" {
		return 0
	}
	spoken := strings.ToLower(strings.TrimSpace(transcript))
	if spoken == "" {
		return 0
	}

	best := matchr.JaroWinkler(spoken, t, false)
	for _, w := range strings.Fields(spoken) {
		if s := matchr.JaroWinkler(w, t, false); s > best {
			best = s
		}
	}
	return best
}

// SoundsAlike reports whether any transcript word shares a Double Metaphone
// code with the target.
func SoundsAlike(transcript, target string) bool {
	tp, ts := matchr.DoubleMetaphone(strings.ToLower(target))
	for _, w := range strings.Fields(strings.ToLower(transcript)) {
		p, s := matchr.DoubleMetaphone(w)
		if codesOverlap(p, s, tp, ts) {
			return true
		}
	}
	return false
}

func codesOverlap(a1, a2, b1, b2 string) bool {
	for _, a := range []string{a1, a2} {
		if a == "" {
			continue
		}
		if a == b1 || a == b2 {
			return true
		}
	}
	return false
}
