// Package align scores a spoken transcript against a target sentence.
//
// Matching is deliberately local: each target word only looks for a
// counterpart within a small window of positions around its own index.
// That tolerates minor insertions, deletions, and reorderings without the
// cost (or the behavior change) of a full sequence alignment.
package align

import "github.com/rahulnair/lingua/internal/textnorm"

// WindowRadius is how many input-word positions either side of a target
// word's own index are searched for its best match.
const WindowRadius = 2

// Class is the per-word accuracy classification.
type Class int

const (
	// Exact means an input word in the window matched with distance 0.
	Exact Class = iota
	// Close means the best in-window distance was small relative to the word.
	Close
	// Mismatch means nothing in the window came near the target word.
	Mismatch
)

// String returns the lowercase name of the class.
func (c Class) String() string {
	switch c {
	case Exact:
		return "exact"
	case Close:
		return "close"
	default:
		return "mismatch"
	}
}

// WordScore is the alignment result for a single target word.
type WordScore struct {
	// Word is the normalized target word.
	Word string
	// Distance is the best edit distance found inside the search window.
	Distance int
	// Class is the accuracy classification derived from Distance.
	Class Class
}

// Words aligns a raw transcript against a raw target sentence and returns
// one WordScore per target word, in target order. Both inputs are
// normalized before comparison. A transcript with no words yields every
// target word classified Mismatch at maximal distance.
func Words(target, transcript string) []WordScore {
	targetWords := textnorm.Fields(target)
	inputWords := textnorm.Fields(transcript)

	scores := make([]WordScore, len(targetWords))
	for i, word := range targetWords {
		best := bestWindowDistance(word, inputWords, i)
		scores[i] = WordScore{
			Word:     word,
			Distance: best,
			Class:    classify(word, best),
		}
	}
	return scores
}

// noMatch is the distance reported when the search window contains no
// input words at all. Large enough to always classify as Mismatch.
const noMatch = 100

// bestWindowDistance returns the minimum edit distance from word to any
// input word within WindowRadius of index idx.
func bestWindowDistance(word string, inputWords []string, idx int) int {
	best := noMatch

	lo := idx - WindowRadius
	if lo < 0 {
		lo = 0
	}
	hi := idx + WindowRadius + 1
	if hi > len(inputWords) {
		hi = len(inputWords)
	}

	for j := lo; j < hi; j++ {
		if d := Distance(word, inputWords[j]); d < best {
			best = d
		}
	}
	return best
}

// classify maps a best distance to a Class. The thresholds (<=2, or half
// the word length) are heuristic constants carried over unchanged; they
// are tunable, not load-bearing.
func classify(word string, dist int) Class {
	switch {
	case dist == 0:
		return Exact
	case dist <= 2 || dist <= len([]rune(word))/2:
		return Close
	default:
		return Mismatch
	}
}
