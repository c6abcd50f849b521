// Package wordscan adds word-boundary cursor motion on top of a Walker,
// grounded on edit-client's walker_right_word/walker_left_word (caret.rs)
// but using a real Unicode word segmenter (clipperhouse/uax29/words)
// instead of a single boundary-character check, so motion behaves
// correctly across scripts, contractions, and punctuation runs.
package wordscan

import (
	"unicode"

	"github.com/clipperhouse/uax29/words"

	"github.com/coreseekdev/inkweave/pkg/ot"
)

// segmentRuneLens splits text into uax29 word segments and returns each
// segment's rune length, in order.
func segmentRuneLens(text string) []int {
	segments := words.SegmentAllString(text)
	lens := make([]int, len(segments))
	for i, seg := range segments {
		lens[i] = len([]rune(seg))
	}
	return lens
}

// isWordlike reports whether a segment (given its first rune) counts as a
// word rather than whitespace or punctuation, mirroring the original's
// is_boundary_char check but phrased as what a word *is* instead of what
// stops one.
func isWordlike(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// NextWord advances w past the word the cursor currently sits at the
// start or middle of, stopping at the first non-word boundary within the
// enclosing character run, a DocGroup, or the end of the document —
// mirroring walker_right_word. It does not move at all if the cursor
// isn't positioned within word-forming text.
func NextWord(w *ot.Walker) {
	text, ok := w.HeadRun()
	if !ok || text == "" {
		return
	}
	runes := []rune(text)
	if !isWordlike(runes[0]) {
		return
	}
	lens := segmentRuneLens(text)
	if len(lens) == 0 {
		return
	}
	for i := 0; i < lens[0]; i++ {
		if !w.NextChar() {
			return
		}
	}
}

// BackWord retreats w before the word the cursor currently sits at the
// end of, stopping at the first non-word boundary within the enclosing
// character run, a DocGroup, or the start of the document — mirroring
// walker_left_word.
func BackWord(w *ot.Walker) {
	text, ok := w.UnheadRun()
	if !ok || text == "" {
		return
	}
	lens := segmentRuneLens(text)
	if len(lens) == 0 {
		return
	}
	runes := []rune(text)
	lastLen := lens[len(lens)-1]
	lastStart := len(runes) - lastLen
	if !isWordlike(runes[lastStart]) {
		return
	}
	for i := 0; i < lastLen; i++ {
		if !w.BackChar() {
			return
		}
	}
}
