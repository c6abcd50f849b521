// Package ot implements the operational-transform core for a tree-shaped
// rich-text document: the document model, the apply engine, the compose
// engine, the normalizer, and the positional walker/writer used to build
// operations.
package ot

import "unicode/utf8"

// Attrs is an opaque attribute bag carried by groups. The core never
// inspects individual keys; collaborators (schema packages, pkg/caret)
// define the vocabulary. Equality is structural.
type Attrs map[string]string

// Equal reports whether two attribute bags are structurally identical.
func (a Attrs) Equal(b Attrs) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the attribute bag.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// CharStyle is a per-rune style overlay, key-wise merged by AddStyles.
type CharStyle map[string]string

// mergeStyle returns the right-biased key-wise union of a and b.
func mergeStyle(a, b CharStyle) CharStyle {
	if len(a) == 0 {
		return b.clone()
	}
	out := make(CharStyle, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func (a CharStyle) clone() CharStyle {
	if a == nil {
		return nil
	}
	out := make(CharStyle, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// DocElement is a single atom of a document span: either a run of
// characters (DocChars) or a nested group (DocGroup). It is a closed sum
// type — docElement() is unexported so no other package can implement it.
type DocElement interface {
	docElement()
	// Len reports the atom's length in document units: rune count for a
	// character run, 1 for a group.
	Len() int
}

// DocChars is a run of characters, optionally carrying a per-rune style
// overlay. Styles is nil when no AddStyles has ever touched this run, to
// keep the common case allocation-free.
type DocChars struct {
	Text   string
	Styles []CharStyle // nil, or exactly RuneLen(Text) entries
}

func (DocChars) docElement() {}

// RuneLen returns the number of Unicode scalar values in the run.
func (c DocChars) RuneLen() int { return utf8.RuneCountInString(c.Text) }

// Len implements DocElement.
func (c DocChars) Len() int { return c.RuneLen() }

// runes decomposes the run into a slice of individual runes, for splitting.
func (c DocChars) runes() []rune { return []rune(c.Text) }

// SplitAt splits the run after n runes, returning the left and right
// halves. Panics if n is out of [0, RuneLen()] — callers never invoke this
// out of range because the apply/compose engines always compare against
// RuneLen() first.
func (c DocChars) SplitAt(n int) (left, right DocChars) {
	rs := c.runes()
	if n < 0 || n > len(rs) {
		panic(&StructuralError{Msg: "DocChars.SplitAt out of range"})
	}
	left = DocChars{Text: string(rs[:n])}
	right = DocChars{Text: string(rs[n:])}
	if c.Styles != nil {
		left.Styles = append([]CharStyle(nil), c.Styles[:n]...)
		right.Styles = append([]CharStyle(nil), c.Styles[n:]...)
	}
	return
}

// WithStyleOverlay returns a copy of c with styles merged key-wise
// (right-biased) into the first n runes. Panics if n > RuneLen().
func (c DocChars) WithStyleOverlay(n int, styles CharStyle) DocChars {
	rs := c.runes()
	if n > len(rs) {
		panic(&StructuralError{Msg: "WithStyleOverlay out of range"})
	}
	out := DocChars{Text: c.Text, Styles: make([]CharStyle, len(rs))}
	for i := range rs {
		var existing CharStyle
		if c.Styles != nil {
			existing = c.Styles[i]
		}
		if i < n {
			out.Styles[i] = mergeStyle(existing, styles)
		} else {
			out.Styles[i] = existing
		}
	}
	return out
}

// DocGroup is an inner document node: an attribute bag and an ordered
// child span. A zero-child DocGroup with a distinguished attribute set is
// the caret convention described in pkg/caret; the core treats it like any
// other group.
type DocGroup struct {
	Attrs    Attrs
	Children Span
}

func (DocGroup) docElement() {}

// Len implements DocElement: a group always counts as one unit at its
// parent's depth, regardless of its children.
func (DocGroup) Len() int { return 1 }

// Span is an ordered sequence of document atoms. A Document is a
// top-level Span.
type Span []DocElement

// PlaceDocChars appends text to span, coalescing with a trailing DocChars
// atom that carries no style overlay. Mixed-style runs are never coalesced
// so WithStyleOverlay never has to renumber an existing overlay.
func PlaceDocChars(span Span, text string) Span {
	if text == "" {
		return span
	}
	if n := len(span); n > 0 {
		if last, ok := span[n-1].(DocChars); ok && last.Styles == nil {
			span[n-1] = DocChars{Text: last.Text + text}
			return span
		}
	}
	return append(span, DocChars{Text: text})
}

// PlaceDocElement appends atom to span, coalescing adjacent plain
// DocChars runs via PlaceDocChars and pushing everything else verbatim.
func PlaceDocElement(span Span, atom DocElement) Span {
	if c, ok := atom.(DocChars); ok && c.Styles == nil {
		return PlaceDocChars(span, c.Text)
	}
	return append(span, atom)
}

// PlaceDocSpan appends every atom of more to span via PlaceDocElement.
func PlaceDocSpan(span Span, more Span) Span {
	for _, atom := range more {
		span = PlaceDocElement(span, atom)
	}
	return span
}
