package ot

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// randomAddSpan produces a random, well-formed AddSpan against a flat
// single-run document of length max, mirroring compose.rs's
// random_add_span monkey-test generator.
func randomAddSpan(rng *rand.Rand, max int) AddSpan {
	b := NewAddBuilder()
	n := 0
	for n < max {
		remaining := max - n
		slice := 1 + rng.Intn(remaining)
		b.Skip(slice)
		force := slice < remaining
		n += slice
		if force || rng.Intn(2) == 0 {
			length := 1 + rng.Intn(4)
			letters := make([]rune, length)
			for i := range letters {
				letters[i] = rune('a' + rng.Intn(26))
			}
			b.Chars(string(letters))
		}
	}
	return b.Build()
}

// randomDelSpan produces a random, well-formed DelSpan against a flat
// single-run document of length max, mirroring compose.rs's
// random_del_span monkey-test generator.
func randomDelSpan(rng *rand.Rand, max int) DelSpan {
	b := NewDelBuilder()
	n := 0
	for n < max {
		if max-n == 1 {
			b.Skip(1)
			n++
			continue
		}
		slice := 2 + rng.Intn(max-n-1)
		if slice == 2 {
			b.Skip(1)
			b.Chars(1)
			n += 2
			continue
		}
		keep := 1 + rng.Intn(slice-2)
		b.Skip(keep)
		b.Chars(slice - keep)
		n += slice
	}
	return b.Build()
}

func flatDoc(text string) Span { return Span{chars(text)} }

func docText(doc Span) string {
	s := ""
	for _, a := range doc {
		if c, ok := a.(DocChars); ok {
			s += c.Text
		}
	}
	return s
}

const propertyStartText = "Hello world!"

func TestProperty_ComposeAddAddMatchesSequentialApply(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	f := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		start := flatDoc(propertyStartText)

		a := randomAddSpan(rng, utf8Len(propertyStartText))
		middle := ApplyAdd(start, a)
		b := randomAddSpan(rng, utf8Len(docText(middle)))
		end := ApplyAdd(middle, b)

		composed := ComposeAddAdd(a, b)
		otherEnd := ApplyAdd(start, composed)
		return docsEqual(end, otherEnd)
	}
	require.NoError(t, quick.Check(f, cfg))
}

func TestProperty_ComposeDelDelMatchesSequentialApply(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	f := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		start := flatDoc(propertyStartText)

		a := randomDelSpan(rng, utf8Len(propertyStartText))
		middle := ApplyDelete(start, a)
		b := randomDelSpan(rng, utf8Len(docText(middle)))
		end := ApplyDelete(middle, b)

		composed := ComposeDelDel(a, b)
		otherEnd := ApplyDelete(start, composed)
		return docsEqual(end, otherEnd)
	}
	require.NoError(t, quick.Check(f, cfg))
}

func TestProperty_ComposeAddDelMatchesSequentialApply(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	f := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		start := flatDoc(propertyStartText)

		a := randomAddSpan(rng, utf8Len(propertyStartText))
		middle := ApplyAdd(start, a)
		b := randomDelSpan(rng, utf8Len(docText(middle)))
		end := ApplyDelete(middle, b)

		delOut, addOut := ComposeAddDel(a, b)
		middle2 := ApplyDelete(start, delOut)
		otherEnd := ApplyAdd(middle2, addOut)
		return docsEqual(end, otherEnd)
	}
	require.NoError(t, quick.Check(f, cfg))
}

// TestProperty_ComposeSatisfiesCompositionLaw checks the central law of
// spec.md §4.2 end to end: apply(apply(D, a), b) == apply(D, compose(a,
// b)), for randomly generated sequential operations.
func TestProperty_ComposeSatisfiesCompositionLaw(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	f := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		start := flatDoc(propertyStartText)

		a := randomOperation(rng, start)
		middle := ApplyOperation(start, a)
		b := randomOperation(rng, middle)
		end := ApplyOperation(middle, b)

		composed := Compose(a, b)
		otherEnd := ApplyOperation(start, composed)
		return docsEqual(end, otherEnd)
	}
	require.NoError(t, quick.Check(f, cfg))
}

func randomOperation(rng *rand.Rand, doc Span) Operation {
	del := randomDelSpan(rng, utf8Len(docText(doc)))
	middle := ApplyDelete(doc, del)
	add := randomAddSpan(rng, utf8Len(docText(middle)))
	return Operation{Del: del, Add: add}
}

func utf8Len(s string) int { return len([]rune(s)) }

func docsEqual(a, b Span) bool {
	return docText(a) == docText(b) && len(a) == len(b)
}

// TestProperty_NormalizeIsIdempotent checks spec.md §8's normalization
// idempotence property against random operations.
func TestProperty_NormalizeIsIdempotent(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	f := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		start := flatDoc(propertyStartText)
		op := randomOperation(rng, start)

		once := Normalize(op)
		twice := Normalize(once)
		return once.Equals(twice)
	}
	require.NoError(t, quick.Check(f, cfg))
}

// TestProperty_ComposeWithEmptyIsIdentity checks spec.md §8's identity
// property: composing with the empty operation never changes the
// observable document.
func TestProperty_ComposeWithEmptyIsIdentity(t *testing.T) {
	cfg := &quick.Config{MaxCount: 200}
	f := func(seed int64) bool {
		rng := rand.New(rand.NewSource(seed))
		start := flatDoc(propertyStartText)
		op := randomOperation(rng, start)

		direct := ApplyOperation(start, op)
		viaEmpty := ApplyOperation(start, Compose(op, Empty()))
		return docsEqual(direct, viaEmpty)
	}
	require.NoError(t, quick.Check(f, cfg))
}
