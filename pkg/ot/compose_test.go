package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeDelDel_SkipThenChars(t *testing.T) {
	a := DelSpan{DelSkip(6), DelChars(6)}
	b := DelSpan{DelChars(3)}

	got := ComposeDelDel(a, b)
	want := DelSpan{DelChars(3), DelSkip(3), DelChars(6)}
	assert.Equal(t, want, got)
}

func TestComposeDelDel_FullOverlap(t *testing.T) {
	a := DelSpan{DelSkip(6), DelChars(6)}
	b := DelSpan{DelChars(6)}

	got := ComposeDelDel(a, b)
	want := DelSpan{DelChars(12)}
	assert.Equal(t, want, got)
}

func TestComposeDelDel_WithGroupThenGroup(t *testing.T) {
	a := DelSpan{DelWithGroup{Inner: DelSpan{DelChars(6)}}}
	b := DelSpan{DelGroup{Inner: DelSpan{}}}

	got := ComposeDelDel(a, b)
	want := DelSpan{DelGroup{Inner: DelSpan{}}}
	assert.Equal(t, want, got)
}

func TestComposeDelDel_WithGroupVsCharsIsStructural(t *testing.T) {
	a := DelSpan{DelWithGroup{Inner: DelSpan{}}}
	b := DelSpan{DelChars(1)}
	assert.Panics(t, func() { ComposeDelDel(a, b) })
}

func TestComposeAddAdd_CharsThenChars(t *testing.T) {
	a := AddSpan{AddChars("World!")}
	b := AddSpan{AddChars("Hello ")}

	got := ComposeAddAdd(a, b)
	want := AddSpan{AddChars("Hello World!")}
	assert.Equal(t, want, got)
}

func TestComposeAddAdd_SkipPastInsertion(t *testing.T) {
	a := AddSpan{AddSkip(10), AddChars("h")}
	b := AddSpan{AddSkip(11), AddChars("i")}

	got := ComposeAddAdd(a, b)
	want := AddSpan{AddSkip(10), AddChars("hi")}
	assert.Equal(t, want, got)
}

func TestComposeAddDel_InsertionConsumedByDelete(t *testing.T) {
	a := AddSpan{AddSkip(3), AddChars("xyz"), AddSkip(3)}
	b := DelSpan{DelSkip(3), DelChars(3), DelSkip(3)}

	delOut, addOut := ComposeAddDel(a, b)
	assert.Equal(t, DelSpan{DelSkip(6)}, delOut)
	assert.Equal(t, AddSpan{AddSkip(6)}, addOut)
}

func TestComposeAddDel_DeletePunchesThroughToPreexisting(t *testing.T) {
	a := AddSpan{AddChars("xyz"), AddSkip(3)}
	b := DelSpan{DelChars(5)}

	delOut, addOut := ComposeAddDel(a, b)
	assert.Equal(t, DelSpan{DelChars(2)}, delOut)
	assert.Equal(t, AddSpan{AddSkip(1)}, addOut)
}

func TestCompose_IdentityOnEmpty(t *testing.T) {
	a := Operation{Del: DelSpan{DelSkip(3)}, Add: AddSpan{AddChars("x"), AddSkip(3)}}
	got := Compose(a, Empty())
	assert.True(t, got.Equals(a))
}

func TestCompose_MatchesSequentialApply(t *testing.T) {
	doc := Span{chars("Hello World!")}
	a := Operation{
		Del: DelSpan{DelSkip(12)},
		Add: AddSpan{AddSkip(6), AddChars("there, "), AddSkip(6)},
	}
	b := Operation{
		Del: DelSpan{DelSkip(6), DelChars(7), DelSkip(6)},
		Add: AddSpan{AddSkip(12)},
	}

	sequential := ApplyOperation(ApplyOperation(doc, a), b)
	composed := ApplyOperation(doc, Compose(a, b))

	assert.Equal(t, sequential, composed)
}
