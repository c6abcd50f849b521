package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBuilder_SkipCharsCoalesce(t *testing.T) {
	b := NewAddBuilder()
	b.Skip(3)
	b.Chars("ab")
	b.Chars("cd")
	b.Skip(2)

	got := b.Build()
	want := AddSpan{AddSkip(3), AddChars("abcd"), AddSkip(2)}
	assert.Equal(t, want, got)
}

func TestAddBuilder_Group(t *testing.T) {
	b := NewAddBuilder()
	b.Skip(1)
	b.Begin()
	b.Chars("x")
	b.Close(Attrs{"kind": "caret"})

	got := b.Build()
	require.Len(t, got, 2)
	assert.Equal(t, AddSkip(1), got[0])
	group := got[1].(AddGroup)
	assert.Equal(t, "caret", group.Attrs["kind"])
	assert.Equal(t, AddSpan{AddChars("x")}, group.Inner)
}

func TestAddBuilder_UnclosedFramePanicsOnBuild(t *testing.T) {
	b := NewAddBuilder()
	b.Begin()
	assert.Panics(t, func() { b.Build() })
}

func TestDelBuilder_SkipCharsCoalesce(t *testing.T) {
	b := NewDelBuilder()
	b.Skip(2)
	b.Chars(3)
	b.Chars(1)

	got := b.Build()
	assert.Equal(t, DelSpan{DelSkip(2), DelChars(4)}, got)
}

func TestDelBuilder_WithGroup(t *testing.T) {
	b := NewDelBuilder()
	b.BeginWithGroup()
	b.Chars(2)
	b.CloseWithGroup()

	got := b.Build()
	require.Len(t, got, 1)
	wg := got[0].(DelWithGroup)
	assert.Equal(t, DelSpan{DelChars(2)}, wg.Inner)
}

func TestWalker_ToWriter_ExitResultPadsTrailingSkip(t *testing.T) {
	w := NewWalker(Span{chars("Hello World!")})
	w.GotoPos(6)

	wr := w.ToWriter()
	wr.Del.Chars(5)
	wr.Add.Chars("there")

	op := wr.ExitResult()
	want := Operation{
		Del: DelSpan{DelSkip(6), DelChars(5), DelSkip(1)},
		Add: AddSpan{AddSkip(6), AddChars("there"), AddSkip(1)},
	}
	assert.True(t, op.Equals(want), "got %#v", op)

	got := ApplyOperation(Span{chars("Hello World!")}, op)
	require.Len(t, got, 1)
	assert.Equal(t, "Hello there!", got[0].(DocChars).Text)
}

func TestWalker_ToWriter_PanicsBelowRootDepth(t *testing.T) {
	w := ToCursor(sampleDoc(), []int{2, 0})
	assert.Panics(t, func() { w.ToWriter() })
}

func TestTransformAdvance_CaretMoveAcrossDeletedUnit(t *testing.T) {
	// Delete the caret group at position 1, then (at the walker's new
	// position 1, one unit earlier in the post-delete document but
	// still position 2 against the original doc) insert a fresh caret.
	doc := Span{chars("a"), DocGroup{Attrs: Attrs{"kind": "caret"}}, chars("b")}

	w := NewWalker(doc)
	w.GotoPos(1)
	delWriter := w.ToWriter()
	delWriter.Del.Begin()
	delWriter.Del.Close()
	a := delWriter.ExitResult()

	w.NextChar() // conceptually moves to where the new caret belongs
	addWriter := w.ToWriter()
	addWriter.Add.Begin()
	addWriter.Add.Close(Attrs{"kind": "caret"})
	b := addWriter.ExitResult()

	combined := TransformAdvance(a, b)
	got := ApplyOperation(doc, combined)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].(DocChars).Text)
	assert.Equal(t, "caret", got[1].(DocGroup).Attrs["kind"])
	assert.Equal(t, "b", got[2].(DocChars).Text)
}
