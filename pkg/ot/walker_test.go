package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() Span {
	return Span{
		chars("ab"),
		DocGroup{Attrs: Attrs{"kind": "caret"}, Children: Span{}},
		chars("cd"),
	}
}

func TestWalker_GotoPos(t *testing.T) {
	w := NewWalker(sampleDoc())
	assert.True(t, w.GotoPos(2))
	assert.Equal(t, 2, w.Path()[0])
	assert.False(t, w.GotoPos(99))
	assert.Equal(t, 2, w.Path()[0], "walker must stay put on an out-of-range GotoPos")
}

func TestWalker_NextBackChar(t *testing.T) {
	w := NewWalker(sampleDoc())
	require.True(t, w.NextChar())
	require.True(t, w.NextChar())
	assert.Equal(t, 2, w.Path()[0])
	require.True(t, w.BackChar())
	assert.Equal(t, 1, w.Path()[0])
	w.GotoPos(0)
	assert.False(t, w.BackChar())
}

func TestWalker_NextBackBlock(t *testing.T) {
	w := NewWalker(sampleDoc())
	require.True(t, w.NextBlock())
	assert.Equal(t, 3, w.Path()[0]) // lands just past the 1-unit group, after 2 chars
	assert.False(t, w.NextBlock())
	require.True(t, w.BackBlock())
	assert.Equal(t, 2, w.Path()[0])
}

func TestWalker_HeadUnhead(t *testing.T) {
	w := NewWalker(sampleDoc())
	w.GotoPos(2)
	group, ok := w.Head().(DocGroup)
	require.True(t, ok)
	assert.Equal(t, "caret", group.Attrs["kind"])

	prev, ok := w.Unhead().(DocChars)
	require.True(t, ok)
	assert.Equal(t, "ab", prev.Text)
}

func TestWalker_HeadAtEndIsNil(t *testing.T) {
	w := NewWalker(sampleDoc())
	w.GotoEnd()
	assert.Nil(t, w.Head())
}

func TestWalker_HeadRunUnheadRun_MidRun(t *testing.T) {
	w := NewWalker(sampleDoc())
	w.GotoPos(1) // mid the leading "ab" run
	text, ok := w.HeadRun()
	require.True(t, ok)
	assert.Equal(t, "b", text)

	before, ok := w.UnheadRun()
	require.True(t, ok)
	assert.Equal(t, "a", before)
}

func TestWalker_HeadRunUnheadRun_AtGroupBoundary(t *testing.T) {
	w := NewWalker(sampleDoc())
	w.GotoPos(2) // just before the caret group
	_, ok := w.HeadRun()
	assert.False(t, ok, "cursor sits on a DocGroup, not a character run")

	before, ok := w.UnheadRun()
	require.True(t, ok)
	assert.Equal(t, "ab", before)
}

func TestWalker_HeadRunUnheadRun_AfterGroup(t *testing.T) {
	w := NewWalker(sampleDoc())
	w.GotoPos(3) // just after the caret group, start of "cd"
	text, ok := w.HeadRun()
	require.True(t, ok)
	assert.Equal(t, "cd", text)

	_, ok = w.UnheadRun()
	assert.False(t, ok, "cursor sits just past a DocGroup, not inside a character run")
}

func TestWalker_ToCursorDescendsIntoGroup(t *testing.T) {
	w := ToCursor(sampleDoc(), []int{2, 0})
	assert.Equal(t, []int{2, 0}, w.Path())
	assert.Empty(t, w.currentSpan())
}
