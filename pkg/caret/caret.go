// Package caret implements the caret convention on top of pkg/ot: a
// client's cursor and selection are represented as zero-child DocGroup
// atoms carrying a distinguished attribute set, not as out-of-band
// metadata. Grounded on edit-client's client/actions/caret.rs
// (init_caret, caret_move, caret_clear, caret_word_select).
package caret

import (
	"github.com/google/uuid"

	"github.com/coreseekdev/inkweave/pkg/ot"
	"github.com/coreseekdev/inkweave/pkg/ot/wordscan"
)

// attrKind/attrClient/attrFocus name the reserved keys a caret group
// carries in its Attrs bag. No other part of the core inspects these;
// they are this package's own vocabulary (doc.go: "collaborators ...
// define the vocabulary").
const (
	attrKind   = "kind"
	kindCaret  = "caret"
	attrClient = "client"
	attrFocus  = "focus"
)

// Attrs builds the attribute bag for a caret group belonging to client,
// either its focus end (focus=true) or its anchor end (focus=false) —
// mirrors caret_attrs in the original.
func Attrs(client uuid.UUID, focus bool) ot.Attrs {
	return ot.Attrs{
		attrKind:   kindCaret,
		attrClient: client.String(),
		attrFocus:  focusAttr(focus),
	}
}

func focusAttr(focus bool) string {
	if focus {
		return "true"
	}
	return "false"
}

// IsCaret reports whether group is a caret group at all, for either end.
func IsCaret(group ot.DocGroup) bool {
	return group.Attrs[attrKind] == kindCaret
}

// ClientOf returns the owning client id of a caret group. ok is false if
// group isn't a caret group or its client attribute doesn't parse.
func ClientOf(group ot.DocGroup) (client uuid.UUID, ok bool) {
	if !IsCaret(group) {
		return uuid.UUID{}, false
	}
	id, err := uuid.Parse(group.Attrs[attrClient])
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

// IsFocus reports whether a caret group is the focus end (as opposed to
// the anchor end) of a client's selection.
func IsFocus(group ot.DocGroup) bool {
	return IsCaret(group) && group.Attrs[attrFocus] == "true"
}

// Init builds the operation that inserts a fresh, collapsed caret (anchor
// and focus coincident) at the start of doc for client — mirrors
// init_caret, which every new collaborator runs once on joining.
func Init(doc ot.Span, client uuid.UUID) ot.Operation {
	w := ot.NewWalker(doc)
	if !w.GotoPos(0) {
		panic(&ot.StructuralError{Msg: "caret.Init: empty walker could not reach position 0"})
	}
	writer := w.ToWriter()
	writer.Add.Begin()
	writer.Add.Close(Attrs(client, true))
	writer.Add.Begin()
	writer.Add.Close(Attrs(client, false))
	return writer.ExitResult()
}

// Clear builds the operation that deletes the caret group at w's current
// position — mirrors caret_clear_inner. Callers locate the group first
// (e.g. by walking to a previously recorded cursor path).
func Clear(w *ot.Walker) ot.Operation {
	writer := w.ToWriter()
	writer.Del.Begin()
	writer.Del.Close()
	return writer.ExitResult()
}

// Move builds the operation that removes the focus caret at w's current
// position and re-inserts it one unit forward (increase=true) or backward
// (increase=false). With preserveSelect=false it also inserts an anchor
// group at the new position, just before the focus; Move does not remove
// the client's previous anchor group. Uses TransformAdvance because both the deletion
// and the insertion are expressed against the same starting document.
func Move(w *ot.Walker, client uuid.UUID, increase, preserveSelect bool) ot.Operation {
	del := Clear(w)

	if increase {
		w.NextChar()
	} else {
		w.BackChar()
	}

	insertWriter := w.ToWriter()
	if !preserveSelect {
		insertWriter.Add.Begin()
		insertWriter.Add.Close(Attrs(client, false))
	}
	insertWriter.Add.Begin()
	insertWriter.Add.Close(Attrs(client, true))
	add := insertWriter.ExitResult()

	return ot.TransformAdvance(del, add)
}

// WordSelect builds the operation that places a client's caret on the
// word boundaries surrounding w's current position: an anchor group at
// the start of the word, a focus group at its end — mirrors
// caret_word_select. It only inserts these two groups; caret groups the
// client already has in the document are not removed.
func WordSelect(w *ot.Walker, client uuid.UUID) ot.Operation {
	anchorWalker := ot.ToCursor(w.Doc(), w.Path())
	wordscan.BackWord(anchorWalker)
	anchorWriter := anchorWalker.ToWriter()
	anchorWriter.Add.Begin()
	anchorWriter.Add.Close(Attrs(client, false))
	anchorOp := anchorWriter.ExitResult()

	focusWalker := ot.ToCursor(w.Doc(), w.Path())
	wordscan.NextWord(focusWalker)
	focusWriter := focusWalker.ToWriter()
	focusWriter.Add.Begin()
	focusWriter.Add.Close(Attrs(client, true))
	focusOp := focusWriter.ExitResult()

	return ot.TransformAdvance(anchorOp, focusOp)
}
