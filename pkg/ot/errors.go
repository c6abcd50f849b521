package ot

import (
	"fmt"
)

// StructuralError indicates an operation does not match document structure:
// a malformed operation upstream that must not occur against a well-typed
// input. It is always raised via panic, never returned as an error.
// Carrying a typed value (not a bare string) lets a recovering caller, or a
// test using require.PanicsWithValue, inspect what went wrong.
//
// This is the only typed failure this package raises. Walker motion and
// positioning (GotoPos, NextChar, BackChar, NextBlock, BackBlock, Head,
// Unhead) report failure with a plain bool instead of a distinct error
// type — there is no separate "cannot reach this position" error class,
// and Compose does not validate that one operation's target length
// matches the next operation's base length before composing them.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string { return "ot: structural error: " + e.Msg }

func panicStructural(format string, args ...any) {
	panic(&StructuralError{Msg: fmt.Sprintf(format, args...)})
}
