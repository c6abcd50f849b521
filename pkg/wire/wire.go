// Package wire implements the operation serialization convention: an
// Operation marshals to a two-element JSON array, [delSpan, addSpan],
// each a flat array of tagged atom objects (a "kind" discriminator plus
// that kind's fields). Generalizes the teacher's ToJSON/FromJSON
// array-of-primitives shape (operation.go) to tree atoms, which need a
// tag because a single JSON value no longer tells skip/chars/group apart
// on its own.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/coreseekdev/inkweave/pkg/ot"
)

const (
	kindSkip      = "skip"
	kindChars     = "chars"
	kindGroup     = "group"
	kindWithGroup = "withGroup"
	kindStyles    = "styles"
)

// wireDelAtom is the JSON shape of a single DelElement.
type wireDelAtom struct {
	Kind  string        `json:"kind"`
	N     int           `json:"n,omitempty"`
	Inner []wireDelAtom `json:"inner,omitempty"`
}

// wireAddAtom is the JSON shape of a single AddElement.
type wireAddAtom struct {
	Kind   string        `json:"kind"`
	N      int           `json:"n,omitempty"`
	Text   string        `json:"text,omitempty"`
	Attrs  ot.Attrs      `json:"attrs,omitempty"`
	Inner  []wireAddAtom `json:"inner,omitempty"`
	Styles ot.CharStyle  `json:"styles,omitempty"`
}

// MarshalOperation encodes op as the [delSpan, addSpan] two-array shape.
func MarshalOperation(op ot.Operation) ([]byte, error) {
	del := delSpanToWire(op.Del)
	add := addSpanToWire(op.Add)
	return json.Marshal([2]any{del, add})
}

// UnmarshalOperation decodes the [delSpan, addSpan] shape produced by
// MarshalOperation back into an Operation.
func UnmarshalOperation(data []byte) (ot.Operation, error) {
	var envelope [2]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ot.Operation{}, fmt.Errorf("wire: decode envelope: %w", err)
	}

	var wireDel []wireDelAtom
	if err := json.Unmarshal(envelope[0], &wireDel); err != nil {
		return ot.Operation{}, fmt.Errorf("wire: decode del span: %w", err)
	}
	var wireAdd []wireAddAtom
	if err := json.Unmarshal(envelope[1], &wireAdd); err != nil {
		return ot.Operation{}, fmt.Errorf("wire: decode add span: %w", err)
	}

	del, err := wireToDelSpan(wireDel)
	if err != nil {
		return ot.Operation{}, err
	}
	add, err := wireToAddSpan(wireAdd)
	if err != nil {
		return ot.Operation{}, err
	}
	return ot.Operation{Del: del, Add: add}, nil
}

func delSpanToWire(span ot.DelSpan) []wireDelAtom {
	out := make([]wireDelAtom, len(span))
	for i, atom := range span {
		out[i] = delAtomToWire(atom)
	}
	return out
}

func delAtomToWire(atom ot.DelElement) wireDelAtom {
	switch v := atom.(type) {
	case ot.DelSkip:
		return wireDelAtom{Kind: kindSkip, N: int(v)}
	case ot.DelChars:
		return wireDelAtom{Kind: kindChars, N: int(v)}
	case ot.DelGroup:
		return wireDelAtom{Kind: kindGroup, Inner: delSpanToWire(v.Inner)}
	case ot.DelWithGroup:
		return wireDelAtom{Kind: kindWithGroup, Inner: delSpanToWire(v.Inner)}
	default:
		panic(&ot.StructuralError{Msg: fmt.Sprintf("wire: unknown DelElement %T", atom)})
	}
}

func addSpanToWire(span ot.AddSpan) []wireAddAtom {
	out := make([]wireAddAtom, len(span))
	for i, atom := range span {
		out[i] = addAtomToWire(atom)
	}
	return out
}

func addAtomToWire(atom ot.AddElement) wireAddAtom {
	switch v := atom.(type) {
	case ot.AddSkip:
		return wireAddAtom{Kind: kindSkip, N: int(v)}
	case ot.AddChars:
		return wireAddAtom{Kind: kindChars, Text: string(v)}
	case ot.AddGroup:
		return wireAddAtom{Kind: kindGroup, Attrs: v.Attrs, Inner: addSpanToWire(v.Inner)}
	case ot.AddWithGroup:
		return wireAddAtom{Kind: kindWithGroup, Inner: addSpanToWire(v.Inner)}
	case ot.AddStyles:
		return wireAddAtom{Kind: kindStyles, N: v.N, Styles: v.Styles}
	default:
		panic(&ot.StructuralError{Msg: fmt.Sprintf("wire: unknown AddElement %T", atom)})
	}
}

func wireToDelSpan(span []wireDelAtom) (ot.DelSpan, error) {
	out := make(ot.DelSpan, len(span))
	for i, atom := range span {
		e, err := wireToDelAtom(atom)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func wireToDelAtom(atom wireDelAtom) (ot.DelElement, error) {
	switch atom.Kind {
	case kindSkip:
		return ot.DelSkip(atom.N), nil
	case kindChars:
		return ot.DelChars(atom.N), nil
	case kindGroup:
		inner, err := wireToDelSpan(atom.Inner)
		if err != nil {
			return nil, err
		}
		return ot.DelGroup{Inner: inner}, nil
	case kindWithGroup:
		inner, err := wireToDelSpan(atom.Inner)
		if err != nil {
			return nil, err
		}
		return ot.DelWithGroup{Inner: inner}, nil
	default:
		return nil, fmt.Errorf("wire: unknown del atom kind %q", atom.Kind)
	}
}

func wireToAddSpan(span []wireAddAtom) (ot.AddSpan, error) {
	out := make(ot.AddSpan, len(span))
	for i, atom := range span {
		e, err := wireToAddAtom(atom)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func wireToAddAtom(atom wireAddAtom) (ot.AddElement, error) {
	switch atom.Kind {
	case kindSkip:
		return ot.AddSkip(atom.N), nil
	case kindChars:
		return ot.AddChars(atom.Text), nil
	case kindGroup:
		inner, err := wireToAddSpan(atom.Inner)
		if err != nil {
			return nil, err
		}
		return ot.AddGroup{Attrs: atom.Attrs, Inner: inner}, nil
	case kindWithGroup:
		inner, err := wireToAddSpan(atom.Inner)
		if err != nil {
			return nil, err
		}
		return ot.AddWithGroup{Inner: inner}, nil
	case kindStyles:
		return ot.AddStyles{N: atom.N, Styles: atom.Styles}, nil
	default:
		return nil, fmt.Errorf("wire: unknown add atom kind %q", atom.Kind)
	}
}
