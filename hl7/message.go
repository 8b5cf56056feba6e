// Package hl7 is the small facade spec.md names as out of core scope
// (selecting parser vs. builder, message-detail convenience access):
// it exposes both representations behind the shared element.Element
// contract and a thin Message wrapper with validation and escaping.
package hl7

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/hl7kit/gohl7/builder"
	"github.com/hl7kit/gohl7/element"
	"github.com/hl7kit/gohl7/encoding"
	"github.com/hl7kit/gohl7/parser"
)

// representation is satisfied by both parser.Message and
// builder.Message: each knows how to render its own representation
// back to wire text (the generic Node/Cursor Value() methods at the
// Message level cannot, since segments are joined by the segment
// terminator rather than a Level delimiter) and each tracks its own
// current delimiter set, which MSH-1/MSH-2 writes can replace.
type representation interface {
	String() string
	Delimiters() *encoding.Delimiters
}

// Message wraps either a parser.Message or a builder.Message behind the
// same surface, so callers can pick the lazy (read-heavy) or eager
// (write-heavy) representation without changing how they address it.
type Message struct {
	root element.Element
	repr representation
	id   uuid.UUID
}

// Parse builds a lazy, string-backed Message from raw HL7 text.
func Parse(s string) (*Message, error) {
	pm, err := parser.Parse(s)
	if err != nil {
		return nil, err
	}
	return &Message{root: pm.Root(), repr: pm, id: uuid.New()}, nil
}

// Build returns an eager, node-graph-backed Message. With no argument it
// is seeded with the minimal valid header; with one argument it parses
// that text the same way Build's builder.Build does.
func Build(s ...string) (*Message, error) {
	if len(s) == 0 {
		bm := builder.NewMessage()
		return &Message{root: bm.Root(), repr: bm, id: uuid.New()}, nil
	}
	bm, err := builder.Build(s[0])
	if err != nil {
		return nil, err
	}
	return &Message{root: bm.Root(), repr: bm, id: uuid.New()}, nil
}

// Root returns the Message-level Element, usable with the generic
// element package operations (Insert, Delete, Move, AddRange).
func (m *Message) Root() element.Element {
	return m.root
}

// Delimiters returns the message's current delimiter set.
func (m *Message) Delimiters() *encoding.Delimiters {
	return m.repr.Delimiters()
}

// Segments returns every Segment-level child whose type code matches
// name (case-insensitive), e.g. Segments("OBX") for a repeating segment.
func (m *Message) Segments(name string) ([]element.Element, error) {
	name = strings.ToUpper(name)
	var out []element.Element
	for i := 1; i <= m.root.ValueCount(); i++ {
		seg, err := m.root.Child(i)
		if err != nil {
			continue
		}
		typeCode, err := seg.Child(0)
		if err != nil {
			continue
		}
		if strings.ToUpper(typeCode.Value()) == name {
			out = append(out, seg)
		}
	}
	return out, nil
}

// Segment returns the first Segment-level child whose type code matches
// name, or an error if none is found.
func (m *Message) Segment(name string) (element.Element, error) {
	segs, err := m.Segments(name)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("hl7: no %s segment found", strings.ToUpper(name))
	}
	return segs[0], nil
}

// Escape applies the message's current delimiters to text.
func (m *Message) Escape(text string) string {
	return m.Delimiters().Escape(text)
}

// Unescape decodes HL7 escape sequences in text using the message's
// current delimiters.
func (m *Message) Unescape(text string) string {
	return m.Delimiters().Unescape(text)
}

// Validate reports whether m is structurally sound: non-empty and
// MSH-prefixed. It never returns a detailed error, per spec.md §7; use
// Details for the full list of findings.
func (m *Message) Validate() bool {
	return m.Details().ErrorOrNil() == nil
}

// Details runs every structural check Validate summarizes as a bool and
// collects them into a single *multierror.Error, so callers who want
// more than pass/fail can see every finding at once.
func (m *Message) Details() *multierror.Error {
	var result *multierror.Error

	if m.root.ValueCount() == 0 {
		result = multierror.Append(result, &element.Error{Kind: element.ErrMessageDataMustNotBeNull})
		return result
	}

	first, err := m.root.Child(1)
	if err != nil {
		result = multierror.Append(result, err)
		return result
	}
	typeCode, err := first.Child(0)
	if err != nil || strings.ToUpper(typeCode.Value()) != "MSH" {
		result = multierror.Append(result, &element.Error{Kind: element.ErrMessageDataMustStartWithMsh})
	}

	return result
}

// String returns the message's current raw text.
func (m *Message) String() string {
	return m.repr.String()
}

// Clone returns a detached deep copy of m, sharing no state with the
// original and carrying its own identity.
func (m *Message) Clone() (*Message, error) {
	switch repr := m.repr.(type) {
	case *parser.Message:
		clone, err := repr.Clone()
		if err != nil {
			return nil, err
		}
		return &Message{root: clone.Root(), repr: clone, id: uuid.New()}, nil
	case *builder.Message:
		clone := repr.Clone()
		return &Message{root: clone.Root(), repr: clone, id: uuid.New()}, nil
	default:
		return nil, fmt.Errorf("hl7: unknown representation %T", m.repr)
	}
}
