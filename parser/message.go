// Package parser implements the lazy, string-backed element tree: a
// Message holds the raw text as a single buffer and slices out segments,
// fields, repetitions, components and subcomponents on demand instead of
// building an eager node graph up front.
package parser

import (
	"strings"

	"github.com/hl7kit/gohl7/element"
	"github.com/hl7kit/gohl7/encoding"
)

// Message owns the backing text buffer for a parsed HL7 message and the
// delimiter set derived from its MSH segment.
type Message struct {
	buf    []rune
	delims *encoding.Delimiters
	root   *Cursor
	cache  map[int]*Cursor // not populated; segment cursors are cached in root.children
}

// Parse builds a Message from raw HL7 text. It returns an
// *element.Error wrapping element.ErrMessageDataMustNotBeNull,
// element.ErrMessageDataIsTooShort or element.ErrMessageDataMustStartWithMsh
// when s cannot possibly be a valid message.
func Parse(s string) (*Message, error) {
	if s == "" {
		return nil, &element.Error{Kind: element.ErrMessageDataMustNotBeNull}
	}
	normalized := normalizeLineEndings(s)
	buf := []rune(normalized)

	if len(buf) < 8 {
		return nil, &element.Error{Kind: element.ErrMessageDataIsTooShort}
	}
	if string(buf[:3]) != "MSH" {
		return nil, &element.Error{Kind: element.ErrMessageDataMustStartWithMsh}
	}

	delims, err := encoding.ParseDelimiters([]byte(string(buf[:8])))
	if err != nil {
		return nil, err
	}

	m := &Message{buf: buf, delims: delims}
	m.root = newCursor(m, nil, element.LevelMessage, 0, 0, len(buf))
	return m, nil
}

// normalizeLineEndings maps CRLF and lone LF segment separators to the
// HL7 wire format's bare CR, per the Open Question spec.md §9 resolves
// this way: accept both on read, emit only CR.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\r")
	s = strings.ReplaceAll(s, "\n", "\r")
	return s
}

// Root returns the Message-level Element, the entry point into the tree.
func (m *Message) Root() element.Element {
	return m.root
}

// Delimiters returns the message's current delimiter set. The returned
// value is a snapshot; further writes to MSH-1/MSH-2 produce a new one.
func (m *Message) Delimiters() *encoding.Delimiters {
	return m.delims
}

// String returns the message's current raw text.
func (m *Message) String() string {
	return string(m.buf)
}

// Clone returns a detached deep copy of m: a fresh buffer and cursor
// tree reparsed from m's current text, sharing no state with m.
func (m *Message) Clone() (*Message, error) {
	return Parse(string(m.buf))
}

// splice replaces buf[start:end] with replacement, then invalidates any
// cached Cursor whose absolute range intersects [start, end) without
// strictly containing it, resizes the cached Cursors that strictly
// contain it, and shifts the ranges of every Cursor positioned after the
// edit by the resulting length delta. Every write path in this package funnels through splice
// so the cache never serves stale text.
func (m *Message) splice(start, end int, replacement []rune) {
	delta := len(replacement) - (end - start)

	tail := append([]rune{}, m.buf[end:]...)
	m.buf = append(m.buf[:start], replacement...)
	m.buf = append(m.buf, tail...)

	m.root.end = len(m.buf)
	m.root.invalidateRange(start, end, delta)
}

// rewriteDelimiterWide replaces every occurrence of old with replacement
// across the whole buffer, for the MSH-1/MSH-2 structural rewrite paths.
// It then invalidates the entire cache, since a delimiter change alters
// how every segment's text is parsed, not just one range.
func (m *Message) rewriteDelimiterWide(old, replacement rune) {
	for i, r := range m.buf {
		if r == old {
			m.buf[i] = replacement
		}
	}
	m.root.invalidateAll()
}
