package parser

import (
	"strings"

	"github.com/hl7kit/gohl7/element"
	"github.com/hl7kit/gohl7/encoding"
)

// Cursor is the parser representation's element.Element implementation.
// It never copies text: start/end are absolute offsets into the owning
// Message's buffer, and children are sliced out of that range on demand
// and cached until an intersecting write invalidates them.
type Cursor struct {
	msg      *Message
	parent   *Cursor
	level    element.Level
	index    int
	start    int
	end      int
	children map[int]*Cursor
}

func newCursor(msg *Message, parent *Cursor, level element.Level, index, start, end int) *Cursor {
	return &Cursor{msg: msg, parent: parent, level: level, index: index, start: start, end: end}
}

// Level implements element.Element.
func (c *Cursor) Level() element.Level { return c.level }

// Index implements element.Element.
func (c *Cursor) Index() int { return c.index }

// Parent implements element.Element.
func (c *Cursor) Parent() element.Element {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// Delimiter implements element.Element.
func (c *Cursor) Delimiter() rune {
	idx := c.level.DelimiterIndex()
	if idx < 0 {
		return 0
	}
	d := c.msg.delims
	switch idx {
	case 0:
		return d.Field
	case 1:
		return d.Repetition
	case 2:
		return d.Component
	case 3:
		return d.SubComponent
	default:
		return 0
	}
}

// text returns the raw slice of the message buffer this cursor spans.
func (c *Cursor) text() []rune {
	return c.msg.buf[c.start:c.end]
}

// bounds splits c's text on the given delimiter and returns the
// [start,end) absolute range of the (1-based) nth piece. ok is false if
// there is no such piece.
func (c *Cursor) bounds(delim rune, n int) (start, end int, ok bool) {
	if delim == 0 {
		return 0, 0, false
	}
	t := c.text()
	piece := 0
	segStart := c.start
	for i, r := range t {
		abs := c.start + i
		if r == delim {
			piece++
			if piece == n {
				return segStart, abs, true
			}
			segStart = abs + 1
		}
	}
	piece++
	if piece == n {
		return segStart, c.end, true
	}
	return 0, 0, false
}

// Child implements element.Element.
func (c *Cursor) Child(i int) (element.Element, error) {
	if c.children == nil {
		c.children = make(map[int]*Cursor)
	}
	if cached, ok := c.children[i]; ok {
		return cached, nil
	}

	var start, end int
	var ok bool

	switch c.level {
	case element.LevelMessage:
		start, end, ok = c.segmentBounds(i)
	case element.LevelSegment:
		start, end, ok = c.fieldBounds(i)
	default:
		start, end, ok = c.bounds(c.Delimiter(), i)
	}
	if !ok {
		return nil, &element.Error{Kind: element.ErrSegmentIndexMustBeGreaterThanZero, Detail: "child index out of range"}
	}

	child := newCursor(c.msg, c, c.level.Child(), i, start, end)
	c.children[i] = child
	return child, nil
}

// segmentBounds locates the i-th (1-based) segment in the message,
// splitting on the segment terminator.
func (c *Cursor) segmentBounds(i int) (start, end int, ok bool) {
	return c.bounds(encoding.SegmentTerminator, i)
}

// fieldBounds locates the i-th (0-based at i==0) field within a segment.
// Index 0 is the three-letter segment type code. For an ordinary
// segment, field 1 begins right after "XXX|"; for MSH, field 1 is the
// field delimiter character itself and field 2 is the four encoding
// characters, both special-cased per spec.md §4.3.
func (c *Cursor) fieldBounds(i int) (start, end int, ok bool) {
	t := c.text()
	name := ""
	if len(t) >= 3 {
		name = string(t[:3])
	}

	if i == 0 {
		if len(t) < 3 {
			return 0, 0, false
		}
		return c.start, c.start + 3, true
	}

	if name == "MSH" {
		d := c.msg.delims
		switch i {
		case 1:
			return c.start + 3, c.start + 4, true
		case 2:
			if len(t) < 8 {
				return 0, 0, false
			}
			return c.start + 4, c.start + 8, true
		default:
			// rest begins at the field delimiter that follows MSH-2, so
			// its first piece is empty and MSH-3 is its second piece.
			rest := newCursor(c.msg, c, c.level, 0, c.start+8, c.end)
			s, e, ok := rest.bounds(d.Field, i-1)
			return s, e, ok
		}
	}

	if len(t) < 4 {
		return 0, 0, false
	}
	rest := newCursor(c.msg, c, c.level, 0, c.start+4, c.end)
	return rest.bounds(c.msg.delims.Field, i)
}

// ValueCount implements element.Element.
//
// Segment counts fields by probing Child, since a segment's first
// field may be the special-cased MSH-1/MSH-2 pair rather than an
// ordinary delimiter-bounded span. Every other level counts delimiter
// occurrences directly over its own text.
func (c *Cursor) ValueCount() int {
	if c.level == element.LevelMessage || c.level == element.LevelSegment {
		n := 0
		for {
			if _, err := c.Child(n + 1); err != nil {
				break
			}
			n++
		}
		return n
	}

	delim := c.Delimiter()
	if delim == 0 {
		return 0
	}
	t := c.text()
	if len(t) == 0 {
		return 0
	}
	count := 1
	for _, r := range t {
		if r == delim {
			count++
		}
	}
	return count
}

// childDelimiter returns the delimiter this cursor's children are split
// on, handling the Message (segment terminator) and Segment (field
// delimiter) cases that Level.DelimiterIndex does not cover directly.
func (c *Cursor) childDelimiter() rune {
	switch c.level {
	case element.LevelMessage:
		return encoding.SegmentTerminator
	case element.LevelSegment:
		return c.msg.delims.Field
	default:
		return c.Delimiter()
	}
}

// Value implements element.Element.
func (c *Cursor) Value() string {
	return string(c.text())
}

// Values implements element.Element.
func (c *Cursor) Values() []string {
	n := c.ValueCount()
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		child, err := c.Child(i)
		if err != nil {
			out = append(out, "")
			continue
		}
		out = append(out, child.Value())
	}
	return out
}

// SetValue implements element.Element. It replaces c's entire span in the
// owning Message with s, through Message.splice so the cache stays
// coherent. A null s deletes c's position from its parent through
// element.Delete instead. Writes to MSH-1 or MSH-2 route through the
// message-wide delimiter rewrite, since those positions are structural.
func (c *Cursor) SetValue(s element.NullString) error {
	if s.IsNull() && c.parent != nil {
		return element.Delete(c.parent, c.index)
	}
	if c.isMSHField(1) {
		return c.setFieldSeparator(s)
	}
	if c.isMSHField(2) {
		return c.setEncodingCharacters(s)
	}

	text := s.String()
	c.msg.splice(c.start, c.end, []rune(text))
	return nil
}

func (c *Cursor) isMSHField(field int) bool {
	if c.level != element.LevelField || c.index != field {
		return false
	}
	seg := c.parent
	return seg != nil && seg.level == element.LevelSegment && seg.index == 1
}

func (c *Cursor) setFieldSeparator(s element.NullString) error {
	text := s.String()
	if len(text) != 1 {
		return &element.Error{Kind: element.ErrFixedFieldMustNotBeMoved, Detail: "MSH-1 must be exactly one character"}
	}
	old := c.msg.delims.Field
	c.msg.rewriteDelimiterWide(old, rune(text[0]))
	delims := c.msg.delims.Clone()
	delims.Field = rune(text[0])
	c.msg.delims = delims
	return nil
}

func (c *Cursor) setEncodingCharacters(s element.NullString) error {
	text := s.String()
	if len(text) != 4 {
		return &element.Error{Kind: element.ErrFixedFieldMustNotBeMoved, Detail: "MSH-2 must be exactly four characters"}
	}
	chars := []rune(text)
	old := c.msg.delims
	replacements := []struct{ old, new rune }{
		{old.Component, chars[0]},
		{old.Repetition, chars[1]},
		{old.Escape, chars[2]},
		{old.SubComponent, chars[3]},
	}
	for _, r := range replacements {
		c.msg.rewriteDelimiterWide(r.old, r.new)
	}
	c.msg.delims = &encoding.Delimiters{
		Field:        old.Field,
		Component:    chars[0],
		Repetition:   chars[1],
		Escape:       chars[2],
		SubComponent: chars[3],
	}
	return nil
}

// SetValues implements element.Element by rejoining values with c's
// child delimiter and writing the result as c's whole text. A Segment's
// Values/SetValues never address index 0 (the three-letter type code,
// and for MSH, fields 1/2), so setSegmentValues reconstructs that
// structural prefix from the current buffer before splicing, rather
// than overwriting the whole span with only the ordinary fields.
func (c *Cursor) SetValues(values []string) error {
	if c.level == element.LevelSegment {
		return c.setSegmentValues(values)
	}
	delim := c.childDelimiter()
	joined := strings.Join(values, string(delim))
	return c.SetValue(element.NewValue(joined))
}

// setSegmentValues rebuilds c's full segment text - type code, and for
// MSH the field1/field2 pair - around the ordinary field values, then
// splices the result over c's whole span.
func (c *Cursor) setSegmentValues(values []string) error {
	t := c.text()
	if len(t) < 3 {
		return &element.Error{Kind: element.ErrMessageDataIsTooShort, Detail: "segment shorter than its type code"}
	}
	name := string(t[:3])
	d := c.msg.delims

	var sb strings.Builder
	sb.WriteString(name)
	rest := values

	if name == "MSH" {
		if len(rest) > 0 {
			sb.WriteString(rest[0])
			rest = rest[1:]
		}
		if len(rest) > 0 {
			sb.WriteString(rest[0])
			rest = rest[1:]
		}
		// Field 3 starts immediately after field 2 whether or not it is
		// populated, so the delimiter always follows the encoding
		// characters.
		sb.WriteRune(d.Field)
		sb.WriteString(strings.Join(rest, string(d.Field)))
		c.msg.splice(c.start, c.end, []rune(sb.String()))
		return nil
	}

	for _, v := range rest {
		sb.WriteRune(d.Field)
		sb.WriteString(v)
	}

	c.msg.splice(c.start, c.end, []rune(sb.String()))
	return nil
}

// Clone implements element.Element, returning a detached copy whose text
// is frozen at clone time (it shares no Message with the original). A
// Message-level cursor's Value is already a whole, self-describing
// message, so it is parsed as-is; any other level's Value is just a
// slice of field text and needs the synthetic MSH wrapper to be
// reparsed into a standalone Message.
func (c *Cursor) Clone() element.Element {
	if c.level == element.LevelMessage {
		detached, err := Parse(c.Value())
		if err != nil {
			return &frozenCursor{level: c.level, index: c.index, value: c.Value(), delim: c.Delimiter()}
		}
		return detached.root
	}

	detached, err := Parse("MSH" + string(c.msg.delims.Field) + c.msg.delims.MSH2() + string(c.msg.delims.Field) + c.Value())
	if err != nil {
		// Fall back to a builder-free literal copy when the slice isn't
		// itself a parseable message (the common case: cloning a field,
		// not a whole message).
		return &frozenCursor{level: c.level, index: c.index, value: c.Value(), delim: c.Delimiter()}
	}
	return detached.root
}

// GetValue implements element.Element.
func (c *Cursor) GetValue(path ...int) (string, error) {
	e, err := element.Walk(c, path...)
	if err != nil {
		return "", err
	}
	return e.Value(), nil
}

// GetValues implements element.Element.
func (c *Cursor) GetValues(path ...int) ([]string, error) {
	e, err := element.Walk(c, path...)
	if err != nil {
		return nil, err
	}
	return e.Values(), nil
}

// invalidateRange drops any cached child whose absolute range intersects
// [start, end) without strictly containing it. A child that strictly
// contains the edit stays cached: its end moves by delta and its own
// children are processed the same way. Children positioned entirely
// after the edit are shifted by delta, and children positioned entirely
// before it are recursed into (their own sub-ranges are unaffected).
func (c *Cursor) invalidateRange(start, end, delta int) {
	if c.index != 0 || c.level != element.LevelMessage {
		if c.start >= end {
			c.start += delta
			c.end += delta
		} else if c.end <= start {
			// entirely before the edit: unaffected
		} else {
			// intersects: this cursor's own span changed length
			c.end += delta
		}
	}
	for i, child := range c.children {
		contains := child.start <= start && end <= child.end && (child.start != start || child.end != end)
		if !contains && rangesIntersect(child.start, child.end, start, end) {
			delete(c.children, i)
			continue
		}
		child.invalidateRange(start, end, delta)
	}
}

// invalidateAll drops every cached child in the whole tree, for the
// MSH-1/MSH-2 message-wide delimiter rewrite paths.
func (c *Cursor) invalidateAll() {
	c.end = len(c.msg.buf)
	c.children = nil
}

func rangesIntersect(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// frozenCursor is a detached, Message-free Element returned by Clone when
// the cloned span isn't itself a parseable message.
type frozenCursor struct {
	level element.Level
	index int
	value string
	delim rune
}

func (f *frozenCursor) Level() element.Level       { return f.level }
func (f *frozenCursor) Index() int                 { return f.index }
func (f *frozenCursor) Parent() element.Element    { return nil }
func (f *frozenCursor) Delimiter() rune            { return f.delim }
func (f *frozenCursor) Value() string              { return f.value }
func (f *frozenCursor) Clone() element.Element     { return &frozenCursor{f.level, f.index, f.value, f.delim} }
func (f *frozenCursor) ValueCount() int {
	if f.delim == 0 || f.value == "" {
		return 0
	}
	return len(strings.Split(f.value, string(f.delim)))
}
func (f *frozenCursor) Values() []string {
	if f.delim == 0 {
		return nil
	}
	return strings.Split(f.value, string(f.delim))
}
func (f *frozenCursor) SetValue(s element.NullString) error {
	f.value = s.String()
	return nil
}
func (f *frozenCursor) SetValues(values []string) error {
	f.value = strings.Join(values, string(f.delim))
	return nil
}
func (f *frozenCursor) Child(i int) (element.Element, error) {
	values := f.Values()
	if i < 1 || i > len(values) {
		return nil, &element.Error{Kind: element.ErrSegmentIndexMustBeGreaterThanZero}
	}
	return &frozenCursor{level: f.level.Child(), index: i, value: values[i-1]}, nil
}
func (f *frozenCursor) GetValue(path ...int) (string, error) {
	e, err := element.Walk(f, path...)
	if err != nil {
		return "", err
	}
	return e.Value(), nil
}
func (f *frozenCursor) GetValues(path ...int) ([]string, error) {
	e, err := element.Walk(f, path...)
	if err != nil {
		return nil, err
	}
	return e.Values(), nil
}
