package builder

import (
	"strings"

	"github.com/hl7kit/gohl7/element"
	"github.com/hl7kit/gohl7/encoding"
)

// Message is the builder representation's Message: an eager node graph
// rooted at Root(), seeded with a minimal valid MSH segment on
// NewMessage so it is always in a structurally valid state.
type Message struct {
	root   *Node
	delims *encoding.Delimiters
}

// NewMessage returns a Message seeded with "MSH|^~\&|", the minimal
// valid HL7 header, per spec.md §4.3.
func NewMessage() *Message {
	m := &Message{delims: encoding.DefaultDelimiters()}
	m.root = newNode(m, nil, element.LevelMessage, 0)
	if err := m.SetValue(element.NewValue("MSH|^~\\&|")); err != nil {
		panic("builder: seeding the default message failed: " + err.Error())
	}
	return m
}

// Build parses s into a fresh Message, the eager equivalent of
// parser.Parse. It validates the MSH prefix and derives delimiters from
// bytes 3..7 of s; s shorter than 8 characters is rejected with
// ErrMessageDataIsTooShort rather than given default delimiters.
func Build(s string) (*Message, error) {
	m := &Message{delims: encoding.DefaultDelimiters()}
	m.root = newNode(m, nil, element.LevelMessage, 0)
	if err := m.SetValue(element.NewValue(s)); err != nil {
		return nil, err
	}
	return m, nil
}

// Root returns the Message-level Element, the entry point into the tree.
func (m *Message) Root() element.Element {
	return m.root
}

// Delimiters returns the message's current delimiter set.
func (m *Message) Delimiters() *encoding.Delimiters {
	return m.delims
}

// SetValue parses s as a whole message: it validates the MSH prefix and
// minimum length, derives delimiters from s's own header bytes, and
// rebuilds every segment from scratch.
func (m *Message) SetValue(s element.NullString) error {
	text := normalizeLineEndings(s.String())
	if text == "" {
		return &element.Error{Kind: element.ErrMessageDataMustNotBeNull}
	}
	if len(text) < 8 {
		return &element.Error{Kind: element.ErrMessageDataIsTooShort}
	}
	if !strings.HasPrefix(text, "MSH") {
		return &element.Error{Kind: element.ErrMessageDataMustStartWithMsh}
	}

	delims, err := encoding.ParseDelimiters([]byte(text[:8]))
	if err != nil {
		return err
	}
	m.delims = delims

	segments := strings.Split(text, string(encoding.SegmentTerminator))
	m.root.children = make(map[int]*Node)
	idx := 1
	for _, segText := range segments {
		if segText == "" {
			continue
		}
		seg := newNode(m, m.root, element.LevelSegment, idx)
		if err := seg.setSegmentText(segText); err != nil {
			return err
		}
		m.root.children[idx] = seg
		idx++
	}
	return nil
}

// setSegmentText populates seg (a Segment-level Node) from raw segment
// text, special-casing MSH-1/MSH-2 the way spec.md §4.3 requires.
func (seg *Node) setSegmentText(text string) error {
	seg.children = make(map[int]*Node)
	if len(text) < 3 {
		return &element.Error{Kind: element.ErrMessageDataIsTooShort, Detail: "segment shorter than its type code"}
	}
	name := text[:3]
	typeNode := newNode(seg.msg, seg, element.LevelField, 0)
	typeNode.leaf = name
	typeNode.children = nil
	seg.children[0] = typeNode

	if name == "MSH" {
		d := seg.msg.delims
		rest := text[len(name):]
		if len(rest) < 1 {
			return nil
		}
		f1 := newNode(seg.msg, seg, element.LevelField, 1)
		if err := f1.SetValue(element.NewValue(string(d.Field))); err != nil {
			return err
		}
		seg.children[1] = f1

		if len(rest) < 5 {
			return nil
		}
		f2 := newNode(seg.msg, seg, element.LevelField, 2)
		if err := f2.SetValue(element.NewValue(rest[1:5])); err != nil {
			return err
		}
		seg.children[2] = f2

		if len(rest) <= 5 {
			return nil
		}
		tail := rest[6:]
		return seg.setOrdinaryFields(tail, 3)
	}

	if len(text) <= 3 {
		return nil
	}
	tail := text[4:]
	return seg.setOrdinaryFields(tail, 1)
}

// setOrdinaryFields splits tail on the message's field delimiter and
// assigns each piece starting at startIndex.
func (seg *Node) setOrdinaryFields(tail string, startIndex int) error {
	if tail == "" {
		return nil
	}
	fields := strings.Split(tail, string(seg.msg.delims.Field))
	for i, v := range fields {
		if v == "" {
			continue
		}
		f := newNode(seg.msg, seg, element.LevelField, startIndex+i)
		if err := f.SetValue(element.NewValue(v)); err != nil {
			return err
		}
		seg.children[startIndex+i] = f
	}
	return nil
}

// Value returns the message's full serialized text, segments joined by
// the segment terminator, MSH rendered with its special-cased fields 1
// and 2.
func (m *Message) Value() string {
	segIndices := sortedIndices(m.root.children)
	parts := make([]string, 0, len(segIndices))
	for _, i := range segIndices {
		seg := m.root.children[i]
		parts = append(parts, seg.segmentText())
	}
	return strings.Join(parts, string(encoding.SegmentTerminator))
}

// segmentText renders a Segment-level Node back to wire text, applying
// the MSH-1/MSH-2 special case.
func (seg *Node) segmentText() string {
	typeCode := ""
	if t, ok := seg.children[0]; ok {
		typeCode = t.leaf
	}

	if typeCode == "MSH" {
		d := seg.msg.delims
		var sb strings.Builder
		sb.WriteString("MSH")
		sb.WriteRune(d.Field)
		sb.WriteString(d.MSH2())
		// Field 3 begins immediately after the encoding characters
		// whether or not it is populated, so the delimiter always
		// follows MSH-2.
		sb.WriteRune(d.Field)
		maxIdx := 2
		for _, i := range sortedIndices(seg.children) {
			if i > maxIdx {
				maxIdx = i
			}
		}
		for i := 3; i <= maxIdx; i++ {
			if i > 3 {
				sb.WriteRune(d.Field)
			}
			if f, ok := seg.children[i]; ok {
				sb.WriteString(f.Value())
			}
		}
		return sb.String()
	}

	fieldIndices := sortedIndices(seg.children)
	var sb strings.Builder
	sb.WriteString(typeCode)
	maxIdx := 0
	for _, i := range fieldIndices {
		if i > maxIdx {
			maxIdx = i
		}
	}
	for i := 1; i <= maxIdx; i++ {
		sb.WriteRune(seg.msg.delims.Field)
		if f, ok := seg.children[i]; ok {
			sb.WriteString(f.Value())
		}
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (m *Message) String() string {
	return m.Value()
}

// Clone returns a detached deep copy of m: a new node graph with its own
// copy of the current delimiters, sharing no state with m.
func (m *Message) Clone() *Message {
	delimsCopy := *m.delims
	clone := &Message{delims: &delimsCopy}
	clone.root = m.root.cloneInto(clone, nil)
	return clone
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\r")
	s = strings.ReplaceAll(s, "\n", "\r")
	return s
}
