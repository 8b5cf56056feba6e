package builder

import "github.com/hl7kit/gohl7/element"

// Fluent setters, adapted from the teacher's MessageBuilder/SegmentBuilder
// interfaces (hl7/interfaces.go) into methods on the concrete, eager
// Message/Node pair this package already has: each locates or materializes
// the addressed node and returns m, so calls chain the way spec.md §6
// requires ("fluent setters at every depth that return this").

// SetSegment ensures the segment at index exists with type code name,
// discarding any fields it previously held, and returns m.
func (m *Message) SetSegment(index int, name string) *Message {
	return m.SetFields(index, name)
}

// SetFields sets the segment at index's type code to fields[0] and its
// ordinary field values to fields[1:] in one call (the MSH-1/MSH-2
// special case is handled the same way Node.SetValue handles it for any
// other write to those positions), returning m for chaining. Per scenario
// 2, SetFields(1, "MSH", "|", "^~\&") on an otherwise empty message
// renders as "MSH|^~\&|".
func (m *Message) SetFields(index int, fields ...string) *Message {
	if len(fields) == 0 {
		return m
	}
	seg, ok := m.root.children[index]
	if !ok {
		seg = newNode(m, m.root, element.LevelSegment, index)
		m.root.children[index] = seg
	}
	if seg.children == nil {
		seg.children = make(map[int]*Node)
	}
	typeNode := newNode(m, seg, element.LevelField, 0)
	typeNode.leaf = fields[0]
	typeNode.children = nil
	seg.children[0] = typeNode

	_ = seg.SetValues(fields[1:])
	return m
}

// SetField sets field fieldIndex of segment segIndex to value, creating
// both as needed, and returns m.
func (m *Message) SetField(segIndex, fieldIndex int, value string) *Message {
	seg := m.ensureSegment(segIndex)
	field, _ := seg.Child(fieldIndex)
	_ = field.SetValue(element.NewValue(value))
	return m
}

// AddRepetition appends value as a new repetition on field fieldIndex of
// segment segIndex, and returns m.
func (m *Message) AddRepetition(segIndex, fieldIndex int, value string) *Message {
	seg := m.ensureSegment(segIndex)
	field, _ := seg.Child(fieldIndex)
	fn := field.(*Node)
	rep, _ := fn.Child(fn.ValueCount() + 1)
	_ = rep.SetValue(element.NewValue(value))
	return m
}

// SetComponent sets the componentIndex-th component of field fieldIndex
// in segment segIndex, and returns m. Repetition 1 is addressed
// implicitly, matching how a field with no repeats is read elsewhere in
// this package.
func (m *Message) SetComponent(segIndex, fieldIndex, componentIndex int, value string) *Message {
	seg := m.ensureSegment(segIndex)
	field, _ := seg.Child(fieldIndex)
	rep, _ := field.Child(1)
	component, _ := rep.Child(componentIndex)
	_ = component.SetValue(element.NewValue(value))
	return m
}

// SetSubComponent sets the subComponentIndex-th subcomponent of the
// componentIndex-th component of field fieldIndex in segment segIndex,
// and returns m.
func (m *Message) SetSubComponent(segIndex, fieldIndex, componentIndex, subComponentIndex int, value string) *Message {
	seg := m.ensureSegment(segIndex)
	field, _ := seg.Child(fieldIndex)
	rep, _ := field.Child(1)
	component, _ := rep.Child(componentIndex)
	sub, _ := component.Child(subComponentIndex)
	_ = sub.SetValue(element.NewValue(value))
	return m
}

// ensureSegment returns the segment at index, materializing it (without a
// type code) if it does not already exist.
func (m *Message) ensureSegment(index int) *Node {
	seg, ok := m.root.children[index]
	if !ok {
		seg = newNode(m, m.root, element.LevelSegment, index)
		m.root.children[index] = seg
	}
	return seg
}
