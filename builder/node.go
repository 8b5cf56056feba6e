// Package builder implements the eager, node-graph-backed element tree:
// a Message holds a root Node whose children are materialized up front
// in a sparse map, rather than sliced lazily from a text buffer the way
// the parser package does.
package builder

import (
	"sort"
	"strings"

	"github.com/hl7kit/gohl7/element"
)

// Node is the builder representation's element.Element implementation.
// An interior node holds its children in a sparse map keyed by index; a
// SubComponent node holds its text directly, since it has no children.
type Node struct {
	msg      *Message
	parent   *Node
	level    element.Level
	index    int
	children map[int]*Node
	leaf     string
}

func newNode(msg *Message, parent *Node, level element.Level, index int) *Node {
	n := &Node{msg: msg, parent: parent, level: level, index: index}
	if level != element.LevelSubComponent {
		n.children = make(map[int]*Node)
	}
	return n
}

// Level implements element.Element.
func (n *Node) Level() element.Level { return n.level }

// Index implements element.Element.
func (n *Node) Index() int { return n.index }

// Parent implements element.Element.
func (n *Node) Parent() element.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Delimiter implements element.Element.
func (n *Node) Delimiter() rune {
	idx := n.level.DelimiterIndex()
	if idx < 0 {
		return 0
	}
	d := n.msg.delims
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

// Child implements element.Element, creating the i-th child on first
// access rather than failing: the builder representation is eager but
// sparse, so addressing a not-yet-set position simply materializes it
// empty (spec.md §3's absent-vs-empty: a freshly addressed position is
// absent until something is written to it, but Child still hands back a
// usable, empty Element for it).
func (n *Node) Child(i int) (element.Element, error) {
	if n.level == element.LevelSubComponent {
		return nil, &element.Error{Kind: element.ErrSegmentIndexMustBeGreaterThanZero, Detail: "subcomponent has no children"}
	}
	if n.level == element.LevelSegment && i < 0 {
		return nil, &element.Error{Kind: element.ErrSegmentIndexMustBeGreaterThanZero}
	}
	if n.level != element.LevelSegment && i < 1 {
		return nil, &element.Error{Kind: element.ErrSegmentIndexMustBeGreaterThanZero}
	}
	if n.children == nil {
		n.children = make(map[int]*Node)
	}
	child, ok := n.children[i]
	if !ok {
		child = newNode(n.msg, n, n.level.Child(), i)
		n.children[i] = child
	}
	return child, nil
}

// ValueCount implements element.Element as max(present key), which the
// Open Question in spec.md §9 resolves to 0 for an empty map.
func (n *Node) ValueCount() int {
	max := 0
	for k := range n.children {
		if k > max {
			max = k
		}
	}
	return max
}

// Value implements element.Element: for SubComponent, the leaf text
// itself; for every other level, its present children re-joined with
// its delimiter, substituting "" for any gap up to the highest index.
func (n *Node) Value() string {
	if n.level == element.LevelSubComponent || n.children == nil {
		return n.leaf
	}
	return strings.Join(n.Values(), string(n.Delimiter()))
}

// Values implements element.Element.
func (n *Node) Values() []string {
	count := n.ValueCount()
	out := make([]string, count)
	for i := 1; i <= count; i++ {
		if child, ok := n.children[i]; ok {
			out[i-1] = child.Value()
		}
	}
	return out
}

// SetValue implements element.Element. For SubComponent it sets the leaf
// text directly; for every other level it splits s on the level's
// delimiter and repopulates the child map, discarding whatever was
// there before. NullString.IsNull() removes this node from its parent
// instead.
func (n *Node) SetValue(s element.NullString) error {
	if s.IsNull() {
		if n.parent != nil {
			delete(n.parent.children, n.index)
		}
		return nil
	}

	if n.isMSHField(1) {
		return n.setFieldSeparator(s.String())
	}
	if n.isMSHField(2) {
		return n.setEncodingCharacters(s.String())
	}

	if n.level == element.LevelSubComponent {
		n.leaf = s.String()
		return nil
	}

	return n.SetValues(splitOn(s.String(), n.Delimiter()))
}

// isMSHField reports whether n is field index field of the message's MSH
// segment, the structural slot spec.md §4.3 special-cases.
func (n *Node) isMSHField(field int) bool {
	if n.level != element.LevelField || n.index != field {
		return false
	}
	seg := n.parent
	return seg != nil && seg.level == element.LevelSegment && seg.index == 1
}

// setFieldSeparator handles MSH-1: the field delimiter character itself.
// Builder messages re-render every segment's text from m.delims at read
// time, so updating m.delims is sufficient to move every field delimiter
// in the message in lockstep; there is no raw buffer to rewrite.
func (n *Node) setFieldSeparator(text string) error {
	if len(text) != 1 {
		return &element.Error{Kind: element.ErrFixedFieldMustNotBeMoved, Detail: "MSH-1 must be exactly one character"}
	}
	n.msg.delims.Field = rune(text[0])
	n.leaf = text
	n.children = nil
	return nil
}

// setEncodingCharacters handles MSH-2: the four encoding characters
// (component, repetition, escape, subcomponent), in that order.
func (n *Node) setEncodingCharacters(text string) error {
	if len(text) != 4 {
		return &element.Error{Kind: element.ErrFixedFieldMustNotBeMoved, Detail: "MSH-2 must be exactly four characters"}
	}
	chars := []rune(text)
	n.msg.delims.Component = chars[0]
	n.msg.delims.Repetition = chars[1]
	n.msg.delims.Escape = chars[2]
	n.msg.delims.SubComponent = chars[3]
	n.leaf = text
	n.children = nil
	return nil
}

// SetValues implements element.Element by discarding n's current
// children and repopulating them from values, in order starting at
// index 1. For a Segment, Values/SetValues never address index 0 (the
// type code), so the existing child[0] is saved before the map is
// rebuilt and restored into the new map afterward.
func (n *Node) SetValues(values []string) error {
	var typeCode *Node
	if n.level == element.LevelSegment {
		typeCode = n.children[0]
	}
	n.children = make(map[int]*Node)
	if typeCode != nil {
		n.children[0] = typeCode
	}
	childLevel := n.level.Child()
	for i, v := range values {
		if v == "" && childLevel != element.LevelSubComponent {
			continue
		}
		child := newNode(n.msg, n, childLevel, i+1)
		if childLevel == element.LevelSubComponent {
			child.leaf = v
		} else if v != "" {
			if err := child.SetValue(element.NewValue(v)); err != nil {
				return err
			}
		}
		n.children[i+1] = child
	}
	return nil
}

func splitOn(s string, delim rune) []string {
	if delim == 0 {
		return []string{s}
	}
	return strings.Split(s, string(delim))
}

// Clone implements element.Element, returning a detached deep copy not
// attached to any Message. The clone gets its own shadow Message
// carrying a copy of the current delimiters, so Value/Delimiter keep
// working on interior nodes without reaching into the original tree.
func (n *Node) Clone() element.Element {
	delimsCopy := *n.msg.delims
	shadow := &Message{delims: &delimsCopy}
	clone := n.cloneInto(shadow, nil)
	shadow.root = clone
	return clone
}

// cloneInto deep-copies n and everything beneath it, attaching every
// clone to dst so Delimiter/Value keep working on interior nodes.
func (n *Node) cloneInto(dst *Message, parent *Node) *Node {
	clone := &Node{msg: dst, parent: parent, level: n.level, index: n.index, leaf: n.leaf}
	if n.children != nil {
		clone.children = make(map[int]*Node, len(n.children))
		for k, v := range n.children {
			clone.children[k] = v.cloneInto(dst, clone)
		}
	}
	return clone
}

// GetValue implements element.Element.
func (n *Node) GetValue(path ...int) (string, error) {
	e, err := element.Walk(n, path...)
	if err != nil {
		return "", err
	}
	return e.Value(), nil
}

// GetValues implements element.Element.
func (n *Node) GetValues(path ...int) ([]string, error) {
	e, err := element.Walk(n, path...)
	if err != nil {
		return nil, err
	}
	return e.Values(), nil
}

// sortedIndices returns n's present child indices in ascending order,
// for deterministic iteration (e.g. when serializing a segment's fields
// including the MSH-1/MSH-2 special case in Message.String).
func sortedIndices(children map[int]*Node) []int {
	out := make([]int, 0, len(children))
	for k := range children {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
