// Package element defines the shared contract both the parser (lazy,
// string-backed) and builder (eager, node-backed) representations
// implement, plus the generic structural operations (insert, delete,
// move, add-range) written once against that contract.
package element

// Level identifies a position in the Message -> Segment -> Field ->
// Repetition -> Component -> SubComponent tree.
type Level int

const (
	LevelMessage Level = iota
	LevelSegment
	LevelField
	LevelRepetition
	LevelComponent
	LevelSubComponent
)

// String returns the level's name, for error messages and logging.
func (l Level) String() string {
	switch l {
	case LevelMessage:
		return "message"
	case LevelSegment:
		return "segment"
	case LevelField:
		return "field"
	case LevelRepetition:
		return "repetition"
	case LevelComponent:
		return "component"
	case LevelSubComponent:
		return "subcomponent"
	default:
		return "unknown"
	}
}

// Child returns the level one step down the tree from l. Child panics if
// called on LevelSubComponent, which has no children; callers should check
// l != LevelSubComponent first, as Element.Child implementations do.
func (l Level) Child() Level {
	if l == LevelSubComponent {
		panic("element: subcomponent level has no child level")
	}
	return l + 1
}

// DelimiterIndex returns the position (0-based) of the delimiter that
// separates this level's children: 0 is Field, 1 Repetition, 2 Component,
// 3 SubComponent. LevelMessage and LevelSubComponent have no children of
// their own to separate and return -1.
func (l Level) DelimiterIndex() int {
	switch l {
	case LevelSegment:
		return 0 // fields within a segment split on Field
	case LevelField:
		return 1 // repetitions within a field split on Repetition
	case LevelRepetition:
		return 2 // components within a repetition split on Component
	case LevelComponent:
		return 3 // subcomponents within a component split on SubComponent
	default:
		return -1
	}
}
