package element

import "sort"

// isFixedIndex reports whether e is a structural slot that cannot be
// moved or deleted: the Message root, the MSH segment (segment 1), a
// segment's type code (field index 0), and MSH-1/MSH-2.
func isFixedIndex(e Element) bool {
	switch e.Level() {
	case LevelMessage:
		return true
	case LevelSegment:
		return e.Index() == 1 // MSH
	case LevelField:
		if e.Index() == 0 {
			return true // segment type code
		}
		parent := e.Parent()
		return parent != nil && parent.Level() == LevelSegment && parent.Index() == 1 &&
			(e.Index() == 1 || e.Index() == 2) // MSH-1, MSH-2
	default:
		return false
	}
}

// Insert places e as the child of parent at index, shifting any existing
// child at or after index one position later. Insert refuses to place an
// element at or below the fixed indices isFixedIndex protects.
func Insert(parent Element, index int, e Element) error {
	if index < minIndexFor(parent) {
		return newError(ErrElementMoveIndexBelowMinimum, locationOf(parent), "")
	}
	if isProtectedTarget(parent, index) {
		return newError(ErrFixedFieldMustNotBeMoved, locationOf(parent), "")
	}
	return shiftAndSet(parent, index, e)
}

// InsertValue is a convenience wrapper over Insert that builds a leaf-ish
// element from a plain string at parent's child level. Representations
// supply the construction by passing a pre-built Element to Insert;
// InsertValue exists so callers working purely in strings don't need to
// reach into a representation package to build one.
func InsertValue(parent Element, index int, s string, build func(string) (Element, error)) error {
	e, err := build(s)
	if err != nil {
		return err
	}
	return Insert(parent, index, e)
}

// Delete removes parent's child at index. Deleting the Message root, MSH,
// or a segment's type-code slot is ErrElementDeleteForbidden.
func Delete(parent Element, index int) error {
	if isProtectedTarget(parent, index) {
		return newError(ErrElementDeleteForbidden, locationOf(parent), "")
	}
	child, err := parent.Child(index)
	if err != nil {
		return err
	}
	return deleteChild(parent, child)
}

// DeleteAll removes every element in elements from its respective parent.
// Elements are deleted from the highest Index down, so removing one never
// shifts a sibling that is still to be removed; a failure partway through
// leaves the earlier deletions applied (spec.md names no atomicity
// requirement across a DeleteAll batch).
func DeleteAll(elements []Element) error {
	ordered := append([]Element(nil), elements...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Index() > ordered[j].Index() })
	for _, e := range ordered {
		parent := e.Parent()
		if parent == nil {
			return newError(ErrElementDeleteForbidden, "", "cannot delete the message root")
		}
		if isFixedIndex(e) {
			return newError(ErrElementDeleteForbidden, locationOf(parent), "")
		}
		if err := deleteChild(parent, e); err != nil {
			return err
		}
	}
	return nil
}

// Move relocates e to targetIndex among its current siblings. Moving the
// Message root, MSH, a fixed field (MSH-1/MSH-2), or a segment's
// type-code slot is ErrElementMoveForbidden; moving to an index below the
// level's minimum is ErrElementMoveIndexBelowMinimum.
func Move(parent Element, e Element, targetIndex int) error {
	if isFixedIndex(e) {
		return newError(ErrElementMoveForbidden, locationOf(parent), "")
	}
	if targetIndex < minIndexFor(parent) {
		return newError(ErrElementMoveIndexBelowMinimum, locationOf(parent), "")
	}
	return moveChild(parent, e, targetIndex)
}

// AddRange appends items to parent, in order, starting immediately after
// parent's current highest-indexed ordinary child (index 0, a segment's
// type code, is never part of this range).
func AddRange(parent Element, items []Element) error {
	next := parent.ValueCount() + 1
	for _, item := range items {
		if err := shiftAndSet(parent, next, item); err != nil {
			return err
		}
		next++
	}
	return nil
}

// minIndexFor returns the smallest index Insert/Move may target: 1 at
// every level. Index 0 (a segment's type code) is reachable only through
// isProtectedTarget/isFixedIndex, never as an ordinary insert/move
// target, since Values()/SetValues() never represent it.
func minIndexFor(parent Element) int {
	return 1
}

// isProtectedTarget reports whether index, within parent, names a slot
// isFixedIndex would refuse to move or delete.
func isProtectedTarget(parent Element, index int) bool {
	if parent == nil {
		return true
	}
	if parent.Level() == LevelMessage && index == 1 {
		return true // MSH
	}
	if parent.Level() == LevelSegment && index == 0 {
		return true
	}
	if parent.Level() == LevelSegment && parent.Index() == 1 && (index == 1 || index == 2) {
		return true
	}
	return false
}

// locationOf renders a best-effort location string for error messages.
func locationOf(e Element) string {
	if e == nil {
		return ""
	}
	return e.Level().String()
}
