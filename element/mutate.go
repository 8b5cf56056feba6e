package element

// shiftAndSet, deleteChild and moveChild implement Insert/Delete/Move
// purely in terms of Values()/SetValues(), which every representation
// already provides. An element's Value() is defined recursively (its own
// children joined by its own delimiter), so inserting e's serialized
// Value() into parent's value list and replaying SetValues is sufficient
// even when e is itself an interior subtree.
//
// Values()/SetValues() are always 1-based regardless of level: position
// 0 in the slice is always child index 1. A segment's type-code slot
// (index 0) is never part of this slice at all, so every position
// computation below subtracts a plain 1, not minIndexFor(parent).

func shiftAndSet(parent Element, index int, e Element) error {
	values := paddedValues(parent, index)
	pos := index - 1
	values = insertAt(values, pos, e.Value())
	return parent.SetValues(values)
}

func deleteChild(parent Element, child Element) error {
	values := parent.Values()
	pos := child.Index() - 1
	if pos < 0 || pos >= len(values) {
		return nil
	}
	values = append(values[:pos], values[pos+1:]...)
	return parent.SetValues(values)
}

func moveChild(parent Element, e Element, targetIndex int) error {
	values := parent.Values()
	src := e.Index() - 1
	if src < 0 || src >= len(values) {
		return newError(ErrElementMoveForbidden, locationOf(parent), "source element not found among parent's children")
	}
	v := values[src]
	values = append(values[:src], values[src+1:]...)

	dst := targetIndex - 1
	values = insertAt(values, dst, v)
	return parent.SetValues(values)
}

// paddedValues returns parent's current values, padded with empty
// strings so that index i is reachable even when it falls past the
// current end.
func paddedValues(parent Element, index int) []string {
	values := parent.Values()
	pos := index - 1
	for len(values) < pos {
		values = append(values, "")
	}
	return values
}

// insertAt inserts v into values at pos, padding with empty strings if
// pos is past the current end.
func insertAt(values []string, pos int, v string) []string {
	for len(values) < pos {
		values = append(values, "")
	}
	if pos >= len(values) {
		return append(values, v)
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values[:pos]...)
	out = append(out, v)
	out = append(out, values[pos:]...)
	return out
}
