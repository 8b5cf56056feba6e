package element

// Walk descends from e through path, one Child call per path entry, and
// returns the element path addresses. Both representations' GetValue and
// GetValues implementations delegate to Walk so the traversal rule lives
// in exactly one place.
func Walk(e Element, path ...int) (Element, error) {
	cur := e
	for _, i := range path {
		child, err := cur.Child(i)
		if err != nil {
			return nil, err
		}
		cur = child
	}
	return cur, nil
}
