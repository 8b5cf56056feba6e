package element

// NullString models the three states a value written to an Element can
// take: present text, present-but-empty, or an explicit null/delete
// marker. A bare Go string cannot distinguish "set to empty" from
// "remove this position" on its own, which spec.md §3's absent-vs-empty
// rule requires.
type NullString struct {
	value string
	null  bool
	set   bool
}

// NewValue returns a NullString carrying text s. An empty s is a present,
// empty value, not null.
func NewValue(s string) NullString {
	return NullString{value: s, set: true}
}

// Null returns the null/delete-marker NullString: SetValue(Null()) removes
// the target position rather than writing an empty string to it.
func Null() NullString {
	return NullString{null: true}
}

// IsNull reports whether n is the delete marker.
func (n NullString) IsNull() bool {
	return n.null
}

// String returns n's text, or "" if n is null.
func (n NullString) String() string {
	return n.value
}

// IsZero reports whether n is the unset zero value (neither a value nor
// explicitly null was ever assigned to it).
func (n NullString) IsZero() bool {
	return !n.set && !n.null
}
