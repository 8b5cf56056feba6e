package main

import (
	"github.com/hl7kit/gohl7/element"
)

// descend walks path (child indices) from e down, the same rule
// element.Walk implements, exposed here since the CLI needs the
// intermediate Element to call SetValue on, not just its text.
func descend(e element.Element, path []int) (element.Element, error) {
	return element.Walk(e, path...)
}

// stringValue wraps a plain string as the NewValue case of NullString,
// for the set subcommand's --value flag.
func stringValue(s string) element.NullString {
	return element.NewValue(s)
}
