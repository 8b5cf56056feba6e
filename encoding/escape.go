package encoding

import "github.com/hl7kit/gohl7/internal/escape"

// transform adapts a Delimiters value to the internal escape package's
// narrower Delimiters view, so the escape/unescape algorithm lives in one
// place while the Escape/Unescape contract spec.md §4.1 asks for lives on
// Delimiters itself.
func (d *Delimiters) transform() *escape.Transform {
	return escape.New(escape.Delimiters{
		Field:        d.Field,
		Component:    d.Component,
		Repetition:   d.Repetition,
		Escape:       d.Escape,
		SubComponent: d.SubComponent,
	})
}

// Escape replaces the five reserved characters (and the escape character
// itself) in text with their \X\ escape codes. Escape is not idempotent;
// call it exactly once, immediately before emission.
func (d *Delimiters) Escape(text string) string {
	return d.transform().Escape(text)
}

// Unescape decodes HL7 escape sequences in text. Unterminated or unknown
// sequences are emitted literally rather than raising an error.
func (d *Delimiters) Unescape(text string) string {
	return d.transform().Unescape(text)
}
