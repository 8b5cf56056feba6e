// Package detail implements the generic message-detail accessors
// spec.md names as an out-of-core convenience layer that sits on top of
// the element tree: Type, TriggerEvent, ControlID, ProcessingID and
// Version, read from MSH regardless of whether the Message underneath
// is parser- or builder-backed.
package detail

import (
	"fmt"
	"strings"

	"github.com/hl7kit/gohl7/element"
)

// msh locates the MSH segment of root (a Message-level Element) and
// returns it, or an error if root has no first segment or that segment
// is not MSH.
func msh(root element.Element) (element.Element, error) {
	seg, err := root.Child(1)
	if err != nil {
		return nil, fmt.Errorf("detail: %w", err)
	}
	typeCode, err := seg.Child(0)
	if err != nil {
		return nil, fmt.Errorf("detail: %w", err)
	}
	if strings.ToUpper(typeCode.Value()) != "MSH" {
		return nil, fmt.Errorf("detail: first segment is %q, not MSH", typeCode.Value())
	}
	return seg, nil
}

// field returns the value at the given 1-based field index of root's MSH
// segment, or "" if that field is absent.
func field(root element.Element, index int) (string, error) {
	seg, err := msh(root)
	if err != nil {
		return "", err
	}
	f, err := seg.Child(index)
	if err != nil {
		return "", nil
	}
	return f.Value(), nil
}

// Type returns MSH-9's first component: the message type code (e.g.
// "ADT", "ORU").
func Type(root element.Element) (string, error) {
	return componentOf(root, 9, 1)
}

// TriggerEvent returns MSH-9's second component: the trigger event code
// (e.g. "A01", "R01").
func TriggerEvent(root element.Element) (string, error) {
	return componentOf(root, 9, 2)
}

// ControlID returns MSH-10: the message control ID.
func ControlID(root element.Element) (string, error) {
	return field(root, 10)
}

// ProcessingID returns MSH-11's first component: P, T or D.
func ProcessingID(root element.Element) (string, error) {
	return componentOf(root, 11, 1)
}

// Version returns MSH-12: the HL7 version this message declares.
func Version(root element.Element) (string, error) {
	return field(root, 12)
}

// componentOf returns the value at MSH's fieldIndex, first repetition,
// componentIndex.
func componentOf(root element.Element, fieldIndex, componentIndex int) (string, error) {
	seg, err := msh(root)
	if err != nil {
		return "", err
	}
	v, err := seg.GetValue(fieldIndex, 1, componentIndex)
	if err != nil {
		return "", nil
	}
	return v, nil
}
