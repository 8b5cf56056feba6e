package parser

import (
	"fmt"
	"strings"

	"github.com/hl7kit/gohl7/encoding"
)

// Default resource limits, as DoS protection against hostile or
// corrupted input.
const (
	defaultMaxSegments    = 1000
	defaultMaxFieldLength = 65536
)

// Limits bound how large a message ParseWithLimits will accept.
type Limits struct {
	MaxSegments    int
	MaxFieldLength int
}

// DefaultLimits returns the standard resource limits.
func DefaultLimits() Limits {
	return Limits{MaxSegments: defaultMaxSegments, MaxFieldLength: defaultMaxFieldLength}
}

// ParseWithLimits is Parse with the added DoS-protection checks: the
// segment count is checked before parsing, and each field's length is
// checked on the parsed Message, which is returned only if neither
// exceeds limits.
func ParseWithLimits(s string, limits Limits) (*Message, error) {
	segCount := strings.Count(s, string(encoding.SegmentTerminator)) + 1
	if segCount > limits.MaxSegments {
		return nil, fmt.Errorf("parser: message has %d segments, exceeds limit of %d", segCount, limits.MaxSegments)
	}

	m, err := Parse(s)
	if err != nil {
		return nil, err
	}

	if err := m.checkFieldLengths(limits.MaxFieldLength); err != nil {
		return nil, err
	}
	return m, nil
}

// checkFieldLengths walks every segment's fields and rejects the message
// if any single field's text exceeds maxLen.
func (m *Message) checkFieldLengths(maxLen int) error {
	segCount := m.root.ValueCount()
	for i := 1; i <= segCount; i++ {
		seg, err := m.root.Child(i)
		if err != nil {
			continue
		}
		fieldCount := seg.ValueCount()
		for f := 0; f <= fieldCount; f++ {
			field, err := seg.Child(f)
			if err != nil {
				continue
			}
			if len(field.Value()) > maxLen {
				return fmt.Errorf("parser: field at segment %d field %d exceeds max length of %d", i, f, maxLen)
			}
		}
	}
	return nil
}
