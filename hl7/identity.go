package hl7

import (
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
)

// ID returns m's stable opaque key, generated once on first observation
// (construction via Parse or Build) and unchanged for the rest of m's
// lifetime regardless of later mutation.
func (m *Message) ID() uuid.UUID {
	return m.id
}

// Equal reports whether m and other carry the same content: string
// equality of their line-ending-sanitized values, not identity of their
// underlying representation or ID.
func (m *Message) Equal(other *Message) bool {
	if other == nil {
		return false
	}
	return sanitizeForIdentity(m.String()) == sanitizeForIdentity(other.String())
}

// Hash returns the FNV-1a hash of m's line-ending-sanitized value, so two
// Messages Equal reports equal also hash equal. hash/fnv is used directly
// since none of the pack's dependencies offer a string-hashing primitive;
// every hashing library the pack carries (go.uber.org/multierr's internal
// use aside) targets content-addressing of binary trees, not strings.
func (m *Message) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(sanitizeForIdentity(m.String())))
	return h.Sum64()
}

func sanitizeForIdentity(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\r")
	s = strings.ReplaceAll(s, "\n", "\r")
	return s
}
