package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hl7kit/gohl7/element"
)

func TestNewValueIsPresentNotNull(t *testing.T) {
	v := element.NewValue("")
	assert.False(t, v.IsNull())
	assert.False(t, v.IsZero())
	assert.Equal(t, "", v.String())
}

func TestNullIsNull(t *testing.T) {
	v := element.Null()
	assert.True(t, v.IsNull())
	assert.Equal(t, "", v.String())
}

func TestZeroValueIsNeitherSetNorNull(t *testing.T) {
	var v element.NullString
	assert.True(t, v.IsZero())
	assert.False(t, v.IsNull())
}
