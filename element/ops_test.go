package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hl7kit/gohl7/builder"
	"github.com/hl7kit/gohl7/element"
)

func TestInsertShiftsLaterFields(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)

	f9, err := seg.Child(9)
	require.NoError(t, err)
	require.NoError(t, f9.SetValue(element.NewValue("ADT^A01")))

	detached := builder.NewMessage()
	detachedRoot, err := detached.Root().Child(1)
	require.NoError(t, err)
	newField, err := detachedRoot.Child(20)
	require.NoError(t, err)
	require.NoError(t, newField.SetValue(element.NewValue("NEW")))

	require.NoError(t, element.Insert(seg, 5, newField))

	inserted, err := seg.Child(5)
	require.NoError(t, err)
	assert.Equal(t, "NEW", inserted.Value())

	shifted, err := seg.Child(10)
	require.NoError(t, err)
	assert.Equal(t, "ADT^A01", shifted.Value())
}

func TestDeleteRemovesField(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f, err := seg.Child(5)
	require.NoError(t, err)
	require.NoError(t, f.SetValue(element.NewValue("X")))

	require.NoError(t, element.Delete(seg, 5))

	after, err := seg.Child(5)
	require.NoError(t, err)
	assert.Equal(t, "", after.Value())
}

func TestDeleteMSHTypeCodeIsForbidden(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)

	err = element.Delete(seg, 0)
	assert.ErrorIs(t, err, element.ErrElementDeleteForbidden)
}

func TestMoveMSH1IsForbidden(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f1, err := seg.Child(1)
	require.NoError(t, err)

	err = element.Move(seg, f1, 5)
	assert.ErrorIs(t, err, element.ErrElementMoveForbidden)
}

func TestInsertPreservesSegmentTypeCode(t *testing.T) {
	m, err := builder.Build("MSH|^~\\&|\rPID|1||A^B&C~D")
	require.NoError(t, err)
	pid, err := m.Root().Child(2)
	require.NoError(t, err)

	detached := builder.NewMessage()
	detachedSeg, err := detached.Root().Child(1)
	require.NoError(t, err)
	newField, err := detachedSeg.Child(9)
	require.NoError(t, err)
	require.NoError(t, newField.SetValue(element.NewValue("X")))

	require.NoError(t, element.Insert(pid, 2, newField))

	typeCode, err := pid.Child(0)
	require.NoError(t, err)
	assert.Equal(t, "PID", typeCode.Value())
	assert.Contains(t, m.Value(), "PID|")
}

func TestDeleteOnMSHPreservesTypeCodeAndSpecialFields(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f5, err := seg.Child(5)
	require.NoError(t, err)
	require.NoError(t, f5.SetValue(element.NewValue("SENDER")))

	require.NoError(t, element.Delete(seg, 5))

	typeCode, err := seg.Child(0)
	require.NoError(t, err)
	assert.Equal(t, "MSH", typeCode.Value())
	assert.Equal(t, "MSH|^~\\&|", m.Value())
}

func TestAddRangeAppendsAfterHighestIndex(t *testing.T) {
	m := builder.NewMessage()
	seg, err := m.Root().Child(1)
	require.NoError(t, err)
	f9, err := seg.Child(9)
	require.NoError(t, err)
	require.NoError(t, f9.SetValue(element.NewValue("ADT^A01")))

	detached := builder.NewMessage()
	detachedRoot, err := detached.Root().Child(1)
	require.NoError(t, err)
	item, err := detachedRoot.Child(20)
	require.NoError(t, err)
	require.NoError(t, item.SetValue(element.NewValue("MSG001")))

	require.NoError(t, element.AddRange(seg, []element.Element{item}))

	appended, err := seg.Child(10)
	require.NoError(t, err)
	assert.Equal(t, "MSG001", appended.Value())
}
