package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hl7kit/gohl7/element"
	"github.com/hl7kit/gohl7/parser"
	"github.com/hl7kit/gohl7/testdata"
)

func TestParseRejectsEmpty(t *testing.T) {
	_, err := parser.Parse("")
	assert.ErrorIs(t, err, element.ErrMessageDataMustNotBeNull)
}

func TestParseRejectsTooShort(t *testing.T) {
	_, err := parser.Parse(testdata.Truncated)
	assert.ErrorIs(t, err, element.ErrMessageDataIsTooShort)
}

func TestParseRejectsNonMSH(t *testing.T) {
	_, err := parser.Parse(testdata.MissingMSH)
	assert.ErrorIs(t, err, element.ErrMessageDataMustStartWithMsh)
}

func TestParseADTA01(t *testing.T) {
	m, err := parser.Parse(testdata.ADTA01)
	require.NoError(t, err)

	root := m.Root()
	// Four segments plus the empty piece after ADTA01's trailing CR.
	assert.Equal(t, 5, root.ValueCount())

	seg1, err := root.Child(1)
	require.NoError(t, err)

	typeCode, err := seg1.Child(0)
	require.NoError(t, err)
	assert.Equal(t, "MSH", typeCode.Value())

	field9, err := seg1.Child(9)
	require.NoError(t, err)
	assert.Equal(t, "ADT^A01", field9.Value())

	trigger, err := seg1.GetValue(9, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "A01", trigger)
}

func TestCursorSetValue(t *testing.T) {
	m, err := parser.Parse(testdata.ADTA01)
	require.NoError(t, err)

	seg1, err := m.Root().Child(1)
	require.NoError(t, err)
	field9, err := seg1.Child(9)
	require.NoError(t, err)

	require.NoError(t, field9.SetValue(element.NewValue("ORU^R01")))
	assert.Equal(t, "ORU^R01", field9.Value())

	seg1Again, err := m.Root().Child(1)
	require.NoError(t, err)
	field9Again, err := seg1Again.Child(9)
	require.NoError(t, err)
	assert.Equal(t, "ORU^R01", field9Again.Value())
}

func TestCursorCacheInvalidatesDownstreamFields(t *testing.T) {
	m, err := parser.Parse(testdata.ADTA01)
	require.NoError(t, err)

	seg1, err := m.Root().Child(1)
	require.NoError(t, err)
	field9, err := seg1.Child(9)
	require.NoError(t, err)
	field10, err := seg1.Child(10)
	require.NoError(t, err)
	require.Equal(t, "MSG00001", field10.Value())

	require.NoError(t, field9.SetValue(element.NewValue("A")))

	field10Again, err := seg1.Child(10)
	require.NoError(t, err)
	assert.Equal(t, "MSG00001", field10Again.Value())
}

func TestSetFieldSeparatorRewritesWholeMessage(t *testing.T) {
	m, err := parser.Parse(testdata.ADTA01)
	require.NoError(t, err)

	seg1, err := m.Root().Child(1)
	require.NoError(t, err)
	f1, err := seg1.Child(1)
	require.NoError(t, err)

	require.NoError(t, f1.SetValue(element.NewValue("@")))
	assert.Equal(t, rune('@'), m.Delimiters().Field)
	assert.Contains(t, m.String(), "MSH@")
}

func TestInsertOnSegmentPreservesTypeCode(t *testing.T) {
	m, err := parser.Parse("MSH|^~\\&|\rPID|1||A^B&C~D")
	require.NoError(t, err)
	pid, err := m.Root().Child(2)
	require.NoError(t, err)

	other, err := parser.Parse(testdata.ADTA01)
	require.NoError(t, err)
	otherSeg, err := other.Root().Child(1)
	require.NoError(t, err)
	otherField, err := otherSeg.Child(9)
	require.NoError(t, err)
	require.Equal(t, "ADT^A01", otherField.Value())

	require.NoError(t, element.Insert(pid, 2, otherField))

	typeCode, err := pid.Child(0)
	require.NoError(t, err)
	assert.Equal(t, "PID", typeCode.Value())
	assert.Contains(t, m.String(), "PID|")
	assert.NotContains(t, m.String(), "\r1|")
}

func TestDeleteOnMSHPreservesTypeCodeAndHeader(t *testing.T) {
	m, err := parser.Parse(testdata.ADTA01)
	require.NoError(t, err)
	seg1, err := m.Root().Child(1)
	require.NoError(t, err)

	require.NoError(t, element.Delete(seg1, 5))

	typeCode, err := seg1.Child(0)
	require.NoError(t, err)
	assert.Equal(t, "MSH", typeCode.Value())
	assert.True(t, strings.HasPrefix(m.String(), "MSH|^~\\&|"))
}

func TestGetValuesOnRepetitionField(t *testing.T) {
	m, err := parser.Parse(testdata.Complex)
	require.NoError(t, err)

	seg2, err := m.Root().Child(2)
	require.NoError(t, err)
	values, err := seg2.GetValues(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"123456", "789012^^^FAC^MR"}, values)
}
