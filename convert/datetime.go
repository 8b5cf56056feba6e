// Package convert implements the type-coded value conversions spec.md
// names as an out-of-core collaborator of the element tree: date/time,
// numeric and boolean codecs built only against Element.Value() and
// Element.SetValue(), never touching parser or builder internals.
package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/hl7kit/gohl7/element"
)

// dtmLayouts are the fixed-width HL7 DTM layouts: the zone-qualified
// ones first, then those without a zone, each group longest first, so
// ParseDTM tries the most specific match before falling back to a
// shorter one.
var dtmLayouts = []string{
	"20060102150405.9999-0700",
	"20060102150405-0700",
	"200601021504-0700",
	"2006010215-0700",
	"20060102-0700",
	"20060102150405.9999",
	"20060102150405",
	"200601021504",
	"2006010215",
	"20060102",
	"200601",
	"2006",
}

// ParseDTM parses an HL7 DTM-format value
// (YYYY[MM[DD[HH[mm[ss[.ssss]]]]]][+/-ZZZZ]) into a time.Time. HL7 DTM is
// a fixed-width format dateparse does not itself produce, so the layout
// table above is tried first; dateparse.ParseAny is the fallback for
// loosely-formatted timestamps some sending systems emit anyway.
func ParseDTM(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("convert: empty DTM value")
	}
	for _, layout := range dtmLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return dateparse.ParseAny(value)
}

// FormatDTM renders t as an HL7 DTM value at the given precision (one of
// "year", "month", "day", "hour", "minute", "second").
func FormatDTM(t time.Time, precision string) string {
	switch precision {
	case "year":
		return t.Format("2006")
	case "month":
		return t.Format("200601")
	case "day":
		return t.Format("20060102")
	case "hour":
		return t.Format("2006010215")
	case "minute":
		return t.Format("200601021504")
	default:
		return t.Format("20060102150405")
	}
}

// GetTime reads e's value and parses it as an HL7 DTM.
func GetTime(e element.Element) (time.Time, error) {
	return ParseDTM(e.Value())
}

// SetTime formats t as an HL7 DTM at the given precision and writes it
// to e.
func SetTime(e element.Element, t time.Time, precision string) error {
	return e.SetValue(element.NewValue(FormatDTM(t, precision)))
}

// GetInt reads e's value and parses it as a decimal integer, the
// encoding HL7 numeric (NM) fields use.
func GetInt(e element.Element) (int64, error) {
	v := strings.TrimSpace(e.Value())
	if v == "" {
		return 0, fmt.Errorf("convert: empty numeric value")
	}
	return strconv.ParseInt(v, 10, 64)
}

// SetInt writes n to e as a decimal integer.
func SetInt(e element.Element, n int64) error {
	return e.SetValue(element.NewValue(strconv.FormatInt(n, 10)))
}

// GetFloat reads e's value and parses it as a decimal number.
func GetFloat(e element.Element) (float64, error) {
	v := strings.TrimSpace(e.Value())
	if v == "" {
		return 0, fmt.Errorf("convert: empty numeric value")
	}
	return strconv.ParseFloat(v, 64)
}

// SetFloat writes f to e, formatted with the minimum digits needed to
// round-trip.
func SetFloat(e element.Element, f float64) error {
	return e.SetValue(element.NewValue(strconv.FormatFloat(f, 'f', -1, 64)))
}

// GetBool reads e's value as an HL7 ID-coded boolean: "Y" is true, "N"
// is false, anything else is an error.
func GetBool(e element.Element) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(e.Value())) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, fmt.Errorf("convert: %q is not a valid HL7 boolean (Y/N)", e.Value())
	}
}

// SetBool writes b to e as "Y" or "N".
func SetBool(e element.Element, b bool) error {
	if b {
		return e.SetValue(element.NewValue("Y"))
	}
	return e.SetValue(element.NewValue("N"))
}
