// Package testdata provides HL7 test messages for testing the gohl7
// library, as exported string constants rather than embedded files
// (no .hl7 fixture files accompany this module).
package testdata

// ADTA01 is a minimal ADT^A01 (Patient Admit) test message.
const ADTA01 = "MSH|^~\\&|ADT1|FACILITY|RECEIVER|FACILITY|20260115103000||ADT^A01|MSG00001|P|2.5\r" +
	"EVN|A01|20260115103000\r" +
	"PID|1||123456^^^FACILITY^MR||DOE^JANE^M||19800101|F|||123 MAIN ST^^ANYTOWN^ST^12345||5555551234\r" +
	"PV1|1|I|WARD1^101^A^FACILITY||||1234^ATTEND^PHYSICIAN|||SUR||||ADM|A0\r"

// ORUR01 is a minimal ORU^R01 (Observation Result) test message with a
// repeating OBX segment.
const ORUR01 = "MSH|^~\\&|LAB|FACILITY|RECEIVER|FACILITY|20260115103000||ORU^R01|MSG00002|P|2.5\r" +
	"PID|1||123456^^^FACILITY^MR||DOE^JANE^M||19800101|F\r" +
	"OBR|1|ORD001|RES001|CBC^COMPLETE BLOOD COUNT||20260115100000\r" +
	"OBX|1|NM|WBC^WHITE BLOOD COUNT||7.2|10*3/uL|4.0-11.0|N|||F\r" +
	"OBX|2|NM|HGB^HEMOGLOBIN||13.5|g/dL|12.0-16.0|N|||F\r"

// Complex is a test message exercising repetitions, multiple
// components, subcomponents and escape sequences in one message.
const Complex = "MSH|^~\\&|APP|FAC|APP2|FAC2|20260115103000||ADT^A08|MSG00003|P|2.5\r" +
	"PID|1||123456~789012^^^FAC^MR||DOE^JANE^M^^^^L~SMITH^JANE^^^^^L||19800101|F|||" +
	"123 MAIN ST&APT 4^^ANYTOWN^ST^12345\r" +
	"NTE|1||Patient requested \\T\\ privacy \\.br\\ please confirm\r"

// MissingMSH is a malformed message that does not begin with MSH.
const MissingMSH = "PID|1||123456^^^FACILITY^MR||DOE^JANE\r"

// Empty is an empty message body, for exercising
// element.ErrMessageDataMustNotBeNull.
const Empty = ""

// Truncated is an incomplete MSH segment shorter than the minimum
// length needed to hold all five delimiters.
const Truncated = "MSH|^~"
