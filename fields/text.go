package fields

import (
	"fmt"

	"github.com/deltran/swiftmt/internal/primitive"
)

// Field20 is the sender's transaction reference, format 16x.
type Field20 struct{ Reference string }

func ParseField20(raw string) (Field20, error) {
	v, err := primitive.Text(raw, 16)
	if err != nil {
		return Field20{}, perr("20", "reference", err)
	}
	return Field20{Reference: v}, nil
}
func (f Field20) Tag() string  { return "20" }
func (f Field20) Emit() string { return ":20:" + f.Reference }

// Field21 is a related reference, format 16x.
type Field21 struct{ Reference string }

func ParseField21(raw string) (Field21, error) {
	v, err := primitive.Text(raw, 16)
	if err != nil {
		return Field21{}, perr("21", "reference", err)
	}
	return Field21{Reference: v}, nil
}
func (f Field21) Tag() string  { return "21" }
func (f Field21) Emit() string { return ":21:" + f.Reference }

// Field23B is the bank operation code, format 4!c (CRED/CRTS/SPAY/SPRI/SSTD).
type Field23B struct{ Code string }

func ParseField23B(raw string) (Field23B, error) {
	c, err := primitive.FixedAlnum(raw, 4)
	if err != nil {
		return Field23B{}, perr("23B", "code", err)
	}
	return Field23B{Code: c}, nil
}
func (f Field23B) Tag() string  { return "23B" }
func (f Field23B) Emit() string { return ":23B:" + f.Code }

// Field23E is an instruction code, optionally followed by additional
// information: format 4!c[/30x]. Repeats within MT103.
type Field23E struct {
	Code           string
	AdditionalInfo string
}

func ParseField23E(raw string) (Field23E, error) {
	line, _ := firstLine(raw)
	slash := indexByte(line, '/')
	codePart := line
	info := ""
	if slash >= 0 {
		codePart = line[:slash]
		info = line[slash+1:]
	}
	code, err := primitive.FixedAlnum(codePart, 4)
	if err != nil {
		return Field23E{}, perr("23E", "code", err)
	}
	if info != "" {
		if _, err := primitive.Text(info, 30); err != nil {
			return Field23E{}, perr("23E", "additional information", err)
		}
	}
	return Field23E{Code: code, AdditionalInfo: info}, nil
}
func (f Field23E) Tag() string { return "23E" }
func (f Field23E) Emit() string {
	if f.AdditionalInfo == "" {
		return ":23E:" + f.Code
	}
	return ":23E:" + f.Code + "/" + f.AdditionalInfo
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// Field25 is the account identification, format 35x (NoOption variant).
type Field25 struct{ Account string }

func ParseField25(raw string) (Field25, error) {
	v, err := primitive.Text(raw, 35)
	if err != nil {
		return Field25{}, perr("25", "account", err)
	}
	return Field25{Account: v}, nil
}
func (f Field25) Tag() string  { return "25" }
func (f Field25) Emit() string { return ":25:" + f.Account }

// Field26T is the transaction type code, format 3!c.
type Field26T struct{ Code string }

func ParseField26T(raw string) (Field26T, error) {
	c, err := primitive.FixedAlnum(raw, 3)
	if err != nil {
		return Field26T{}, perr("26T", "code", err)
	}
	return Field26T{Code: c}, nil
}
func (f Field26T) Tag() string  { return "26T" }
func (f Field26T) Emit() string { return ":26T:" + f.Code }

// Field28 is the statement number, optionally with a sequence number,
// format 5n[/2n].
type Field28 struct {
	StatementNumber int
	SequenceNumber  *int
}

func ParseField28(raw string) (Field28, error) {
	sn, seq, err := parseStatementSeq(raw)
	if err != nil {
		return Field28{}, perr("28", "", err)
	}
	return Field28{StatementNumber: sn, SequenceNumber: seq}, nil
}
func (f Field28) Tag() string  { return "28" }
func (f Field28) Emit() string { return ":28:" + emitStatementSeq(f.StatementNumber, f.SequenceNumber) }

// Field28C is the statement/sequence number pair used in MT940/MT942,
// same wire shape as Field28.
type Field28C struct {
	StatementNumber int
	SequenceNumber  *int
}

func ParseField28C(raw string) (Field28C, error) {
	sn, seq, err := parseStatementSeq(raw)
	if err != nil {
		return Field28C{}, perr("28C", "", err)
	}
	return Field28C{StatementNumber: sn, SequenceNumber: seq}, nil
}
func (f Field28C) Tag() string { return "28C" }
func (f Field28C) Emit() string {
	return ":28C:" + emitStatementSeq(f.StatementNumber, f.SequenceNumber)
}

func parseStatementSeq(raw string) (int, *int, error) {
	slash := indexByte(raw, '/')
	snText := raw
	seqText := ""
	if slash >= 0 {
		snText = raw[:slash]
		seqText = raw[slash+1:]
	}
	if len(snText) == 0 || len(snText) > 5 {
		return 0, nil, fmt.Errorf("statement number %q must be 1-5 digits", snText)
	}
	sn, err := parseSmallInt(snText)
	if err != nil {
		return 0, nil, fmt.Errorf("statement number %q is not numeric", snText)
	}
	if seqText == "" {
		return sn, nil, nil
	}
	if len(seqText) > 2 {
		return 0, nil, fmt.Errorf("sequence number %q must be 1-2 digits", seqText)
	}
	seq, err := parseSmallInt(seqText)
	if err != nil {
		return 0, nil, fmt.Errorf("sequence number %q is not numeric", seqText)
	}
	return sn, &seq, nil
}

func emitStatementSeq(sn int, seq *int) string {
	if seq == nil {
		return fmt.Sprintf("%d", sn)
	}
	return fmt.Sprintf("%d/%d", sn, *seq)
}

// Field70 is remittance information, format 4*35x.
type Field70 struct{ Lines []string }

func ParseField70(raw string) (Field70, error) {
	lines, err := primitive.Lines(raw, 4, 35)
	if err != nil {
		return Field70{}, perr("70", "", err)
	}
	return Field70{Lines: lines}, nil
}
func (f Field70) Tag() string  { return "70" }
func (f Field70) Emit() string { return ":70:" + joinLines(f.Lines) }

// Field72 is sender-to-receiver information, format 6*35x. The first
// slash-led token on each line (if any) is a SWIFT code word such as
// /REJT/ or /RETN/, surfaced via Codes for the rule engine and for the
// MT202 cover-payment reject/return classification.
type Field72 struct{ Lines []string }

func ParseField72(raw string) (Field72, error) {
	lines, err := primitive.Lines(raw, 6, 35)
	if err != nil {
		return Field72{}, perr("72", "", err)
	}
	return Field72{Lines: lines}, nil
}
func (f Field72) Tag() string  { return "72" }
func (f Field72) Emit() string { return ":72:" + joinLines(f.Lines) }

// Codes extracts every "/CODE/" token appearing at the start of a line,
// case-insensitively, e.g. ["REJT"] for a line "/REJT/9/..."; used by
// message-level logic to detect reject/return cover advices without each
// message family re-implementing the same slash-token scan.
func (f Field72) Codes() []string {
	var codes []string
	for _, line := range f.Lines {
		if len(line) < 2 || line[0] != '/' {
			continue
		}
		end := indexByte(line[1:], '/')
		if end < 0 {
			continue
		}
		codes = append(codes, toUpperASCII(line[1:1+end]))
	}
	return codes
}

// HasCode reports whether any line carries the given code (case-insensitive).
func (f Field72) HasCode(code string) bool {
	want := toUpperASCII(code)
	for _, c := range f.Codes() {
		if c == want {
			return true
		}
	}
	return false
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}

// Field77B is regulatory reporting, format 3*35x.
type Field77B struct{ Lines []string }

func ParseField77B(raw string) (Field77B, error) {
	lines, err := primitive.Lines(raw, 3, 35)
	if err != nil {
		return Field77B{}, perr("77B", "", err)
	}
	return Field77B{Lines: lines}, nil
}
func (f Field77B) Tag() string  { return "77B" }
func (f Field77B) Emit() string { return ":77B:" + joinLines(f.Lines) }

// Field77T is envelope-level free text used by MT103REMIT to carry
// extended remittance information beyond Field 70's four-line limit.
type Field77T struct{ Lines []string }

func ParseField77T(raw string) (Field77T, error) {
	lines, err := primitive.Lines(raw, 20, 35)
	if err != nil {
		return Field77T{}, perr("77T", "", err)
	}
	return Field77T{Lines: lines}, nil
}
func (f Field77T) Tag() string  { return "77T" }
func (f Field77T) Emit() string { return ":77T:" + joinLines(f.Lines) }

// Field86 is information to the account owner, format 6*65x.
type Field86 struct{ Lines []string }

func ParseField86(raw string) (Field86, error) {
	lines, err := primitive.Lines(raw, 6, 65)
	if err != nil {
		return Field86{}, perr("86", "", err)
	}
	return Field86{Lines: lines}, nil
}
func (f Field86) Tag() string  { return "86" }
func (f Field86) Emit() string { return ":86:" + joinLines(f.Lines) }
