package fields

import (
	"fmt"
	"strings"

	"github.com/deltran/swiftmt/internal/primitive"
)

// Field50A is the ordering customer identified by BIC, format
// [/34x]4!a2!a2!c[3!c].
type Field50A struct {
	Account string
	BIC     string
}

func ParseField50A(raw string) (Field50A, error) { return parseAccountBIC("50A", raw) }

func (f Field50A) Tag() string  { return "50A" }
func (f Field50A) Emit() string { return emitAccountBIC("50A", f.Account, f.BIC) }

// Field50F is the ordering customer as a structured party: a mandatory
// numbered identifier line (account or code/identifier), then up to six
// numbered name-and-address lines.
type Field50F struct {
	PartyIdentifier string
	NameAndAddress  []string
}

func ParseField50F(raw string) (Field50F, error) {
	lines := linesOf(raw)
	if len(lines) == 0 {
		return Field50F{}, perr("50F", "party identifier", fmt.Errorf("field is empty"))
	}
	if _, err := primitive.Text(lines[0], 35); err != nil {
		return Field50F{}, perr("50F", "party identifier", err)
	}
	rest := lines[1:]
	for i, l := range rest {
		if _, err := primitive.Text(l, 35); err != nil {
			return Field50F{}, perr("50F", fmt.Sprintf("name and address line %d", i+1), err)
		}
	}
	return Field50F{PartyIdentifier: lines[0], NameAndAddress: rest}, nil
}

func (f Field50F) Tag() string { return "50F" }
func (f Field50F) Emit() string {
	return ":50F:" + joinLines(append([]string{f.PartyIdentifier}, f.NameAndAddress...))
}

// Field50K is the ordering customer by account and free-text name/address,
// format [/34x]4*35x.
type Field50K struct {
	Account string
	Name    []string
}

func ParseField50K(raw string) (Field50K, error) {
	first, rest := firstLine(raw)
	var account string
	var nameLines []string
	if strings.HasPrefix(first, "/") {
		account = strings.TrimPrefix(first, "/")
		nameLines = linesOf(rest)
	} else {
		nameLines = linesOf(raw)
	}
	if len(nameLines) > 4 {
		return Field50K{}, perr("50K", "name and address", fmt.Errorf("expected at most 4 lines, found %d", len(nameLines)))
	}
	for i, l := range nameLines {
		if _, err := primitive.Text(l, 35); err != nil {
			return Field50K{}, perr("50K", fmt.Sprintf("line %d", i+1), err)
		}
	}
	return Field50K{Account: account, Name: nameLines}, nil
}

func (f Field50K) Tag() string { return "50K" }
func (f Field50K) Emit() string {
	lines := f.Name
	if f.Account != "" {
		lines = append([]string{"/" + f.Account}, lines...)
	}
	return ":50K:" + joinLines(lines)
}

// Field51A is the sending institution, same wire shape as Field52A but
// without an optional party prefix — carried in Block 4 of MT103 and
// MT104.
type Field51A struct {
	BIC string
}

func ParseField51A(raw string) (Field51A, error) {
	bic, err := primitive.BIC(raw)
	if err != nil {
		return Field51A{}, perr("51A", "bic", err)
	}
	return Field51A{BIC: bic}, nil
}

func (f Field51A) Tag() string  { return "51A" }
func (f Field51A) Emit() string { return ":51A:" + f.BIC }

// institutionBIC / institutionNameAddress are the two shared shapes every
// correspondent/institution field (52-58) variant reduces to.
type institutionBIC struct {
	PartyIdentifier string // optional leading "/1!a/34x"-style qualifier, without the slashes
	BIC             string
}

type institutionNameAddress struct {
	PartyIdentifier string
	Lines           []string
}

func parseAccountBIC(tag, raw string) (Field50A, error) {
	first, rest := firstLine(raw)
	var account string
	bicLine := first
	if strings.HasPrefix(first, "/") {
		account = strings.TrimPrefix(first, "/")
		next, _ := firstLine(rest)
		bicLine = next
	}
	bic, err := primitive.BIC(bicLine)
	if err != nil {
		return Field50A{}, perr(tag, "bic", err)
	}
	return Field50A{Account: account, BIC: bic}, nil
}

func emitAccountBIC(tag, account, bic string) string {
	if account == "" {
		return ":" + tag + ":" + bic
	}
	return ":" + tag + ":/" + account + "\n" + bic
}

// parseInstitutionBIC implements the "[/1!a][/34x]4!a2!a2!c[3!c]" shape shared
// by the 'A' option of fields 52-58.
func parseInstitutionBIC(tag, raw string) (institutionBIC, error) {
	first, rest := firstLine(raw)
	var party string
	bicLine := first
	if strings.HasPrefix(first, "/") {
		party = strings.TrimPrefix(first, "/")
		next, _ := firstLine(rest)
		bicLine = next
	}
	bic, err := primitive.BIC(bicLine)
	if err != nil {
		return institutionBIC{}, perr(tag, "bic", err)
	}
	return institutionBIC{PartyIdentifier: party, BIC: bic}, nil
}

func emitInstitutionBIC(tag string, f institutionBIC) string {
	if f.PartyIdentifier == "" {
		return ":" + tag + ":" + f.BIC
	}
	return ":" + tag + ":/" + f.PartyIdentifier + "\n" + f.BIC
}

// parseInstitutionNameAddress implements the 'D' option shape shared by
// fields 52-58: optional "/34x" party line, then up to 4 name/address lines.
func parseInstitutionNameAddress(tag, raw string) (institutionNameAddress, error) {
	first, rest := firstLine(raw)
	var party string
	var lines []string
	if strings.HasPrefix(first, "/") {
		party = strings.TrimPrefix(first, "/")
		lines = linesOf(rest)
	} else {
		lines = linesOf(raw)
	}
	if len(lines) > 4 {
		return institutionNameAddress{}, perr(tag, "name and address", fmt.Errorf("expected at most 4 lines, found %d", len(lines)))
	}
	for i, l := range lines {
		if _, err := primitive.Text(l, 35); err != nil {
			return institutionNameAddress{}, perr(tag, fmt.Sprintf("line %d", i+1), err)
		}
	}
	return institutionNameAddress{PartyIdentifier: party, Lines: lines}, nil
}

func emitInstitutionNameAddress(tag string, f institutionNameAddress) string {
	lines := f.Lines
	if f.PartyIdentifier != "" {
		lines = append([]string{"/" + f.PartyIdentifier}, lines...)
	}
	return ":" + tag + ":" + joinLines(lines)
}

// Field52A/52B/52D: ordering institution.
type Field52A struct{ institutionBIC }
type Field52B struct {
	PartyIdentifier string
	Location        string
}
type Field52D struct{ institutionNameAddress }

func ParseField52A(raw string) (Field52A, error) {
	b, err := parseInstitutionBIC("52A", raw)
	return Field52A{b}, err
}
func (f Field52A) Tag() string  { return "52A" }
func (f Field52A) Emit() string { return emitInstitutionBIC("52A", f.institutionBIC) }

func ParseField52B(raw string) (Field52B, error) {
	first, rest := firstLine(raw)
	var party string
	loc := first
	if strings.HasPrefix(first, "/") {
		party = strings.TrimPrefix(first, "/")
		loc, _ = firstLine(rest)
	}
	if _, err := primitive.Text(loc, 35); err != nil {
		return Field52B{}, perr("52B", "location", err)
	}
	return Field52B{PartyIdentifier: party, Location: loc}, nil
}
func (f Field52B) Tag() string { return "52B" }
func (f Field52B) Emit() string {
	if f.PartyIdentifier == "" {
		return ":52B:" + f.Location
	}
	return ":52B:/" + f.PartyIdentifier + "\n" + f.Location
}

func ParseField52D(raw string) (Field52D, error) {
	n, err := parseInstitutionNameAddress("52D", raw)
	return Field52D{n}, err
}
func (f Field52D) Tag() string  { return "52D" }
func (f Field52D) Emit() string { return emitInstitutionNameAddress("52D", f.institutionNameAddress) }

// Field53A/53B/53D: sender's correspondent.
type Field53A struct{ institutionBIC }
type Field53B struct {
	PartyIdentifier string
	Location        string
}
type Field53D struct{ institutionNameAddress }

func ParseField53A(raw string) (Field53A, error) {
	b, err := parseInstitutionBIC("53A", raw)
	return Field53A{b}, err
}
func (f Field53A) Tag() string  { return "53A" }
func (f Field53A) Emit() string { return emitInstitutionBIC("53A", f.institutionBIC) }

func ParseField53B(raw string) (Field53B, error) {
	b, err := ParseField52B(raw)
	return Field53B(b), err
}
func (f Field53B) Tag() string { return "53B" }
func (f Field53B) Emit() string {
	b := Field52B(f)
	return ":53B:" + strings.TrimPrefix(b.Emit(), ":52B:")
}

func ParseField53D(raw string) (Field53D, error) {
	n, err := parseInstitutionNameAddress("53D", raw)
	return Field53D{n}, err
}
func (f Field53D) Tag() string  { return "53D" }
func (f Field53D) Emit() string { return emitInstitutionNameAddress("53D", f.institutionNameAddress) }

// Field54A/54B/54D: receiver's correspondent.
type Field54A struct{ institutionBIC }
type Field54B struct {
	PartyIdentifier string
	Location        string
}
type Field54D struct{ institutionNameAddress }

func ParseField54A(raw string) (Field54A, error) {
	b, err := parseInstitutionBIC("54A", raw)
	return Field54A{b}, err
}
func (f Field54A) Tag() string  { return "54A" }
func (f Field54A) Emit() string { return emitInstitutionBIC("54A", f.institutionBIC) }

func ParseField54B(raw string) (Field54B, error) {
	b, err := ParseField52B(raw)
	return Field54B(b), err
}
func (f Field54B) Tag() string { return "54B" }
func (f Field54B) Emit() string {
	b := Field52B(f)
	return ":54B:" + strings.TrimPrefix(b.Emit(), ":52B:")
}

func ParseField54D(raw string) (Field54D, error) {
	n, err := parseInstitutionNameAddress("54D", raw)
	return Field54D{n}, err
}
func (f Field54D) Tag() string  { return "54D" }
func (f Field54D) Emit() string { return emitInstitutionNameAddress("54D", f.institutionNameAddress) }

// Field55A/55B/55D: third reimbursement institution.
type Field55A struct{ institutionBIC }
type Field55B struct {
	PartyIdentifier string
	Location        string
}
type Field55D struct{ institutionNameAddress }

func ParseField55A(raw string) (Field55A, error) {
	b, err := parseInstitutionBIC("55A", raw)
	return Field55A{b}, err
}
func (f Field55A) Tag() string  { return "55A" }
func (f Field55A) Emit() string { return emitInstitutionBIC("55A", f.institutionBIC) }

func ParseField55B(raw string) (Field55B, error) {
	b, err := ParseField52B(raw)
	return Field55B(b), err
}
func (f Field55B) Tag() string { return "55B" }
func (f Field55B) Emit() string {
	b := Field52B(f)
	return ":55B:" + strings.TrimPrefix(b.Emit(), ":52B:")
}

func ParseField55D(raw string) (Field55D, error) {
	n, err := parseInstitutionNameAddress("55D", raw)
	return Field55D{n}, err
}
func (f Field55D) Tag() string  { return "55D" }
func (f Field55D) Emit() string { return emitInstitutionNameAddress("55D", f.institutionNameAddress) }

// Field56A/56C/56D: intermediary institution. Option C drops the BIC in
// favour of a bare account/clearing-system reference.
type Field56A struct{ institutionBIC }
type Field56C struct {
	Account string
}
type Field56D struct{ institutionNameAddress }

func ParseField56A(raw string) (Field56A, error) {
	b, err := parseInstitutionBIC("56A", raw)
	return Field56A{b}, err
}
func (f Field56A) Tag() string  { return "56A" }
func (f Field56A) Emit() string { return emitInstitutionBIC("56A", f.institutionBIC) }

func ParseField56C(raw string) (Field56C, error) {
	if !strings.HasPrefix(raw, "/") {
		return Field56C{}, perr("56C", "account", fmt.Errorf("value %q must begin with '/'", raw))
	}
	acct := strings.TrimPrefix(raw, "/")
	if _, err := primitive.Text(acct, 34); err != nil {
		return Field56C{}, perr("56C", "account", err)
	}
	return Field56C{Account: acct}, nil
}
func (f Field56C) Tag() string  { return "56C" }
func (f Field56C) Emit() string { return ":56C:/" + f.Account }

func ParseField56D(raw string) (Field56D, error) {
	n, err := parseInstitutionNameAddress("56D", raw)
	return Field56D{n}, err
}
func (f Field56D) Tag() string  { return "56D" }
func (f Field56D) Emit() string { return emitInstitutionNameAddress("56D", f.institutionNameAddress) }

// Field57A/57B/57C/57D: account with institution.
type Field57A struct{ institutionBIC }
type Field57B struct {
	PartyIdentifier string
	Location        string
}
type Field57C struct {
	Account string
}
type Field57D struct{ institutionNameAddress }

func ParseField57A(raw string) (Field57A, error) {
	b, err := parseInstitutionBIC("57A", raw)
	return Field57A{b}, err
}
func (f Field57A) Tag() string  { return "57A" }
func (f Field57A) Emit() string { return emitInstitutionBIC("57A", f.institutionBIC) }

func ParseField57B(raw string) (Field57B, error) {
	b, err := ParseField52B(raw)
	return Field57B(b), err
}
func (f Field57B) Tag() string { return "57B" }
func (f Field57B) Emit() string {
	b := Field52B(f)
	return ":57B:" + strings.TrimPrefix(b.Emit(), ":52B:")
}

func ParseField57C(raw string) (Field57C, error) {
	c, err := ParseField56C(raw)
	return Field57C(c), err
}
func (f Field57C) Tag() string  { return "57C" }
func (f Field57C) Emit() string { return ":57C:/" + f.Account }

func ParseField57D(raw string) (Field57D, error) {
	n, err := parseInstitutionNameAddress("57D", raw)
	return Field57D{n}, err
}
func (f Field57D) Tag() string  { return "57D" }
func (f Field57D) Emit() string { return emitInstitutionNameAddress("57D", f.institutionNameAddress) }

// Field58A/58D: beneficiary institution.
type Field58A struct{ institutionBIC }
type Field58D struct{ institutionNameAddress }

func ParseField58A(raw string) (Field58A, error) {
	b, err := parseInstitutionBIC("58A", raw)
	return Field58A{b}, err
}
func (f Field58A) Tag() string  { return "58A" }
func (f Field58A) Emit() string { return emitInstitutionBIC("58A", f.institutionBIC) }

func ParseField58D(raw string) (Field58D, error) {
	n, err := parseInstitutionNameAddress("58D", raw)
	return Field58D{n}, err
}
func (f Field58D) Tag() string  { return "58D" }
func (f Field58D) Emit() string { return emitInstitutionNameAddress("58D", f.institutionNameAddress) }

// Field59 is the beneficiary customer with no option letter: account plus
// free-text name/address, format [/34x]4*35x.
type Field59 struct {
	Account string
	Name    []string
}

func ParseField59(raw string) (Field59, error) {
	k, err := ParseField50K(raw)
	return Field59(k), err
}
func (f Field59) Tag() string { return "59" }
func (f Field59) Emit() string {
	k := Field50K(f)
	return ":59:" + strings.TrimPrefix(k.Emit(), ":50K:")
}

// Field59A is the beneficiary customer identified by BIC.
type Field59A struct {
	Account string
	BIC     string
}

func ParseField59A(raw string) (Field59A, error) {
	a, err := parseAccountBIC("59A", raw)
	return Field59A(a), err
}
func (f Field59A) Tag() string  { return "59A" }
func (f Field59A) Emit() string { return emitAccountBIC("59A", f.Account, f.BIC) }

// Field59F is the beneficiary customer as a structured party: an optional
// account line, then numbered name/address/country/town lines (1/.../4/...).
// Line numbers are required to be present and strictly increasing, a
// stricter check than the bare line-count cap the other structured party
// fields use, matching how correspondent banks reject out-of-order
// structured beneficiary data rather than silently re-numbering it.
type Field59F struct {
	Account string
	Lines   []string // each still carries its "n/" numbering prefix
}

func ParseField59F(raw string) (Field59F, error) {
	first, rest := firstLine(raw)
	var account string
	var lines []string
	if strings.HasPrefix(first, "/") {
		account = strings.TrimPrefix(first, "/")
		lines = linesOf(rest)
	} else {
		lines = linesOf(raw)
	}
	if len(lines) > 8 {
		return Field59F{}, perr("59F", "structured lines", fmt.Errorf("expected at most 8 numbered lines, found %d", len(lines)))
	}
	lastNum := 0
	for i, l := range lines {
		if _, err := primitive.Text(l, 35); err != nil {
			return Field59F{}, perr("59F", fmt.Sprintf("line %d", i+1), err)
		}
		slash := strings.IndexByte(l, '/')
		if slash < 1 {
			return Field59F{}, perr("59F", fmt.Sprintf("line %d", i+1), fmt.Errorf("structured line %q must begin with a line number followed by '/'", l))
		}
		num, numErr := parseSmallInt(l[:slash])
		if numErr != nil {
			return Field59F{}, perr("59F", fmt.Sprintf("line %d", i+1), fmt.Errorf("structured line %q has a non-numeric line number", l))
		}
		if num <= lastNum {
			return Field59F{}, perr("59F", fmt.Sprintf("line %d", i+1), fmt.Errorf("structured line numbers must strictly increase, got %d after %d", num, lastNum))
		}
		if num > 4 {
			return Field59F{}, perr("59F", fmt.Sprintf("line %d", i+1), fmt.Errorf("structured line number %d is outside 1-4", num))
		}
		lastNum = num
	}
	return Field59F{Account: account, Lines: lines}, nil
}

func (f Field59F) Tag() string { return "59F" }
func (f Field59F) Emit() string {
	lines := f.Lines
	if f.Account != "" {
		lines = append([]string{"/" + f.Account}, lines...)
	}
	return ":59F:" + joinLines(lines)
}

func parseSmallInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a digit: %q", r)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}
