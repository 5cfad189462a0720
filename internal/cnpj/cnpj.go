// Package cnpj implements the Brazilian CNPJ check digit scheme, including
// the alphanumeric CNPJ format.
//
// A CNPJ is 12 root characters (8 company root + 4 establishment order)
// followed by 2 check digits. Root characters may be digits or letters A-Z;
// each character contributes its ASCII code minus 48 to a weighted
// modulo-11 sum.
package cnpj

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// RootLength is the length of a normalized CNPJ without check digits
	RootLength = 12

	// FullLength is the length of a normalized CNPJ with check digits
	FullLength = 14

	headOfficeOrder = "0001"
)

// Kind distinguishes head office from branch establishments
type Kind string

const (
	KindHeadOffice Kind = "MATRIZ"
	KindBranch     Kind = "FILIAL"
	KindUnknown    Kind = "INVALID"
)

var formatPattern = regexp.MustCompile(`^[A-Za-z0-9]{2}\.[A-Za-z0-9]{3}\.[A-Za-z0-9]{3}/[A-Za-z0-9]{4}(-[0-9]{2})?$`)

var punctuation = strings.NewReplacer(".", "", "/", "", "-", "")

// CNPJ is a normalized CNPJ value. The zero value is not a valid CNPJ.
type CNPJ struct {
	value string
}

// Parse validates the punctuated form of raw (AA.AAA.AAA/AAAA-DD, or
// AA.AAA.AAA/AAAA for a root) and returns its normalized value
func Parse(raw string) (CNPJ, error) {
	if !formatPattern.MatchString(raw) {
		return CNPJ{}, &FormatError{Input: raw}
	}
	return CNPJ{value: Normalize(raw)}, nil
}

// MustParse is like Parse but panics on error
func MustParse(raw string) CNPJ {
	c, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize removes '.', '/' and '-' and uppercases the remainder
func Normalize(raw string) string {
	return strings.ToUpper(punctuation.Replace(raw))
}

// Mask formats a 12 or 14 character value as AA.AAA.AAA/AAAA[-DD].
// Values of any other length are returned unchanged.
func Mask(value string) string {
	cleaned := Normalize(value)
	switch len(cleaned) {
	case FullLength:
		return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12] + "-" + cleaned[12:]
	case RootLength:
		return cleaned[:2] + "." + cleaned[2:5] + "." + cleaned[5:8] + "/" + cleaned[8:12]
	default:
		return value
	}
}

// String returns the normalized value
func (c CNPJ) String() string {
	return c.value
}

// Formatted returns the value with the canonical punctuation
func (c CNPJ) Formatted() string {
	return Mask(c.value)
}

// HasCheckDigits reports whether the value carries its two check digits
func (c CNPJ) HasCheckDigits() bool {
	return len(c.value) == FullLength
}

// Validate recomputes the check digits from the root and compares them
// with the value. A root-only value never validates.
func (c CNPJ) Validate() (bool, error) {
	base, err := c.base()
	if err != nil {
		return false, err
	}

	digits := checkDigits(base)
	return base+digits == c.value, nil
}

// IsValid is Validate with errors reported as false
func (c CNPJ) IsValid() bool {
	valid, err := c.Validate()
	return err == nil && valid
}

// CheckDigits generates the two check digits for the value's root
func (c CNPJ) CheckDigits() (string, error) {
	base, err := c.base()
	if err != nil {
		return "", err
	}
	return checkDigits(base), nil
}

// Complete returns the full CNPJ built from the root and generated digits
func (c CNPJ) Complete() (CNPJ, error) {
	base, err := c.base()
	if err != nil {
		return CNPJ{}, err
	}
	return CNPJ{value: base + checkDigits(base)}, nil
}

// Root returns the 8 character company root
func (c CNPJ) Root() string {
	if len(c.value) < 8 {
		return ""
	}
	return c.value[:8]
}

// Branch returns the 4 character establishment order
func (c CNPJ) Branch() string {
	if len(c.value) < RootLength {
		return ""
	}
	return c.value[8:12]
}

// IsHeadOffice reports whether the establishment order is 0001
func (c CNPJ) IsHeadOffice() bool {
	return c.Branch() == headOfficeOrder
}

// Kind returns whether the CNPJ identifies a head office or a branch
func (c CNPJ) Kind() Kind {
	switch {
	case c.Branch() == "":
		return KindUnknown
	case c.IsHeadOffice():
		return KindHeadOffice
	default:
		return KindBranch
	}
}

// SameRoot reports whether both CNPJs belong to the same company
func (c CNPJ) SameRoot(other CNPJ) bool {
	return c.Root() != "" && c.Root() == other.Root()
}

func (c CNPJ) base() (string, error) {
	switch len(c.value) {
	case FullLength:
		return c.value[:RootLength], nil
	case RootLength:
		return c.value, nil
	default:
		return "", &LengthError{Length: len(c.value)}
	}
}

func checkDigits(base string) string {
	first := strconv.Itoa(CheckDigit(base))
	second := strconv.Itoa(CheckDigit(base + first))
	return first + second
}
