package cnpj

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches any *FormatError with errors.Is
	ErrFormat = errors.New("invalid CNPJ format")

	// ErrLength matches any *LengthError with errors.Is
	ErrLength = errors.New("invalid CNPJ length")
)

// FormatError is returned by Parse when the raw input does not match the
// punctuated CNPJ pattern
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return "CNPJ does not match pattern aa.aaa.aaa/aaaa-dd for validation, or aa.aaa.aaa/aaaa for generation"
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// LengthError is returned when the normalized CNPJ is neither 12 nor 14
// characters long
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("CNPJ has invalid length %d: expected %d or %d characters", e.Length, RootLength, FullLength)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLength
}
