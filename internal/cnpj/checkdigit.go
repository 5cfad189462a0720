package cnpj

import "strings"

// weightCycle is the repeating weight sequence of the modulo-11 scheme.
var weightCycle = [...]int{2, 3, 4, 5, 6, 7, 8, 9}

// Calculator computes a single check digit for a value.
// The digit is computed on demand by Digit.
type Calculator struct {
	value string
}

// NewCalculator creates a calculator for value, normalized to uppercase
func NewCalculator(value string) Calculator {
	return Calculator{value: strings.ToUpper(value)}
}

// Value returns the normalized value the digit is computed over
func (c Calculator) Value() string {
	return c.value
}

// Sum returns the weighted sum of the value's characters
func (c Calculator) Sum() int {
	weights := Weights(len(c.value))

	sum := 0
	for i := 0; i < len(c.value); i++ {
		sum += charValue(c.value[i]) * weights[i]
	}
	return sum
}

// Digit returns the check digit in the range 0-9
func (c Calculator) Digit() int {
	// characters below '0' make the sum negative
	remainder := (c.Sum()%11 + 11) % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// CheckDigit computes the modulo-11 check digit of value
func CheckDigit(value string) int {
	return NewCalculator(value).Digit()
}

// Weights returns the weight sequence for a value of the given length.
// The 2..9 cycle is repeated to cover length, truncated and reversed, so the
// rightmost character always gets weight 2.
func Weights(length int) []int {
	if length <= 0 {
		return []int{}
	}

	weights := make([]int, 0, length+len(weightCycle))
	for len(weights) < length {
		weights = append(weights, weightCycle[:]...)
	}
	weights = weights[:length]

	for i, j := 0, len(weights)-1; i < j; i, j = i+1, j-1 {
		weights[i], weights[j] = weights[j], weights[i]
	}
	return weights
}

// charValue maps '0'-'9' to 0-9 and 'A'-'Z' to 17-42
func charValue(ch byte) int {
	return int(ch) - '0'
}
