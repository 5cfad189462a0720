package cnpj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeights(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected []int
	}{
		{
			name:     "zero length",
			length:   0,
			expected: []int{},
		},
		{
			name:     "negative length",
			length:   -3,
			expected: []int{},
		},
		{
			name:     "single character",
			length:   1,
			expected: []int{2},
		},
		{
			name:     "full cycle",
			length:   8,
			expected: []int{9, 8, 7, 6, 5, 4, 3, 2},
		},
		{
			name:     "one past the cycle",
			length:   9,
			expected: []int{2, 9, 8, 7, 6, 5, 4, 3, 2},
		},
		{
			name:     "first digit of a root",
			length:   12,
			expected: []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		},
		{
			name:     "second digit of a root",
			length:   13,
			expected: []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := Weights(tt.length)
			assert.Equal(t, tt.expected, weights)
		})
	}
}

func TestWeights_RightmostIsAlwaysTwo(t *testing.T) {
	for length := 1; length <= 40; length++ {
		weights := Weights(length)
		assert.Len(t, weights, length)
		assert.Equal(t, 2, weights[length-1], "length %d", length)
		if length > 1 {
			assert.Equal(t, 3, weights[length-2], "length %d", length)
		}
	}
}

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "empty value", value: "", expected: 0},
		{name: "remainder zero", value: "0", expected: 0},
		{name: "remainder one", value: "6", expected: 0},
		{name: "remainder two", value: "1", expected: 9},
		{name: "remainder ten", value: "5", expected: 1},
		{name: "letter with remainder one", value: "A", expected: 0},
		{name: "letter with remainder ten", value: "K", expected: 1},
		{name: "numeric root", value: "112223330001", expected: 8},
		{name: "numeric root with first digit", value: "1122233300018", expected: 1},
		{name: "alphanumeric root", value: "12ABC34501DE", expected: 3},
		{name: "all letters", value: "ABCDEFGHIJKL", expected: 8},
		{name: "all letters with first digit", value: "ABCDEFGHIJKL8", expected: 0},
		{name: "lowercase is normalized", value: "abcdefghijkl", expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckDigit(tt.value))
		})
	}
}

func TestCalculator(t *testing.T) {
	t.Run("normalizes to uppercase", func(t *testing.T) {
		calc := NewCalculator("12abc34501de")
		assert.Equal(t, "12ABC34501DE", calc.Value())
	})

	t.Run("weighted sum uses ascii offset for letters", func(t *testing.T) {
		// A..L contribute 17..28, weighted 5,4,3,2,9,8,7,6,5,4,3,2
		calc := NewCalculator("ABCDEFGHIJKL")
		assert.Equal(t, 1290, calc.Sum())
		assert.Equal(t, 8, calc.Digit())
	})

	t.Run("digit is deterministic", func(t *testing.T) {
		calc := NewCalculator("11444777000")
		first := calc.Digit()
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, calc.Digit())
			assert.Equal(t, first, CheckDigit("11444777000"))
		}
	})

	t.Run("digit is always a single decimal digit", func(t *testing.T) {
		for _, value := range []string{"0", "Z", "ZZZZZZZZZZZZ", "999999999999", "A1B2C3D4E5F6"} {
			digit := NewCalculator(value).Digit()
			assert.GreaterOrEqual(t, digit, 0)
			assert.LessOrEqual(t, digit, 9)
		}
	})
}
