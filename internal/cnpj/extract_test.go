package cnpj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFromText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no CNPJ",
			text:     "nothing to see here",
			expected: nil,
		},
		{
			name:     "single valid CNPJ",
			text:     "Razão social ACME, CNPJ 11.222.333/0001-81, São Paulo",
			expected: []string{"11222333000181"},
		},
		{
			name:     "invalid check digits are dropped",
			text:     "11.222.333/0001-82 and 11.444.777/0001-61",
			expected: []string{"11444777000161"},
		},
		{
			name:     "duplicates keep first appearance",
			text:     "12.abc.345/01de-35; 11.222.333/0001-81; 12.ABC.345/01DE-35",
			expected: []string{"12ABC34501DE35", "11222333000181"},
		},
		{
			name:     "roots without digits are ignored",
			text:     "root 11.222.333/0001 only",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := ExtractFromText(tt.text)

			var values []string
			for _, c := range found {
				values = append(values, c.String())
			}
			assert.Equal(t, tt.expected, values)
		})
	}
}
