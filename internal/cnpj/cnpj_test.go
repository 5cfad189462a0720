package cnpj

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{
			name:     "full numeric CNPJ",
			raw:      "11.222.333/0001-81",
			expected: "11222333000181",
		},
		{
			name:     "root only",
			raw:      "11.222.333/0001",
			expected: "112223330001",
		},
		{
			name:     "alphanumeric CNPJ",
			raw:      "12.ABC.345/01DE-35",
			expected: "12ABC34501DE35",
		},
		{
			name:     "lowercase letters are accepted and uppercased",
			raw:      "12.abc.345/01de-35",
			expected: "12ABC34501DE35",
		},
		{
			name:    "missing dots",
			raw:     "11222333/0001-81",
			wantErr: true,
		},
		{
			name:    "unpunctuated",
			raw:     "11222333000181",
			wantErr: true,
		},
		{
			name:    "letters in check digits",
			raw:     "12.ABC.345/01DE-3A",
			wantErr: true,
		},
		{
			name:    "single check digit",
			raw:     "11.222.333/0001-8",
			wantErr: true,
		},
		{
			name:    "surrounding whitespace",
			raw:     " 11.222.333/0001-81",
			wantErr: true,
		},
		{
			name:    "non ascii letter",
			raw:     "11.222.33Ç/0001-81",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.raw)

			if tt.wantErr {
				var formatErr *FormatError
				require.ErrorAs(t, err, &formatErr)
				assert.Equal(t, tt.raw, formatErr.Input)
				assert.ErrorIs(t, err, ErrFormat)
				assert.Equal(t, "CNPJ does not match pattern aa.aaa.aaa/aaaa-dd for validation, or aa.aaa.aaa/aaaa for generation", err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.String())
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() {
		MustParse("11.222.333/0001-81")
	})
	assert.Panics(t, func() {
		MustParse("11222333000181")
	})
}

func TestCNPJ_Validate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected bool
	}{
		{name: "documented valid CNPJ", raw: "11.222.333/0001-81", expected: true},
		{name: "another valid CNPJ", raw: "11.444.777/0001-61", expected: true},
		{name: "official alphanumeric example", raw: "12.ABC.345/01DE-35", expected: true},
		{name: "lowercase alphanumeric", raw: "12.abc.345/01de-35", expected: true},
		{name: "all zeros", raw: "00.000.000/0000-00", expected: true},
		{name: "wrong first digit", raw: "11.222.333/0001-71", expected: false},
		{name: "wrong second digit", raw: "11.222.333/0001-82", expected: false},
		{name: "swapped digits", raw: "11.222.333/0001-18", expected: false},
		{name: "root only never validates", raw: "11.222.333/0001", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustParse(tt.raw)

			valid, err := c.Validate()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, valid)
			assert.Equal(t, tt.expected, c.IsValid())
		})
	}
}

func TestCNPJ_CheckDigits(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "numeric root", raw: "11.222.333/0001", expected: "81"},
		{name: "full CNPJ ignores its own digits", raw: "11.222.333/0001-00", expected: "81"},
		{name: "branch establishment", raw: "11.222.333/0002", expected: "62"},
		{name: "all letters", raw: "AB.CDE.FGH/IJKL", expected: "80"},
		{name: "official alphanumeric example", raw: "12.ABC.345/01DE", expected: "35"},
		{name: "first digit from remainder ten", raw: "AB.123.456/0001", expected: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digits, err := MustParse(tt.raw).CheckDigits()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, digits)
		})
	}
}

func TestCNPJ_InvalidLength(t *testing.T) {
	// Parse never produces these lengths; build them directly
	for _, value := range []string{"", "1122233300018", "11222333000", "112223330001811"} {
		c := CNPJ{value: value}

		_, err := c.CheckDigits()
		var lengthErr *LengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, len(value), lengthErr.Length)
		assert.ErrorIs(t, err, ErrLength)
		assert.False(t, errors.Is(err, ErrFormat))

		valid, err := c.Validate()
		assert.False(t, valid)
		assert.ErrorIs(t, err, ErrLength)
		assert.False(t, c.IsValid())

		_, err = c.Complete()
		assert.ErrorIs(t, err, ErrLength)
	}
}

func TestCNPJ_RoundTrip(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		root := make([]byte, RootLength)
		for j := range root {
			root[j] = alphabet[rng.Intn(len(alphabet))]
		}

		c, err := Parse(Mask(string(root)))
		require.NoError(t, err)

		digits, err := c.CheckDigits()
		require.NoError(t, err)
		require.Len(t, digits, 2)

		full, err := Parse(c.Formatted() + "-" + digits)
		require.NoError(t, err)
		assert.True(t, full.IsValid(), "root %s digits %s", root, digits)

		completed, err := c.Complete()
		require.NoError(t, err)
		assert.Equal(t, full, completed)
	}
}

func TestCNPJ_CorruptedDigitsInvalidate(t *testing.T) {
	for _, raw := range []string{"11.222.333/0001-81", "12.ABC.345/01DE-35", "11.444.777/0001-61"} {
		c := MustParse(raw)
		require.True(t, c.IsValid())

		value := c.String()
		for pos := RootLength; pos < FullLength; pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if value[pos] == d {
					continue
				}
				corrupted := []byte(value)
				corrupted[pos] = d

				assert.False(t, MustParse(Mask(string(corrupted))).IsValid(), "corrupted %s", corrupted)
			}
		}
	}
}

func TestCNPJ_Views(t *testing.T) {
	headOffice := MustParse("11.222.333/0001-81")
	assert.Equal(t, "11.222.333/0001-81", headOffice.Formatted())
	assert.Equal(t, "11222333", headOffice.Root())
	assert.Equal(t, "0001", headOffice.Branch())
	assert.True(t, headOffice.IsHeadOffice())
	assert.True(t, headOffice.HasCheckDigits())
	assert.Equal(t, KindHeadOffice, headOffice.Kind())

	branch := MustParse("11.222.333/0002-62")
	assert.Equal(t, KindBranch, branch.Kind())
	assert.False(t, branch.IsHeadOffice())
	assert.True(t, headOffice.SameRoot(branch))

	root := MustParse("12.abc.345/01de")
	assert.Equal(t, "12.ABC.345/01DE", root.Formatted())
	assert.False(t, root.HasCheckDigits())
	assert.False(t, root.SameRoot(headOffice))

	assert.Equal(t, KindUnknown, CNPJ{}.Kind())
	assert.False(t, CNPJ{}.SameRoot(CNPJ{}))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", Mask("11222333000181"))
	assert.Equal(t, "11.222.333/0001", Mask("112223330001"))
	assert.Equal(t, "12.ABC.345/01DE-35", Mask("12abc34501de35"))
	assert.Equal(t, "11.222.333/0001-81", Mask("11.222.333/0001-81"))
	assert.Equal(t, "1122233300018", Mask("1122233300018"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "12ABC34501DE35", Normalize("12.abc.345/01de-35"))
	assert.Equal(t, "", Normalize("../-"))
}
