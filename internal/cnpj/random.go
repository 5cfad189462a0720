package cnpj

import "math/rand/v2"

const (
	numericCharset      = "0123456789"
	alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Random returns a valid head office CNPJ with a random company root. With
// letters set the root may contain A-Z. A nil r uses the global source.
func Random(r *rand.Rand, letters bool) CNPJ {
	charset := numericCharset
	if letters {
		charset = alphanumericCharset
	}

	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	root := make([]byte, 0, RootLength)
	for i := 0; i < RootLength-len(headOfficeOrder); i++ {
		root = append(root, charset[intN(len(charset))])
	}
	root = append(root, headOfficeOrder...)

	base := string(root)
	return CNPJ{value: base + checkDigits(base)}
}
