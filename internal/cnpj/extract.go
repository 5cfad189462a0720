package cnpj

import "regexp"

var formattedPattern = regexp.MustCompile(`\b[A-Za-z0-9]{2}\.[A-Za-z0-9]{3}\.[A-Za-z0-9]{3}/[A-Za-z0-9]{4}-[0-9]{2}\b`)

// ExtractFromText finds punctuated CNPJs in text and returns the ones with
// valid check digits, without duplicates, in order of first appearance
func ExtractFromText(text string) []CNPJ {
	var found []CNPJ
	seen := make(map[string]struct{})

	for _, match := range formattedPattern.FindAllString(text, -1) {
		c, err := Parse(match)
		if err != nil || !c.IsValid() {
			continue
		}
		if _, ok := seen[c.value]; ok {
			continue
		}
		seen[c.value] = struct{}{}
		found = append(found, c)
	}

	return found
}
