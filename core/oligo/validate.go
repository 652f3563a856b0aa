// core/oligo/validate.go
package oligo

import "unicode"

// IUPAC DNA codes and their complements. Index sheets normally carry plain
// ACGT; the rest are accepted so degenerate sequences survive untouched.
var complement = map[rune]rune{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'D': 'H',
	'H': 'D', 'V': 'B', 'N': 'N',
}

// Normalize removes whitespace and quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// RevComp returns the reverse complement. Unknown characters pass through.
func RevComp(seq string) string {
	r := []rune(Normalize(seq))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = comp(r[j]), comp(r[i])
	}
	if len(r)%2 == 1 {
		m := len(r) / 2
		r[m] = comp(r[m])
	}
	return string(r)
}

func comp(r rune) rune {
	if c, ok := complement[r]; ok {
		return c
	}
	return r
}
