package bplang

import "strings"

// Format renders tokens as canonical program text.
func Format(tokens []Token) string {
	var sb strings.Builder
	for _, token := range tokens {
		sb.WriteString(token.String())
	}
	return sb.String()
}
