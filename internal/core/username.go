package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DeriveUsername builds the login name from the owner's display name: the
// lowercase first letter of every whitespace-separated word, in order.
// "Kristiana Bakalova" becomes "kb".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(owner) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
