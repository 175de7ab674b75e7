package schema

import "strings"

// CanonicalizeIdent folds a field or variant name to lower-camel-case on
// ASCII word boundaries, matching the wire format's identifier convention.
// A word boundary is a transition from lowercase/digit to uppercase, a run
// of uppercase followed by lowercase (treating the last uppercase letter as
// the start of the next word, so "HTTPServer" splits as "HTTP"+"Server"),
// or any non-alphanumeric separator ('_', '-', ' ').
//
// Examples: "UserID" -> "userId", "user_id" -> "userId", "X" -> "x".
func CanonicalizeIdent(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(w))

			continue
		}

		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}

	return b.String()
}

func splitWords(name string) []string {
	var words []string

	runes := []rune(name)
	start := 0

	isSep := func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}

	flush := func(end int) {
		if end > start {
			words = append(words, string(runes[start:end]))
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isSep(r):
			flush(i)
			start = i + 1
		case i > start && isUpper(r) && !isUpper(runes[i-1]):
			// lower/digit -> upper transition starts a new word
			flush(i)
			start = i
		case i > start && i+1 < len(runes) && isUpper(r) && isUpper(runes[i-1]) && !isUpper(runes[i+1]):
			// run of uppercase followed by lowercase: the last uppercase
			// letter belongs to the next word ("HTTPServer" -> "HTTP","Server")
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
