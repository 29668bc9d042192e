package natstransport

import (
	"strings"
	"unicode"
)

const NatsSubjectNamespace = "wsrp"

func namespace(strValues ...string) string {
	namespaceChunks := []string{NatsSubjectNamespace}
	for _, str := range strValues {
		if str != "" {
			namespaceChunks = append(namespaceChunks, formatForNamespace(str))
		}
	}
	return strings.Join(namespaceChunks, ".")
}

// formatForNamespace turns camelCase into kebab-case and drops every rune a
// NATS subject token cannot hold.
func formatForNamespace(str string) string {
	runes := []rune(str)
	formattedStr := []rune{}
	for i, r := range runes {
		var pr rune
		if i > 0 {
			pr = runes[i-1]
		}
		switch {
		case r >= 'A' && r <= 'Z':
			if pr >= 'a' && pr <= 'z' {
				formattedStr = append(formattedStr, '-')
			}
			formattedStr = append(formattedStr, unicode.ToLower(r))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			formattedStr = append(formattedStr, r)
		case r == '-', r == '_':
			formattedStr = append(formattedStr, '-')
		case r == '.':
			formattedStr = append(formattedStr, '.')
		case r == '*':
			formattedStr = append(formattedStr, '*')
		}
	}
	return string(formattedStr)
}
