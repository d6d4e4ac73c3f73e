package emit

import "strings"

// pascalCase joins the words of a kebab-, snake-, or camel-cased name with
// their first letters capitalized.
func pascalCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(strings.ToUpper(w[:1]) + w[1:])
	}
	return b.String()
}

func camelCase(s string) string {
	p := pascalCase(s)
	if p == "" {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// kebabCase converts a PascalCase or camelCase name to kebab-case.
func kebabCase(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		for i, r := range w {
			if i > 0 && r >= 'A' && r <= 'Z' {
				b.WriteByte('-')
			}
			b.WriteRune(r)
		}
		b.WriteByte('-')
	}
	return strings.ToLower(strings.TrimSuffix(b.String(), "-"))
}

// enumMember pascal-cases a declared enum member name:
// ADMIN -> Admin, NORTH_WEST -> NorthWest.
func enumMember(s string) string {
	var b strings.Builder
	for _, w := range splitWords(s) {
		b.WriteString(strings.ToUpper(w[:1]) + strings.ToLower(w[1:]))
	}
	return b.String()
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
}
