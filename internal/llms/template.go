package llms

import "regexp"

// placeholderPattern matches {name} where name is any run of non-`}`
// characters.
var placeholderPattern = regexp.MustCompile(`\{([^}]*)\}`)

// ExpandTemplate substitutes named placeholders with supplied values in a
// single linear scan. Missing keys expand to the empty string, substituted
// values are not re-scanned, and there is no escape for literal braces.
func ExpandTemplate(template string, variables map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		return variables[name]
	})
}
