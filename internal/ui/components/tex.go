package components

import "regexp"

var (
	texCommand   = regexp.MustCompile(`\\(?:mathbf|vec|mathrm|text)\{([^{}]*)\}`)
	texDelimiter = regexp.MustCompile(`\\[()]`)
)

// PlainText flattens the inline TeX used in problem directions so it reads
// naturally in a terminal: `\(\mathbf{\vec{B}}\)` becomes `B`.
func PlainText(s string) string {
	for {
		next := texCommand.ReplaceAllString(s, "$1")
		if next == s {
			break
		}
		s = next
	}
	return texDelimiter.ReplaceAllString(s, "")
}
