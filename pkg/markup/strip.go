// Package markup removes inline markup from decision text before citation
// grammars run over it.
package markup

import (
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// tagPattern matches opening, closing and self-closing tags such as
	// "<em>", "</i>", "<span class=\"x\">" or "<br/>".
	tagPattern = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9]*(?:\s[^<>]*)?/?>`)

	// spacePattern matches runs of horizontal whitespace and non-breaking
	// spaces left behind by OCR and HTML conversion.
	spacePattern = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// Strip removes inline tags, decodes HTML entities and collapses runs of
// spaces so that "<i>Zamora,</i>&nbsp;G.R. No." reads "Zamora, G.R. No.".
// A tag between two letters or digits leaves a space, so that a footnote
// marker in "41 SCRA 190<sup>12</sup>" does not join the page number.
// Text without markup is returned with only its spacing collapsed.
func Strip(text string) string {
	if strings.ContainsRune(text, '<') {
		text = removeTags(text)
	}
	if strings.ContainsRune(text, '&') {
		text = html.UnescapeString(text)
	}
	return spacePattern.ReplaceAllString(text, " ")
}

func removeTags(text string) string {
	locs := tagPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for i, loc := range locs {
		b.WriteString(text[prev:loc[0]])
		prev = loc[1]

		// Only the last tag of an adjacent run decides on the separator.
		if i+1 < len(locs) && locs[i+1][0] == loc[1] {
			continue
		}
		if endsWord(b.String()) && startsWord(text[prev:]) {
			b.WriteByte(' ')
		}
	}
	b.WriteString(text[prev:])
	return b.String()
}

func endsWord(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && isWordRune(r)
}

func startsWord(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
