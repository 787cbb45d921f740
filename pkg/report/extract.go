package report

import (
	"regexp"

	"github.com/coolbeans/phcite/pkg/markup"
)

// Pattern is the report grammar with the named groups "volume", "publisher"
// and "page". Docket grammars embed it to capture a report that trails a
// docket; the acronym alternatives stay case-sensitive even when the
// enclosing grammar is compiled with (?i).
const Pattern = `(?P<volume>\b\d{1,4})\s+` +
	`(?P<publisher>(?-i:Phil(?:ippine)?\.?(?:\s+Rep(?:orts)?\.?)?|PHIL\.?|SCRA|S\.\s?C\.\s?R\.\s?A\.?|O\.\s?G\.?|OG|Off\.\s?Gaz\.?))` +
	`\s*(?P<page>\d{1,5})\b`

var reportPattern = regexp.MustCompile(Pattern)

var (
	volumeGroup    = reportPattern.SubexpIndex("volume")
	publisherGroup = reportPattern.SubexpIndex("publisher")
	pageGroup      = reportPattern.SubexpIndex("page")
)

// Extract returns every report found in text, left to right, duplicates
// included. Inline markup is ignored.
func Extract(text string) []Report {
	text = markup.Strip(text)

	var reports []Report
	for _, match := range reportPattern.FindAllStringSubmatch(text, -1) {
		r, err := New(match[volumeGroup], match[publisherGroup], match[pageGroup])
		if err != nil {
			continue
		}
		reports = append(reports, r)
	}
	return reports
}

// First returns the first report in text.
func First(text string) (Report, bool) {
	reports := Extract(text)
	if len(reports) == 0 {
		return Report{}, false
	}
	return reports[0], true
}

// Unique returns the distinct volpubpage strings found in text, in order of
// first appearance.
func Unique(text string) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, r := range Extract(text) {
		key := r.VolPubPage()
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}
