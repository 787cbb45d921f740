package citation

import (
	"github.com/coolbeans/phcite/pkg/docket"
	"github.com/coolbeans/phcite/pkg/report"
)

// Document is a text whose dockets and reports are classified on demand.
// Every view is recomputed from the stored text.
type Document struct {
	text  string
	rules *docket.RuleSet
}

// NewDocument wraps text using the built-in statutory rule table.
func NewDocument(text string) *Document {
	return &Document{text: text, rules: docket.DefaultRules()}
}

// Text returns the wrapped text.
func (d *Document) Text() string {
	return d.text
}

// Citeables returns every docket-shaped match, procedural rules included so
// that they can be told apart from cases.
func (d *Document) Citeables() []docket.Docket {
	return d.rules.Extract(d.text, false)
}

// StatuteLike returns the citeables that denote procedural rules.
func (d *Document) StatuteLike() []docket.Docket {
	var out []docket.Docket
	for _, dk := range d.Citeables() {
		if d.rules.IsStatutory(dk) {
			out = append(out, dk)
		}
	}
	return out
}

// CaseLike returns the citeables that are not statute-like. A docket whose
// rendering equals that of a statute-like docket is dropped as well.
func (d *Document) CaseLike() []docket.Docket {
	citeables := d.Citeables()

	statutes := make(map[string]bool)
	for _, dk := range citeables {
		if d.rules.IsStatutory(dk) {
			statutes[dk.String()] = true
		}
	}

	var out []docket.Docket
	for _, dk := range citeables {
		if d.rules.IsStatutory(dk) || statutes[dk.String()] {
			continue
		}
		out = append(out, dk)
	}
	return out
}

// Reports returns every report in the text, duplicates included.
func (d *Document) Reports() []report.Report {
	return report.Extract(d.text)
}

// UniqueReports returns the distinct volpubpages, in order of first
// appearance.
func (d *Document) UniqueReports() []string {
	return report.Unique(d.text)
}

// UndocketedReports returns the unique volpubpages that are not attached to
// any case-like docket.
func (d *Document) UndocketedReports() []string {
	return undocketed(d.UniqueReports(), d.CaseLike())
}

func undocketed(unique []string, cases []docket.Docket) []string {
	attached := make(map[string]bool)
	for _, dk := range cases {
		if vpp := dk.VolPubPage(); vpp != "" {
			attached[vpp] = true
		}
	}

	var out []string
	for _, vpp := range unique {
		if !attached[vpp] {
			out = append(out, vpp)
		}
	}
	return out
}

// Citations returns the citation strings of the text: the rendered
// case-like dockets followed by the undocketed reports, or, when the text
// has no case-like docket, every report in text order.
func (d *Document) Citations() []string {
	cases := d.CaseLike()
	if len(cases) == 0 {
		var out []string
		for _, r := range d.Reports() {
			out = append(out, r.VolPubPage())
		}
		return out
	}

	out := make([]string, 0, len(cases))
	for _, dk := range cases {
		out = append(out, dk.String())
	}
	return append(out, undocketed(d.UniqueReports(), cases)...)
}
