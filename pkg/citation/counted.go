package citation

import (
	"fmt"
	"strings"
)

// CountedCitation is a deduplicated Citation with the number of times it is
// mentioned in one text.
type CountedCitation struct {
	Citation `yaml:",inline"`
	Mentions int `json:"mentions" yaml:"mentions"`
}

// String renders the citation followed by its mention count, e.g.
// "GR No. 147033, Apr. 30, 2003: 2".
func (c CountedCitation) String() string {
	return fmt.Sprintf("%s: %d", c.Citation.String(), c.Mentions)
}

// identityKeys returns the keys under which c can be found equal to another
// citation, in lookup order.
func identityKeys(c Citation) []string {
	var keys []string
	if c.Docket != "" {
		keys = append(keys, "docket:"+c.Docket)
	}
	if c.Phil != "" {
		keys = append(keys, "phil:"+c.Phil)
	}
	if c.SCRA != "" {
		keys = append(keys, "scra:"+c.SCRA)
	}
	if c.OffG != "" {
		keys = append(keys, "offg:"+c.OffG)
	}
	if c.hasTriple() {
		keys = append(keys, "triple:"+strings.Join([]string{
			string(c.DocketCategory), c.DocketSerial, c.DocketDate.String(),
		}, "|"))
	}
	return keys
}

// entry is one group of the fold. embedded counts, per volpubpage, the
// occurrences whose report came attached to the docket itself.
type entry struct {
	cite     CountedCitation
	embedded map[string]int
}

// fold groups equal citations. When a citation is equal to several groups
// the earliest one absorbs it.
type fold struct {
	entries []*entry
	index   map[string][]int
}

func newFold() *fold {
	return &fold{index: make(map[string][]int)}
}

func (f *fold) add(c Citation, embedded string) {
	pos := -1
	for _, key := range identityKeys(c) {
		for _, i := range f.index[key] {
			if pos < 0 || i < pos {
				pos = i
			}
		}
	}

	var e *entry
	if pos < 0 {
		pos = len(f.entries)
		e = &entry{cite: CountedCitation{Citation: c, Mentions: 1}, embedded: make(map[string]int)}
		f.entries = append(f.entries, e)
	} else {
		e = f.entries[pos]
		e.cite.backfill(c)
		e.cite.Mentions++
	}
	if embedded != "" {
		e.embedded[embedded]++
	}

	for _, key := range identityKeys(e.cite.Citation) {
		if !containsInt(f.index[key], pos) {
			f.index[key] = append(f.index[key], pos)
		}
	}
}

func (f *fold) counted() []CountedCitation {
	out := make([]CountedCitation, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.cite)
	}
	return out
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func (e *Extractor) docketFold(text string) *fold {
	f := newFold()
	for _, d := range e.Document(text).CaseLike() {
		f.add(FromDocket(d), d.VolPubPage())
	}
	return f
}

func (e *Extractor) reportFold(text string) *fold {
	f := newFold()
	for _, r := range e.Document(text).Reports() {
		f.add(FromReport(r), "")
	}
	return f
}

// CountedDocketReports folds the case-like dockets of text, each counted
// once per occurrence, with absent fields back-filled from later duplicates.
func (e *Extractor) CountedDocketReports(text string) []CountedCitation {
	return e.docketFold(text).counted()
}

// CountedReports folds every report occurrence of text, including the
// reports attached to dockets.
func (e *Extractor) CountedReports(text string) []CountedCitation {
	return e.reportFold(text).counted()
}

// FromSource returns the deduplicated citations of text with their mention
// counts. A report equal to a docket citation is counted on the docket, less
// the occurrences already counted through the docket's own attached report.
func (e *Extractor) FromSource(text string) []CountedCitation {
	dockets := e.docketFold(text)
	reports := e.reportFold(text)

	for _, r := range reports.entries {
		for _, d := range dockets.entries {
			if !r.cite.Equal(d.cite.Citation) {
				continue
			}
			extra := r.cite.Mentions - d.embeddedCount(r.cite.Citation)
			if extra > 0 {
				d.cite.Mentions += extra
			}
			r.cite.Mentions = 0
			break
		}
	}

	out := dockets.counted()
	for _, r := range reports.entries {
		if r.cite.Mentions > 0 {
			out = append(out, r.cite)
		}
	}
	return out
}

func (e *entry) embeddedCount(c Citation) int {
	n := 0
	for _, vpp := range []string{c.Phil, c.SCRA, c.OffG} {
		if vpp != "" {
			n += e.embedded[vpp]
		}
	}
	return n
}

// FromSource counts the citations of text using the built-in rule table.
func FromSource(text string) []CountedCitation {
	return defaultExtractor.FromSource(text)
}

// CountedDocketReports folds the docket citations of text using the
// built-in rule table.
func CountedDocketReports(text string) []CountedCitation {
	return defaultExtractor.CountedDocketReports(text)
}

// CountedReports folds the report citations of text.
func CountedReports(text string) []CountedCitation {
	return defaultExtractor.CountedReports(text)
}
