package docket

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coolbeans/phcite/pkg/markup"
	"github.com/coolbeans/phcite/pkg/report"
)

// Sub-patterns shared by every category grammar. Grammars are compiled with
// (?i), so the literals below match in any letter case.
const (
	// idSeparator joins the serials of consolidated cases:
	// "138570, 138572", "172777 and 172792", "P-13-3116 & P-13-3112",
	// "180350/G.R. No. 205186", "L-79459, and L-79520".
	idSeparator = `\s*(?:,|;|&|/|\band\b)\s*(?:and\s+)?`

	monthName = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sept?(?:ember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`

	// docketDate is the mandatory long-form decision date, month first
	// ("October 10, 2000", "Sept. 30, 1971") or day first ("11 January 2017").
	docketDate = `(?P<docket_date>(?:` + monthName + `\s*\d{1,2}\s*,?\s*|\d{1,2}\s+` + monthName + `\s*,?\s*)\d{4})\b`

	// formerlyClause is a bracketed or parenthetical note on an earlier
	// docket, e.g. "(Formerly OCA I.P.I. No. 10-3335-RTJ)", "[Formerly CBD
	// Case No. 05-1448]", "(From CTA-EB Nos. 649 & 651)".
	formerlyClause = `(?P<formerly>[(\[]\s*(?:Formerly|From|doing\s+business\s+as)\b[^)\]]*[)\]])`

	// pinciteClause is a page reference placed before the date:
	// "p. 17", "pp. 11-12".
	pinciteClause = `(?P<pp>pp?\.\s*\d+(?:\s*-\s*\d+)?)`

	// numericSerial is a plain serial with optional dashed parts:
	// "138570", "108548-49", "30720-R", "1241-SC".
	numericSerial = `\d+(?:-[\dA-Z]+)*`

	// legacySerial is a pre-1987 "L-" serial with its OCR variants:
	// "L-74910", "L 12271", "I.-12735", "L-I9863".
	legacySerial = `[LI]\.?\s*-?\s*[IL]?\s?\d+(?:-[\dA-Z]+)*`

	// codedSerial is a serial with a letter code before or after the digits:
	// "P-04-1786", "RTJ 00-1593", "O.C.A.-00-01", "08-19-SB-J", "2367-CAR".
	// A code joined by a space must be followed by a dashed number, so that
	// a date such as "May 1, 2000" is never read as a serial.
	codedSerial = `(?:(?:[A-Z]\.){2,4}|[A-Z]{1,5})\s?-\s?\d[\dA-Z]*(?:-[\dA-Z]+)*` +
		`|[A-Z]{1,5}\s\d+(?:-[\dA-Z]+)+` +
		`|\d[\dA-Z]*(?:-[\dA-Z]+)*`
)

// RawMatch is the recognition output of a grammar: the matched span and its
// named parts, before any normalization.
type RawMatch struct {
	Category Category
	Start    int
	End      int
	Text     string
	Phrase   string
	IDs      string
	Formerly string
	Pincite  string
	Date     string
	Report   *report.Report
}

// Grammar recognizes the dockets of one category.
type Grammar struct {
	category Category
	pattern  *regexp.Regexp
	splitter *regexp.Regexp

	// reject discards a match given the text before it.
	reject func(preceding string) bool
}

// newGrammar composes a grammar from the category's label alternation and
// serial syntax.
func newGrammar(category Category, label, serial string) *Grammar {
	return newPhraseGrammar(category, label, labeledIDs(label, serial, "ids"))
}

// labeledIDs is a label followed by one or more serials captured in group.
// The label may be repeated before each later serial.
func labeledIDs(label, serial, group string) string {
	label = `(?:` + label + `)`
	serial = `(?:` + serial + `)`
	ids := serial + `(?:` + idSeparator + `(?:` + label + `\s*)?` + serial + `)*`
	return label + `\s*(?P<` + group + `>` + ids + `)`
}

// newPhraseGrammar composes a grammar from a complete phrase expression. The
// phrase must capture its serials in an "ids" or "legacy_ids" group; label
// is used to split repeated labels out of the serial list.
func newPhraseGrammar(category Category, label, phrase string) *Grammar {
	expr := `(?i)` +
		`(?P<phrase>` + phrase + `)` +
		`[\s,.]*(?:` + formerlyClause + `[\s,.]*)?` +
		`(?:` + pinciteClause + `[\s,.]*)?` +
		docketDate +
		`(?:\s*,?\s*` + report.Pattern + `)?`

	return &Grammar{
		category: category,
		pattern:  regexp.MustCompile(expr),
		splitter: regexp.MustCompile(`(?i)` + idSeparator + `(?:(?:` + label + `)\s*)?`),
	}
}

// Category returns the category the grammar recognizes.
func (g *Grammar) Category() Category {
	return g.category
}

// Recognize returns every non-overlapping match in text, left to right,
// without normalizing it. Markup is removed first, so offsets refer to the
// stripped text.
func (g *Grammar) Recognize(text string) []RawMatch {
	text = markup.Strip(text)

	var matches []RawMatch
	for _, loc := range g.pattern.FindAllStringSubmatchIndex(text, -1) {
		if g.reject != nil && g.reject(text[:loc[0]]) {
			continue
		}
		matches = append(matches, g.rawMatch(text, loc))
	}
	return matches
}

func (g *Grammar) rawMatch(text string, loc []int) RawMatch {
	group := func(name string) string {
		i := g.pattern.SubexpIndex(name)
		if i < 0 || loc[2*i] < 0 {
			return ""
		}
		return text[loc[2*i]:loc[2*i+1]]
	}

	m := RawMatch{
		Category: g.category,
		Start:    loc[0],
		End:      loc[1],
		Text:     text[loc[0]:loc[1]],
		Phrase:   group("phrase"),
		IDs:      firstNonEmpty(group("ids"), group("legacy_ids")),
		Formerly: group("formerly"),
		Pincite:  group("pp"),
		Date:     group("docket_date"),
	}
	if vol := group("volume"); vol != "" {
		if r, err := report.New(vol, group("publisher"), group("page")); err == nil {
			m.Report = &r
		}
	}
	return m
}

// Normalize turns a raw match into a Docket. It fails when the date does
// not exist on the calendar or no serial survives cleanup.
func (g *Grammar) Normalize(m RawMatch) (Docket, error) {
	date, err := ParseDate(m.Date)
	if err != nil {
		return Docket{}, fmt.Errorf("%s docket %q: %w", g.category, m.Phrase, err)
	}

	var ids []string
	for _, part := range g.splitter.Split(m.IDs, -1) {
		if id := normalizeID(part); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return Docket{}, fmt.Errorf("%s docket %q: %w", g.category, m.Phrase, ErrNoMatch)
	}

	return Docket{
		Category: g.category,
		IDs:      ids,
		Date:     date,
		Context:  strings.Trim(strings.TrimSpace(m.Phrase), ",;. "),
		Report:   m.Report,
	}, nil
}

// Search returns every docket of the grammar's category in text, left to
// right. Matches that cannot be normalized are skipped.
func (g *Grammar) Search(text string) []Docket {
	var dockets []Docket
	for _, m := range g.Recognize(text) {
		d, err := g.Normalize(m)
		if err != nil {
			continue
		}
		dockets = append(dockets, d)
	}
	return dockets
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var dashSpacing = regexp.MustCompile(`\s*-\s*`)

func normalizeID(raw string) string {
	id := strings.Trim(strings.TrimSpace(raw), ",;.& ")
	if id == "" {
		return ""
	}
	id = CleanLegacyID(id)
	id = dashSpacing.ReplaceAllString(id, "-")
	id = strings.Join(strings.Fields(id), " ")
	return strings.ToUpper(id)
}
