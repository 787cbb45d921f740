package docket

import (
	"regexp"
	"strings"

	"github.com/coolbeans/phcite/pkg/types"
)

// metaPattern reads the sub-title line of a decision page:
// "G.R. No. 234179. December 5, 2022 [Date Uploaded: 01/26/2023]". The
// upload note is absent on some opinions and sometimes misspelled
// "Uploaaded".
var metaPattern = regexp.MustCompile(
	`(?P<docket>.*?)\.\s+(?P<decision_date>[A-Z]\w+\s\d+,\s\d{4})(?:\s+\[Date\s+Uploaa?ded:\s+(?P<upload_date>.*?)\])?`,
)

// Meta is the docket information of a decision's sub-title line.
type Meta struct {
	// Docket is the raw docket text before the decision date.
	Docket       string     `json:"docket" yaml:"docket"`
	DecisionDate types.Date `json:"decision_date" yaml:"decision_date"`
	UploadDate   string     `json:"upload_date,omitempty" yaml:"upload_date,omitempty"`
	Context      string     `json:"context" yaml:"context"`
	Category     Category   `json:"category" yaml:"category"`
	ID           string     `json:"ids" yaml:"ids"`
}

// ExtractMeta parses a sub-title line. The second result is false when the
// line has no docket, no decision date, or a docket that no grammar accepts.
func ExtractMeta(text string) (Meta, bool) {
	m := metaPattern.FindStringSubmatch(text)
	if m == nil {
		return Meta{}, false
	}
	group := func(name string) string {
		return m[metaPattern.SubexpIndex(name)]
	}

	raw := strings.TrimSpace(group("docket"))
	if raw == "" {
		return Meta{}, false
	}
	date, err := ParseDate(group("decision_date"))
	if err != nil {
		return Meta{}, false
	}

	d, ok := First(raw + ", " + date.ToTime().Format("January 02, 2006"))
	if !ok {
		return Meta{}, false
	}

	return Meta{
		Docket:       raw,
		DecisionDate: date,
		UploadDate:   strings.TrimSpace(group("upload_date")),
		Context:      d.Context,
		Category:     d.Category,
		ID:           d.FirstID(),
	}, true
}
