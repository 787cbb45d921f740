// Package report recognizes bare reporter citations such as "342 SCRA 449",
// "374 Phil. 1" or "45 O.G. 3456": a volume, the acronym of the reporter
// series, and the page where the decision begins.
package report

import (
	"fmt"
	"regexp"
	"strings"
)

// Publisher identifies a reporter series.
type Publisher string

const (
	// PublisherPhil is the Philippine Reports.
	PublisherPhil Publisher = "Phil."

	// PublisherSCRA is the Supreme Court Reports Annotated.
	PublisherSCRA Publisher = "SCRA"

	// PublisherOG is the Official Gazette.
	PublisherOG Publisher = "O.G."
)

// Report is one reporter citation.
type Report struct {
	Volume    string    `json:"volume" yaml:"volume"`
	Publisher Publisher `json:"publisher" yaml:"publisher"`
	Page      string    `json:"page" yaml:"page"`
}

// VolPubPage is the canonical "volume publisher page" form, used as the
// identity of a report.
func (r Report) VolPubPage() string {
	return fmt.Sprintf("%s %s %s", r.Volume, r.Publisher, r.Page)
}

func (r Report) String() string {
	return r.VolPubPage()
}

// Phil returns the volpubpage when r is a Philippine Reports citation.
func (r Report) Phil() string {
	return r.series(PublisherPhil)
}

// SCRA returns the volpubpage when r is a SCRA citation.
func (r Report) SCRA() string {
	return r.series(PublisherSCRA)
}

// OffG returns the volpubpage when r is an Official Gazette citation.
func (r Report) OffG() string {
	return r.series(PublisherOG)
}

func (r Report) series(p Publisher) string {
	if r.Publisher != p {
		return ""
	}
	return r.VolPubPage()
}

var (
	philAcronym = regexp.MustCompile(`^(?i:phil)`)
	scraAcronym = regexp.MustCompile(`^(?i:s\.?\s?c\.?\s?r\.?\s?a)`)
	ogAcronym   = regexp.MustCompile(`^(?i:o\.?\s?g|off)`)
)

// ParsePublisher maps the acronym variants found in decisions
// ("Phil.", "PHIL", "S.C.R.A.", "O.G.", "Off. Gaz.") to a Publisher.
func ParsePublisher(raw string) (Publisher, bool) {
	raw = strings.TrimSpace(raw)
	switch {
	case philAcronym.MatchString(raw):
		return PublisherPhil, true
	case scraAcronym.MatchString(raw):
		return PublisherSCRA, true
	case ogAcronym.MatchString(raw):
		return PublisherOG, true
	default:
		return "", false
	}
}

// New builds a Report from the raw volume, publisher and page groups of a
// match. Leading zeros and surrounding spaces are dropped.
func New(volume, publisher, page string) (Report, error) {
	pub, ok := ParsePublisher(publisher)
	if !ok {
		return Report{}, fmt.Errorf("unknown reporter %q", publisher)
	}
	volume = trimNumber(volume)
	page = trimNumber(page)
	if volume == "" || page == "" {
		return Report{}, fmt.Errorf("report %q %q %q lacks volume or page", volume, publisher, page)
	}
	return Report{Volume: volume, Publisher: pub, Page: page}, nil
}

func trimNumber(s string) string {
	s = strings.TrimSpace(s)
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" && s != "" {
		return "0"
	}
	return trimmed
}
