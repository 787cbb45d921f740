// Package citation turns free-form decision text into normalized citations:
// dockets with their reports, and reports that stand alone.
package citation

import (
	"strings"

	"github.com/coolbeans/phcite/pkg/docket"
	"github.com/coolbeans/phcite/pkg/report"
	"github.com/coolbeans/phcite/pkg/types"
)

// InvalidMarker is the rendering of a Citation with no fields.
const InvalidMarker = "Bad citation."

// Citation is the unified record of one cited decision. Empty strings and a
// nil DocketDate mean the part is absent.
type Citation struct {
	DocketCategory docket.Category `json:"docket_category,omitempty" yaml:"docket_category,omitempty"`
	DocketSerial   string          `json:"docket_serial,omitempty" yaml:"docket_serial,omitempty"`
	DocketDate     *types.Date     `json:"docket_date,omitempty" yaml:"docket_date,omitempty"`

	// Docket is the rendered docket without its report, e.g.
	// "GR No. 138570, Oct. 10, 2000".
	Docket string `json:"docket,omitempty" yaml:"docket,omitempty"`

	Phil string `json:"phil,omitempty" yaml:"phil,omitempty"`
	SCRA string `json:"scra,omitempty" yaml:"scra,omitempty"`
	OffG string `json:"offg,omitempty" yaml:"offg,omitempty"`
}

// FromDocket builds a Citation from a docket and its attached report.
func FromDocket(d docket.Docket) Citation {
	date := d.Date
	c := Citation{
		DocketCategory: d.Category,
		DocketSerial:   d.FirstID(),
		DocketDate:     &date,
		Docket:         d.DocketString(),
	}
	if d.Report != nil {
		c.Phil, c.SCRA, c.OffG = d.Report.Phil(), d.Report.SCRA(), d.Report.OffG()
	}
	return c
}

// FromReport builds a report-only Citation.
func FromReport(r report.Report) Citation {
	return Citation{Phil: r.Phil(), SCRA: r.SCRA(), OffG: r.OffG()}
}

// IsZero reports whether every field is absent.
func (c Citation) IsZero() bool {
	return len(c.elements()) == 0 && c.DocketCategory == "" && c.DocketSerial == "" && c.DocketDate == nil
}

func (c Citation) elements() []string {
	var bits []string
	for _, s := range []string{c.Docket, c.Phil, c.SCRA, c.OffG} {
		if s != "" {
			bits = append(bits, s)
		}
	}
	return bits
}

// String joins the docket and report series that are present with ", ", or
// returns InvalidMarker when none is.
func (c Citation) String() string {
	bits := c.elements()
	if len(bits) == 0 {
		return InvalidMarker
	}
	return strings.Join(bits, ", ")
}

// Equal reports whether c and other cite the same decision. Any one shared
// identity suffices: the docket string, a report series, or the category,
// serial and date together.
func (c Citation) Equal(other Citation) bool {
	switch {
	case sameValue(c.Docket, other.Docket):
		return true
	case sameValue(c.SCRA, other.SCRA):
		return true
	case sameValue(c.OffG, other.OffG):
		return true
	case sameValue(c.Phil, other.Phil):
		return true
	}
	return c.hasTriple() && other.hasTriple() &&
		c.DocketCategory == other.DocketCategory &&
		c.DocketSerial == other.DocketSerial &&
		c.DocketDate.Equal(*other.DocketDate)
}

func (c Citation) hasTriple() bool {
	return c.DocketCategory != "" && c.DocketSerial != "" && c.DocketDate != nil
}

func sameValue(a, b string) bool {
	return a != "" && a == b
}

// Fields dumps the present fields keyed by their JSON names. The date is
// rendered in ISO form.
func (c Citation) Fields() map[string]string {
	out := make(map[string]string)
	put := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	put("docket_category", string(c.DocketCategory))
	put("docket_serial", c.DocketSerial)
	if c.DocketDate != nil {
		put("docket_date", c.DocketDate.String())
	}
	put("docket", c.Docket)
	put("phil", c.Phil)
	put("scra", c.SCRA)
	put("offg", c.OffG)
	return out
}

// backfill copies into c the fields that are absent in c and present in
// other. Present fields are never overwritten.
func (c *Citation) backfill(other Citation) {
	if c.DocketCategory == "" {
		c.DocketCategory = other.DocketCategory
	}
	if c.DocketSerial == "" {
		c.DocketSerial = other.DocketSerial
	}
	if c.DocketDate == nil && other.DocketDate != nil {
		d := *other.DocketDate
		c.DocketDate = &d
	}
	if c.Docket == "" {
		c.Docket = other.Docket
	}
	if c.Phil == "" {
		c.Phil = other.Phil
	}
	if c.SCRA == "" {
		c.SCRA = other.SCRA
	}
	if c.OffG == "" {
		c.OffG = other.OffG
	}
}
