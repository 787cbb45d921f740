package docket

import (
	"fmt"

	"github.com/coolbeans/phcite/pkg/report"
	"github.com/coolbeans/phcite/pkg/types"
)

// Docket is one recognized docket reference.
type Docket struct {
	// Category of the case, e.g. GR.
	Category Category `json:"category" yaml:"category"`

	// IDs lists every serial of the reference in order of appearance;
	// consolidated cases cite several. Never empty.
	IDs []string `json:"ids" yaml:"ids"`

	// Date is the decision date.
	Date types.Date `json:"docket_date" yaml:"docket_date"`

	// Context is the raw phrase that produced the match, e.g.
	// "G.R. Nos. 138570, 138572".
	Context string `json:"context" yaml:"context"`

	// Report is set when a report immediately follows the docket date.
	Report *report.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

// FirstID returns the first serial.
func (d Docket) FirstID() string {
	if len(d.IDs) == 0 {
		return ""
	}
	return d.IDs[0]
}

// DocketString renders the docket without its report, e.g.
// "GR No. 138570, Oct. 10, 2000".
func (d Docket) DocketString() string {
	return fmt.Sprintf("%s No. %s, %s", d.Category, d.FirstID(), d.Date.Short())
}

// String renders the docket followed by its report, if any, e.g.
// "GR No. 138570, Oct. 10, 2000, 342 SCRA 449".
func (d Docket) String() string {
	if d.Report == nil {
		return d.DocketString()
	}
	return d.DocketString() + ", " + d.Report.VolPubPage()
}

// VolPubPage returns the attached report's volpubpage, or "".
func (d Docket) VolPubPage() string {
	if d.Report == nil {
		return ""
	}
	return d.Report.VolPubPage()
}
