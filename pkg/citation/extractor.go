package citation

import (
	"github.com/coolbeans/phcite/pkg/docket"
	"github.com/coolbeans/phcite/pkg/logging"
	"github.com/coolbeans/phcite/pkg/report"
)

// Extractor normalizes the citations of a text against a statutory rule
// table. The zero value is not usable; call NewExtractor.
type Extractor struct {
	rules *docket.RuleSet
	log   logging.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger that receives dropped-candidate diagnostics.
func WithLogger(log logging.Logger) Option {
	return func(e *Extractor) {
		e.log = log
	}
}

// WithRules replaces the built-in statutory rule table.
func WithRules(rules *docket.RuleSet) Option {
	return func(e *Extractor) {
		if rules != nil {
			e.rules = rules
		}
	}
}

// NewExtractor returns an Extractor using the built-in rule table and the
// process-wide logger unless overridden.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{rules: docket.DefaultRules()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = NewExtractor()

func (e *Extractor) logger() logging.Logger {
	if e.log != nil {
		return e.log
	}
	return logging.Default().Named("citation")
}

// Document wraps text with the extractor's rule table.
func (e *Extractor) Document(text string) *Document {
	return &Document{text: text, rules: e.rules}
}

// Normalize turns one citation string into a Citation. A docket is tried
// first, then a bare report.
func (e *Extractor) Normalize(raw string) (Citation, bool) {
	if d, ok := e.rules.First(raw); ok {
		return FromDocket(d), true
	}
	e.logger().Debug("not a docket", logging.String("candidate", raw))

	if r, ok := report.First(raw); ok {
		return FromReport(r), true
	}
	return Citation{}, false
}

// Citations returns one Citation per citation string of text, in
// extraction order, without deduplication. Strings that normalize to
// nothing are skipped.
func (e *Extractor) Citations(text string) []Citation {
	var out []Citation
	for _, raw := range e.Document(text).Citations() {
		c, ok := e.Normalize(raw)
		if !ok {
			e.logger().Warn("skipping invalid citation", logging.String("candidate", raw))
			continue
		}
		out = append(out, c)
	}
	return out
}

// Citation returns the first citation of text.
func (e *Extractor) Citation(text string) (Citation, bool) {
	cites := e.Citations(text)
	if len(cites) == 0 {
		return Citation{}, false
	}
	return cites[0], true
}

// ExtractCitations returns the citations of text using the built-in rule
// table.
func ExtractCitations(text string) []Citation {
	return defaultExtractor.Citations(text)
}

// ExtractCitation returns the first citation of text.
func ExtractCitation(text string) (Citation, bool) {
	return defaultExtractor.Citation(text)
}
