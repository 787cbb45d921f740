package docket

// grammars holds one grammar per category in extraction order.
var grammars = []*Grammar{
	grGrammar,
	amGrammar,
	acGrammar,
	bmGrammar,
	ocaGrammar,
	petGrammar,
	jibGrammar,
	udkGrammar,
}

// Grammars returns the category grammars in extraction order.
func Grammars() []*Grammar {
	out := make([]*Grammar, len(grammars))
	copy(out, grammars)
	return out
}

// GrammarFor returns the grammar of category c.
func GrammarFor(c Category) (*Grammar, bool) {
	for _, g := range grammars {
		if g.category == c {
			return g, true
		}
	}
	return nil, false
}

// Extract runs every category grammar over text and concatenates the
// results in category order. When excludeRules is true, dockets that denote
// procedural rules are dropped. Overlapping matches from different grammars
// are all kept.
func (rs *RuleSet) Extract(text string, excludeRules bool) []Docket {
	var dockets []Docket
	for _, g := range grammars {
		for _, d := range g.Search(text) {
			if excludeRules && rs.IsStatutory(d) {
				continue
			}
			dockets = append(dockets, d)
		}
	}
	return dockets
}

// Extract runs Extract with the built-in rule table.
func Extract(text string, excludeRules bool) []Docket {
	return defaultRules.Extract(text, excludeRules)
}

// First returns the first non-rule docket in text, in category order.
func (rs *RuleSet) First(text string) (Docket, bool) {
	for _, g := range grammars {
		for _, d := range g.Search(text) {
			if rs.IsStatutory(d) {
				continue
			}
			return d, true
		}
	}
	return Docket{}, false
}

// First runs First with the built-in rule table.
func First(text string) (Docket, bool) {
	return defaultRules.First(text)
}
