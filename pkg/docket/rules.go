package docket

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// RuleFile is the YAML shape of a statutory rule table.
type RuleFile struct {
	BarMatter            []string `yaml:"bar_matter"`
	AdministrativeMatter []string `yaml:"administrative_matter"`
}

// RuleSet is an immutable table of Bar Matter and Administrative Matter
// serials that denote procedural rules rather than decided cases.
type RuleSet struct {
	serials map[Category]map[string]struct{}
}

var defaultRules = mustLoadDefaultRules()

func mustLoadDefaultRules() *RuleSet {
	rs, err := LoadRules(bytes.NewReader(defaultRulesYAML))
	if err != nil {
		panic(fmt.Sprintf("docket: embedded rule table: %v", err))
	}
	return rs
}

// DefaultRules returns the built-in statutory rule table.
func DefaultRules() *RuleSet {
	return defaultRules
}

// LoadRules decodes a YAML rule table.
func LoadRules(r io.Reader) (*RuleSet, error) {
	var file RuleFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing rule table: %w", err)
	}
	return NewRuleSet(file), nil
}

// LoadRulesFile reads a YAML rule table from path.
func LoadRulesFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rule table: %w", err)
	}
	defer f.Close()
	return LoadRules(f)
}

// NewRuleSet builds a RuleSet from its serial lists.
func NewRuleSet(file RuleFile) *RuleSet {
	rs := &RuleSet{serials: map[Category]map[string]struct{}{
		BM: make(map[string]struct{}),
		AM: make(map[string]struct{}),
	}}
	for _, serial := range file.BarMatter {
		rs.serials[BM][ruleKey(serial)] = struct{}{}
	}
	for _, serial := range file.AdministrativeMatter {
		rs.serials[AM][ruleKey(serial)] = struct{}{}
	}
	return rs
}

// Len returns the number of serials in the table for c.
func (rs *RuleSet) Len(c Category) int {
	return len(rs.serials[c])
}

// IsStatutory reports whether d is an AM or BM docket whose first serial is
// in the table. Other categories are never statutory.
func (rs *RuleSet) IsStatutory(d Docket) bool {
	table, ok := rs.serials[d.Category]
	if !ok {
		return false
	}
	_, found := table[ruleKey(d.FirstID())]
	return found
}

// IsStatutoryRule checks d against the built-in table.
func IsStatutoryRule(d Docket) bool {
	return defaultRules.IsStatutory(d)
}

func ruleKey(serial string) string {
	return strings.ToLower(strings.TrimSpace(serial))
}
