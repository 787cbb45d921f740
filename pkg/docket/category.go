// Package docket recognizes Philippine Supreme Court docket references
// ("G.R. No. 138570, October 10, 2000", "A.M. No. P-96-1173, July 28, 1997")
// inside free-form text and normalizes them into Docket values.
package docket

import (
	"fmt"
	"strings"
)

// Category is the docket category of a case.
type Category string

const (
	GR  Category = "GR"
	AM  Category = "AM"
	AC  Category = "AC"
	BM  Category = "BM"
	OCA Category = "OCA"
	PET Category = "PET"
	JIB Category = "JIB"
	UDK Category = "UDK"
)

var categoryLabels = map[Category]string{
	GR:  "General Register",
	AM:  "Administrative Matter",
	AC:  "Administrative Case",
	BM:  "Bar Matter",
	OCA: "Office of the Court Administrator",
	PET: "Presidential Electoral Tribunal",
	JIB: "Judicial Integrity Board",
	UDK: "Undocketed",
}

// Categories returns every category in extraction order.
func Categories() []Category {
	return []Category{GR, AM, AC, BM, OCA, PET, JIB, UDK}
}

// Short returns the canonical shorthand, e.g. "GR".
func (c Category) Short() string {
	return string(c)
}

// Label returns the human-readable name, e.g. "General Register".
func (c Category) Label() string {
	return categoryLabels[c]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory resolves a shorthand in any letter case ("gr", "Oca").
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
	}
	return c, nil
}
