package docket

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// LooseMatch is the result of the forgiving lookup used for hand-typed
// docket references.
type LooseMatch struct {
	Category string `json:"docket_cat" yaml:"docket_cat"`
	ID       string `json:"docket_idx" yaml:"docket_idx"`
	Date     string `json:"docket_dated" yaml:"docket_dated"`
}

var loosePattern = regexp.MustCompile(
	`^\s*(?P<cat>[A-Za-z][A-Za-z.\s]*?)\s*(?:(?i)Nos?\.?\s*)?(?P<id>[\w-]*\d[\w-]*)\s*,?\s*(?P<date>\S.*?)\s*$`,
)

// looseOrder lists the shorthands to try on the letters of a label, longest
// first so that "oca" is not read as an unknown two-letter prefix.
var looseOrder = []Category{OCA, PET, JIB, UDK, GR, AM, AC, BM}

// LooseCategory reads the category of a loosely typed label such as
// "G.  R. No. 123" or "a.c124" and returns its lower-case shorthand.
func LooseCategory(raw string) (string, error) {
	var letters strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			break
		}
		if unicode.IsLetter(r) {
			letters.WriteRune(unicode.ToLower(r))
		}
	}
	key := letters.String()
	for _, c := range looseOrder {
		short := strings.ToLower(c.Short())
		if strings.HasPrefix(key, short) {
			return short, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, raw)
}

// MatchLoose reads a hand-typed docket reference: a category label, one
// serial and a date, e.g. "gr 1241-sc Sep. 1, 1981" or
// "ac ac-2142-12, 12/4/2000".
func MatchLoose(raw string) (LooseMatch, error) {
	m := loosePattern.FindStringSubmatch(raw)
	if m == nil {
		return LooseMatch{}, fmt.Errorf("%w: %q", ErrNoMatch, raw)
	}
	group := func(name string) string {
		return m[loosePattern.SubexpIndex(name)]
	}

	cat, err := LooseCategory(group("cat"))
	if err != nil {
		return LooseMatch{}, err
	}
	date, err := ParseDate(group("date"))
	if err != nil {
		return LooseMatch{}, fmt.Errorf("loose docket %q: %w", raw, err)
	}
	return LooseMatch{
		Category: cat,
		ID:       strings.ToUpper(group("id")),
		Date:     date.String(),
	}, nil
}
