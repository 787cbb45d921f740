package docket

import (
	"regexp"
	"strings"
)

var (
	// legacyPrefix matches the "L-" prefix of pre-1987 serials together with
	// its OCR variants: "L -", "L ", "I-", "I.-", "l-", optionally after a
	// stray "No." label.
	legacyPrefix = regexp.MustCompile(`^(?:[Nn][Oo][Ss]?\.?\s*)?[LIl]\.?\s*-?\s*`)

	// legacyDigits matches the numeric run after the prefix, which OCR
	// frequently renders with "I", "l" or "L" in place of "1".
	legacyDigits = regexp.MustCompile(`^[\dIlL](?:\s?[\dIlL])*`)
)

// CleanLegacyID normalizes a legacy serial to the "L-NNNNN" form:
// "No. L-I9863" becomes "L-19863", "I.-12735" becomes "L-12735" and
// "L 12271" becomes "L-12271". Serials without a legacy prefix are returned
// trimmed but otherwise untouched.
func CleanLegacyID(raw string) string {
	raw = strings.TrimSpace(raw)
	prefix := legacyPrefix.FindString(raw)
	if prefix == "" {
		return raw
	}
	rest := raw[len(prefix):]
	digits := legacyDigits.FindString(rest)
	if digits == "" || !strings.ContainsAny(digits, "0123456789") {
		return raw
	}
	if prefix == raw[:1] && !strings.ContainsAny(rest[:1], "0123456789") {
		// "LL8432" style ids without a separator are too ambiguous to repair.
		return raw
	}

	repaired := strings.Map(func(r rune) rune {
		switch r {
		case 'I', 'l', 'L':
			return '1'
		case ' ':
			return -1
		}
		return r
	}, digits)
	return "L-" + repaired + rest[len(digits):]
}

// StripLegacyPrefix returns the bare number of a legacy serial:
// "No. L-26353" becomes "26353".
func StripLegacyPrefix(raw string) string {
	return strings.TrimPrefix(CleanLegacyID(raw), "L-")
}
