package docket

import "regexp"

// grLabel matches the General Register labels: "G.R. No.", "G.R. Nos.",
// "G. R. No.", "GR No.", "GR", "G.R. L-No.", and the label-less "L-No." and
// ", No." of older decisions. The acronym is case-sensitive so that prose
// such as "gr" is never read as a label.
const grLabel = `\b(?-i:G\.?\s*R\.?)\s*(?:L-\s*)?(?:Nos?\.?)?` +
	`|(?-i:\bL)-\s*Nos?\.` +
	`|,\s*Nos?\.`

// grSerial accepts legacy "L-" serials before plain numeric ones.
const grSerial = legacySerial + `|` + numericSerial

// grLegacySerial is a pre-1987 serial cited without a G.R. label, as in
// "Lopez v. Orosa, No. L-10817". It must start with an uppercase "L" or its
// OCR variant "I-" so that a bare number is never a docket.
const grLegacySerial = `(?-i:\b(?:L\.?\s*-?|I\.?\s*-)\s*[IL]?\d+(?:-[\dA-Z]+)*)`

// grLegacyPhrase is an optional "No." followed by label-less legacy serials.
const grLegacyPhrase = `(?:\bNos?\.\s*)?` +
	`(?P<legacy_ids>` + grLegacySerial +
	`(?:` + idSeparator + `(?:(?:` + grLabel + `)\s*)?(?:` + grSerial + `))*)`

var grGrammar = func() *Grammar {
	g := newPhraseGrammar(GR, grLabel, labeledIDs(grLabel, grSerial, "ids")+`|`+grLegacyPhrase)
	g.reject = func(preceding string) bool {
		return precededByCourtOfAppeals(preceding) || precededByOtherLabel(preceding)
	}
	return g
}()

// labelWindow bounds how far back a competing label is looked for.
const labelWindow = 30

// precededByCourtOfAppeals reports whether a "G.R." label is really part of a
// Court of Appeals docket such as "CA-G.R. No. 33045-R".
func precededByCourtOfAppeals(preceding string) bool {
	return caMarker.MatchString(tail(preceding, labelWindow))
}

// precededByOtherLabel reports whether a label-less serial belongs to the
// label of another category, as in "A.C. No. L-363".
func precededByOtherLabel(preceding string) bool {
	return otherLabel.MatchString(tail(preceding, labelWindow))
}

func tail(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}

// caMarker matches the Court of Appeals prefix: "CA-", "C.A. ", "CA ".
var caMarker = regexp.MustCompile(`(?i)(?:^|[^A-Za-z])C\.?\s?A\.?\s*-?\s*$`)

// otherLabel matches a non-GR label at the end of the preceding text.
var otherLabel = regexp.MustCompile(`(?i)(?:` +
	amLabel + `|` + acLabel + `|` + bmLabel + `|` + ocaLabel + `|` + petLabel + `|` + jibLabel + `|\bUDK` +
	`)\s*$`)
