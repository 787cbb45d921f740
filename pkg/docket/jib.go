package docket

// jibLabel matches the Judicial Integrity Board labels: "JIB No.",
// "J.I.B. No.", "JIB FPI No.".
const jibLabel = `\b(?-i:J\.?\s*I\.?\s*B\.?)\s*(?:FPI\s*)?`

// jibSerial: "2022-01-01", "21-001-MTJ".
const jibSerial = `\d[\dA-Z]*(?:-[\dA-Z]+)*`

var jibGrammar = newGrammar(JIB, jibLabel+`(?:Nos?\.?)?`, jibSerial)
