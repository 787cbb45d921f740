package docket

// bmLabel matches the Bar Matter labels: "B.M. No.", "BM No.", "Bar Matter No.".
const bmLabel = `\b(?-i:B\.?\s*M\.?)|\bBar\s+Matter`

var bmGrammar = newGrammar(BM, `(?:`+bmLabel+`)\s*(?:Nos?\.?)?`, numericSerial)
