package docket

// ocaLabel matches the Office of the Court Administrator IPI labels:
// "OCA IPI No.", "A.M. OCA I.P.I. No.", "OCA I.P.I. NO.", "OCA No.".
const ocaLabel = `\b(?:(?-i:A\.?\s*M\.?)\s*)?(?-i:O\.?\s*C\.?\s*A\.?)\s*(?:I\.?\s*P\.?\s*I\.?\s*)?`

// ocaSerial: "10-25-SB-J", "04-1606-MTJ", "06-11-392-METC".
const ocaSerial = `\d[\dA-Z]*(?:-[\dA-Z]+)*`

var ocaGrammar = newGrammar(OCA, ocaLabel+`(?:Nos?\.?)?`, ocaSerial)
