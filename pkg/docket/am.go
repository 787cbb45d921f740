package docket

// amLabel matches the Administrative Matter labels: "A.M. No.", "A. M No.",
// "AM No.", "Adm. Matter No.", "ADM MAT. NO.", "Administrative Matter No.".
// Only the spelled-out forms ignore letter case.
const amLabel = `\b(?-i:A\.?\s*M\.?)|\bAdm(?:in(?:istrative)?)?\.?\s*Mat(?:ter|\.)?`

var amGrammar = newGrammar(AM, `(?:`+amLabel+`)\s*(?:Nos?\.?)?`, codedSerial)
