package docket

// acLabel matches the Administrative Case labels: "A.C. No.", "AC No.",
// "A.C. CBD No.", "Adm. Case No.", "ADM CASE No.", "Admin. Case No.".
const acLabel = `\b(?-i:A\.?\s*C\.?)(?:\s*CBD)?|\bAdm(?:in(?:istrative)?)?\.?\s*Case`

// acSerial: "561", "L-363", "CBD-174", "P-88-198", "1701-CFI".
const acSerial = `(?:[A-Z]{1,4}\s?-\s?)?` + numericSerial

var acGrammar = newGrammar(AC, `(?:`+acLabel+`)\s*(?:Nos?\.?)?`, acSerial)
