package docket

// petLabel matches the Presidential Electoral Tribunal labels: "PET No.",
// "P.E.T. No.", "P.E.T No.", "P.ET No.", "PET Case No.".
const petLabel = `\b(?-i:P\.?\s*E\.?\s*T\.?)\s*(?:Case\s*)?`

var petGrammar = newGrammar(PET, petLabel+`(?:Nos?\.?)?`, numericSerial)
