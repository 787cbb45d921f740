package docket

// udkLabel matches undocketed case labels: "UDK No.", "UDK-", "UDK".
const udkLabel = `\bUDK\s*(?:Nos?\.?)?\s*-?`

var udkGrammar = newGrammar(UDK, udkLabel, numericSerial)
