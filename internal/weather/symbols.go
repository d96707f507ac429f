package weather

// Значения Wsymb2 из прогноза SMHI.
var symbols = map[int]string{
	1:  "Klart",
	2:  "Lätt molnighet",
	3:  "Halvklart",
	4:  "Molnigt",
	5:  "Mycket moln",
	6:  "Mulet",
	7:  "Dimma",
	8:  "Lätt regnskur",
	9:  "Regnskur",
	10: "Kraftig regnskur",
	11: "Åskväder",
	12: "Lätt snöblandat regn",
	13: "Snöblandat regn",
	14: "Kraftigt snöblandat regn",
	15: "Lätt snöfall",
	16: "Snöfall",
	17: "Kraftigt snöfall",
	18: "Lätt regn",
	19: "Regn",
	20: "Kraftigt regn",
	21: "Åska",
	22: "Lätt snöblandat regn",
	23: "Snöblandat regn",
	24: "Kraftigt snöblandat regn",
	25: "Lätt snöfall",
	26: "Snöfall",
	27: "Kraftigt snöfall",
}

// SymbolText переводит код Wsymb2 в текст; неизвестный код даёт "Okänt".
func SymbolText(code int) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return unknownSymbol
}
