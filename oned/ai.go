package oned

// aiFormat describes the value of a GS1 application identifier.
type aiFormat struct {
	min, max int
	numeric  bool
	// gtinCheck marks values ending in a GS1 check digit.
	gtinCheck bool
}

// fixedAIPrefixes maps the first two digits of an AI to the total length
// of AI plus value for the predefined-length identifiers. These never need
// a trailing FNC1 separator.
var fixedAIPrefixes = map[string]int{
	"00": 20, "01": 16, "02": 16, "03": 16, "04": 18,
	"11": 8, "12": 8, "13": 8, "14": 8, "15": 8, "16": 8, "17": 8, "18": 8, "19": 8,
	"20": 4,
	"31": 10, "32": 10, "33": 10, "34": 10, "35": 10, "36": 10,
	"41": 16,
}

var applicationIdentifiers = map[string]aiFormat{
	"00":   {18, 18, true, true},
	"01":   {14, 14, true, true},
	"02":   {14, 14, true, true},
	"10":   {1, 20, false, false},
	"11":   {6, 6, true, false},
	"12":   {6, 6, true, false},
	"13":   {6, 6, true, false},
	"15":   {6, 6, true, false},
	"16":   {6, 6, true, false},
	"17":   {6, 6, true, false},
	"20":   {2, 2, true, false},
	"21":   {1, 20, false, false},
	"22":   {1, 20, false, false},
	"240":  {1, 30, false, false},
	"241":  {1, 30, false, false},
	"250":  {1, 30, false, false},
	"251":  {1, 30, false, false},
	"30":   {1, 8, true, false},
	"37":   {1, 8, true, false},
	"400":  {1, 30, false, false},
	"401":  {1, 30, false, false},
	"402":  {17, 17, true, true},
	"403":  {1, 30, false, false},
	"410":  {13, 13, true, true},
	"411":  {13, 13, true, true},
	"412":  {13, 13, true, true},
	"413":  {13, 13, true, true},
	"414":  {13, 13, true, true},
	"420":  {1, 20, false, false},
	"421":  {4, 12, false, false},
	"422":  {3, 3, true, false},
	"7003": {10, 10, true, false},
	"8004": {1, 30, false, false},
	"8020": {1, 25, false, false},
	"90":   {1, 30, false, false},
}

// lookupAI returns the value format of ai. Measure AIs 31nn-36nn carry a
// six-digit value.
func lookupAI(ai string) (aiFormat, bool) {
	if def, ok := applicationIdentifiers[ai]; ok {
		return def, true
	}
	if len(ai) == 4 && ai[0] == '3' && ai[1] >= '1' && ai[1] <= '6' && isDigit(rune(ai[2])) && isDigit(rune(ai[3])) {
		return aiFormat{min: 6, max: 6, numeric: true}, true
	}
	if len(ai) == 2 && ai[0] == '9' && ai[1] >= '1' {
		return aiFormat{min: 1, max: 90}, true
	}
	return aiFormat{}, false
}

// fixedAILength returns the total length of ai and its value when ai
// belongs to the predefined-length set.
func fixedAILength(ai string) (int, bool) {
	if len(ai) < 2 {
		return 0, false
	}
	n, ok := fixedAIPrefixes[ai[:2]]
	return n, ok
}

// aiLabel formats one group of the human-readable interpretation.
func aiLabel(ai, value string) string {
	return "(" + ai + ") " + value
}
