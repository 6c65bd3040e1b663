package csvdoc

const (
	cDefaultSeparator  = ','
	cQuote             = '"'
	cDetectSampleLines = 10
	cDetectSampleBytes = 64 << 10
	cUTF8BOM           = "\ufeff"
)

// priority order for ties
var cDetectCandidates = []rune{',', ';', '\t', '|'}
