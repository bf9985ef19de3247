package encoder

// PDF417 symbol limits.
const (
	NumberOfCodewords     = 929
	MaxCodewordsInBarcode = 928
	MinRowsInBarcode      = 3
	MaxRowsInBarcode      = 90
	MinColumns            = 1
	MaxColumns            = 30
	MaxErrorCorrection    = 8
	ModulesInCodeword     = 17
	ModulesInStopPattern  = 18
)

const (
	startPattern = 0x1fea8
	stopPattern  = 0x3fa29
	padCodeword  = 900

	eciUserDefined    = 925
	eciGeneralPurpose = 926
	eciCharset        = 927
)
