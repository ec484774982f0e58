package freqtable

import "errors"

var (
	// ErrRowWidth indicates a frequency vector whose length differs from the table width.
	ErrRowWidth = errors.New("freqtable: row width mismatch")
	// ErrNegativeFrequency indicates a negative count in a row.
	ErrNegativeFrequency = errors.New("freqtable: negative frequency")
	// ErrGroupIndex indicates an invalid row-to-group index vector.
	ErrGroupIndex = errors.New("freqtable: invalid group index")
)
