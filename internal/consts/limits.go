package consts

import "time"

// Display limits
const (
	// MaxDisplayCapacity is the maximum number of characters the display may hold
	MaxDisplayCapacity = 17
	// MaxDigitsWithDecimal is the display budget for a formatted result (one slot is kept for a minus sign)
	MaxDigitsWithDecimal = MaxDisplayCapacity - 1
	// MaxDecimalPrecision is the maximum number of fractional digits shown for a result
	MaxDecimalPrecision = 16
)

// Buffer sizes for various operations
const (
	// BufferSize1KB is 1 kilobyte
	BufferSize1KB = 1024
	// BufferSize8KB is 8 kilobytes
	BufferSize8KB = 8 * 1024
)

// Timeouts for various operations
const (
	// Timeout1Second is a 1 second timeout
	Timeout1Second = 1 * time.Second
	// Timeout5Seconds is a 5 second timeout
	Timeout5Seconds = 5 * time.Second
	// Timeout10Seconds is a 10 second timeout
	Timeout10Seconds = 10 * time.Second
	// Timeout60Seconds is a 60 second timeout (1 minute)
	Timeout60Seconds = 60 * time.Second
)

// KeyFlashDuration is how long a pressed key stays highlighted on a keypad
const KeyFlashDuration = 120 * time.Millisecond
