package unit

import "errors"

// ErrIncompatibleDimensions is the sentinel for conversions between units of
// different resolved dimensions.
var ErrIncompatibleDimensions = errors.New("incompatible dimensions")

// ErrInexactConversion is the sentinel for exact-decimal conversions that
// would require an irrational π power.
var ErrInexactConversion = errors.New("conversion requires an irrational pi power")

// ConversionError reports a failed conversion with both descriptors attached.
type ConversionError struct {
	From Unit
	To   Unit
	Err  error
}

// Error returns the formatted conversion failure message.
func (e *ConversionError) Error() string {
	return "unit conversion from [" + e.From.String() + "] to [" + e.To.String() + "]: " + e.Err.Error()
}

// Unwrap returns the underlying sentinel for errors.Is.
func (e *ConversionError) Unwrap() error {
	return e.Err
}
