package interval

import "errors"

// An InvalidRationalError is returned when a string does not match the
// rational-literal grammar accepted by ParseRational.
type InvalidRationalError struct {
	// Input is the offending literal.
	Input string
}

func (e *InvalidRationalError) Error() string {
	return "interval: " + quoteShort(e.Input) + " is not a valid rational number"
}

var _ error = (*InvalidRationalError)(nil)

// quoteShort quotes s for an error message, truncating absurdly long inputs.
func quoteShort(s string) string {
	const max = 40
	if len(s) > max {
		s = s[:max] + "..."
	}
	return `"` + s + `"`
}

var (
	// ErrDivisionByZero is returned when a denominator sub-expression of a
	// rational literal evaluates to zero.
	ErrDivisionByZero = errors.New("interval: zero denominator in rational number")

	// ErrOverflow is returned when a fraction's numerator or denominator is
	// too large to convert to a finite float64. ParseRational also returns
	// it for an exponent larger than 2^20 in magnitude.
	ErrOverflow = errors.New("interval: fraction parts are too large to convert to float64")

	// ErrEmptyInterval is the value of the panic raised by operations that
	// are not defined for empty intervals, such as the sum of two empty
	// intervals.
	ErrEmptyInterval = errors.New("interval: operation not defined for empty intervals")

	// ErrUndefinedInterval is the value of the panic raised by operations
	// that are not defined for undefined intervals, such as the diameter of
	// an undefined interval.
	ErrUndefinedInterval = errors.New("interval: operation not defined for undefined intervals")
)
