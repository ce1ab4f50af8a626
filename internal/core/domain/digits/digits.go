/*
Package digits defines the core domain entities for a number's decimal
expansion: the ordered digit sequence and the per-digit frequency tally.
*/
package digits

import "errors"

// ErrInvalidArgument is returned when a number cannot be decomposed,
// e.g. when it is negative.
var ErrInvalidArgument = errors.New("invalid argument")

// Base is the radix used for every decomposition.
const Base = 10

// Digit is a single base-10 digit value, 0 through 9.
type Digit int8

/*
Decomposition holds a number together with its digit sequence (most
significant first) and the frequency of every digit value in it.
It is immutable: accessors hand out copies.
*/
type Decomposition struct {
	number    int64
	digits    []Digit
	frequency Frequency
}

// NewDecomposition builds a Decomposition from an already extracted digit
// sequence. The frequency is derived from seq.
func NewDecomposition(number int64, seq []Digit) Decomposition {
	owned := make([]Digit, len(seq))
	copy(owned, seq)
	return Decomposition{
		number:    number,
		digits:    owned,
		frequency: Tally(owned),
	}
}

// Number returns the integer that was decomposed.
func (d Decomposition) Number() int64 {
	return d.number
}

// Digits returns a copy of the digit sequence, most significant digit first.
func (d Decomposition) Digits() []Digit {
	out := make([]Digit, len(d.digits))
	copy(out, d.digits)
	return out
}

// Len returns the number of digits.
func (d Decomposition) Len() int {
	return len(d.digits)
}

// Frequency returns the digit frequency tally.
func (d Decomposition) Frequency() Frequency {
	return d.frequency
}

// Join rebuilds an integer from a digit sequence using positional weighting,
// most significant digit first.
func Join(seq []Digit) int64 {
	var n int64
	for _, d := range seq {
		n = n*Base + int64(d)
	}
	return n
}

// Valid reports whether d is a base-10 digit.
func (d Digit) Valid() bool {
	return d >= 0 && d < Base
}
