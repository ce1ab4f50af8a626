package decimal

import (
	"fmt"

	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
)

// maxDigits is the digit count of math.MaxInt64.
const maxDigits = 19

// Decomposer extracts base-10 digits with repeated modulo and division.
type Decomposer struct{}

// NewDecomposer creates a new Decomposer.
func NewDecomposer() ports.DigitDecomposer {
	return &Decomposer{}
}

// Decompose implements the ports.DigitDecomposer interface.
func (d *Decomposer) Decompose(number int64) (digits.Decomposition, error) {
	if number < 0 {
		return digits.Decomposition{}, fmt.Errorf("number must not be negative, got %d: %w", number, digits.ErrInvalidArgument)
	}
	return digits.NewDecomposition(number, toDigits(number)), nil
}

// toDigits collects the ones place until nothing is left, then reverses
// so the most significant digit comes first. Zero never enters the loop.
func toDigits(number int64) []digits.Digit {
	seq := make([]digits.Digit, 0, maxDigits)
	if number == 0 {
		return append(seq, 0)
	}

	for n := number; n > 0; n /= digits.Base {
		seq = append(seq, digits.Digit(n%digits.Base))
	}

	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}
	return seq
}
