package ports

import "github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"

/*
DigitDecomposer defines the contract for turning an integer into its decimal
digit sequence and digit frequency.
This is a driven port, representing a domain capability.
*/
type DigitDecomposer interface {
	// Decompose splits number into digits, most significant first.
	// It returns an error wrapping digits.ErrInvalidArgument when number is negative.
	Decompose(number int64) (digits.Decomposition, error)
}
