package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
)

// parseNumbers converts command-line arguments to integers. Range checks
// beyond int64 parsing are left to the decomposer.
func parseNumbers(args []string) ([]int64, error) {
	numbers := make([]int64, 0, len(args))
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a 64-bit integer: %w", arg, digits.ErrInvalidArgument)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
