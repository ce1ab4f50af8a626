package ports

import "github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"

// BatchResult holds the decompositions of several numbers, in input order,
// and the frequency summed across all of them.
type BatchResult struct {
	Decompositions []digits.Decomposition
	Aggregate      digits.Frequency
	SourceDetails  string
}

// DecompositionService defines the contract for decomposing one or many numbers.
type DecompositionService interface {
	Decompose(number int64) (digits.Decomposition, error)
	// DecomposeBatch decomposes every number or none: the first failure aborts the batch.
	DecomposeBatch(numbers []int64) (BatchResult, error)
	// DecomposeFromSource loads numbers from the configured NumberSource and decomposes them.
	DecomposeFromSource() (BatchResult, error)
}
