package decomposition

import (
	"fmt"

	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
)

type service struct {
	decomposer   ports.DigitDecomposer
	numberSource ports.NumberSource // Can be nil if no number file is configured.
}

// NewService creates a new decomposition service.
// It panics if decomposer is nil. numberSource can be nil if not used.
func NewService(dd ports.DigitDecomposer, ns ports.NumberSource) ports.DecompositionService {
	if dd == nil {
		panic("decomposer cannot be nil")
	}
	return &service{
		decomposer:   dd,
		numberSource: ns,
	}
}

// Decompose splits a single number into its digits and digit frequency.
func (s *service) Decompose(number int64) (digits.Decomposition, error) {
	d, err := s.decomposer.Decompose(number)
	if err != nil {
		return digits.Decomposition{}, fmt.Errorf("failed to decompose %d: %w", number, err)
	}
	return d, nil
}

// DecomposeBatch decomposes numbers in order and sums their frequencies.
// Nothing is returned for a batch containing an invalid number.
func (s *service) DecomposeBatch(numbers []int64) (ports.BatchResult, error) {
	result := ports.BatchResult{
		Decompositions: make([]digits.Decomposition, 0, len(numbers)),
	}

	for i, n := range numbers {
		d, err := s.Decompose(n)
		if err != nil {
			return ports.BatchResult{}, fmt.Errorf("batch entry %d: %w", i, err)
		}
		result.Decompositions = append(result.Decompositions, d)
		result.Aggregate = result.Aggregate.Add(d.Frequency())
	}
	return result, nil
}

// DecomposeFromSource loads numbers from the configured source and decomposes them.
// Without a source the result is empty.
func (s *service) DecomposeFromSource() (ports.BatchResult, error) {
	if s.numberSource == nil {
		return ports.BatchResult{
			Decompositions: []digits.Decomposition{},
			SourceDetails:  "no number source configured",
		}, nil
	}

	numbers, err := s.numberSource.GetNumbers()
	if err != nil {
		return ports.BatchResult{}, fmt.Errorf("failed to load numbers from %s: %w", s.numberSource.GetSourceIdentifier(), err)
	}

	result, err := s.DecomposeBatch(numbers)
	if err != nil {
		return ports.BatchResult{}, err
	}
	result.SourceDetails = s.numberSource.GetSourceIdentifier()
	return result, nil
}
