package testutil

import (
	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
)

// MockDigitDecomposer is a mock implementation of ports.DigitDecomposer.
type MockDigitDecomposer struct {
	// DecomposeFunc allows you to set a custom function for the Decompose method.
	DecomposeFunc func(number int64) (digits.Decomposition, error)
	// DecomposeCalls keeps track of the numbers passed to Decompose.
	DecomposeCalls []int64
}

// NewMockDigitDecomposer creates a new MockDigitDecomposer.
func NewMockDigitDecomposer() *MockDigitDecomposer {
	return &MockDigitDecomposer{
		DecomposeCalls: make([]int64, 0),
	}
}

// Decompose implements the ports.DigitDecomposer interface.
// It calls DecomposeFunc if it's set, otherwise returns a zero-value Decomposition.
func (m *MockDigitDecomposer) Decompose(number int64) (digits.Decomposition, error) {
	m.DecomposeCalls = append(m.DecomposeCalls, number)
	if m.DecomposeFunc != nil {
		return m.DecomposeFunc(number)
	}
	return digits.Decomposition{}, nil
}

var _ ports.DigitDecomposer = (*MockDigitDecomposer)(nil)
