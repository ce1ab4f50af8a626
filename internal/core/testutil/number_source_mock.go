package testutil

import (
	"errors"

	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
)

// MockNumberSource is a mock implementation of ports.NumberSource for testing.
type MockNumberSource struct {
	GetNumbersFunc          func() ([]int64, error)
	GetSourceIdentifierFunc func() string
}

func (m *MockNumberSource) GetNumbers() ([]int64, error) {
	if m.GetNumbersFunc != nil {
		return m.GetNumbersFunc()
	}
	return nil, errors.New("MockNumberSource: GetNumbersFunc not implemented")
}

func (m *MockNumberSource) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return "mock source"
}

var _ ports.NumberSource = (*MockNumberSource)(nil)
