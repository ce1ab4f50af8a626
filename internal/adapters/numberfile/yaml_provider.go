package numberfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// numberList is the on-disk layout:
//
//	numbers:
//	  - 15
//	  - 5462895035
type numberList struct {
	Numbers []int64 `yaml:"numbers"`
}

// YAMLProvider implements the NumberSource interface
// by reading numbers from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the numbers.
func NewYAMLProvider(filePath string) (ports.NumberSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetNumbers reads and parses numbers from the configured YAML file.
// If the file does not exist or is empty, it returns an empty list and no error.
func (p *YAMLProvider) GetNumbers() ([]int64, error) {
	numbers := []int64{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return numbers, nil
		}
		return nil, fmt.Errorf("failed to read numbers file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return numbers, nil
	}

	var list numberList
	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&list); err != nil {
		// A document holding only comments or "---" decodes as EOF.
		if errors.Is(err, io.EOF) {
			return numbers, nil
		}
		return nil, fmt.Errorf("failed to unmarshal numbers from %s: %w", p.filePath, err)
	}

	if list.Numbers != nil {
		numbers = list.Numbers
	}
	return numbers, nil
}

// GetSourceIdentifier implements the ports.NumberSource interface.
func (p *YAMLProvider) GetSourceIdentifier() string {
	return fmt.Sprintf("File: %s", filepath.Clean(p.filePath))
}
