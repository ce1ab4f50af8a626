package numberfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewYAMLProvider(t *testing.T) {
	provider, err := NewYAMLProvider("numbers.yaml")
	if err != nil {
		t.Errorf("NewYAMLProvider() unexpected error = %v", err)
	}
	if _, ok := provider.(*YAMLProvider); !ok {
		t.Errorf("NewYAMLProvider() did not return a *YAMLProvider, got %T", provider)
	}

	if _, err := NewYAMLProvider(""); err == nil {
		t.Error("NewYAMLProvider(\"\") expected error, got nil")
	}
}

func TestYAMLProvider_GetNumbers(t *testing.T) {
	validYAML := `
numbers:
  - 0
  - 15
  - 5462895035
`
	flowYAML := `numbers: [9, 97, 549]`
	commentsOnlyYAML := "# nothing here yet\n"
	emptyListYAML := `numbers: []`
	unknownFieldYAML := `
numbers: [1]
extra: true
`
	notAListYAML := `numbers: fifteen`

	tests := []struct {
		name                string
		content             *string // nil means the file is not created
		wantNumbers         []int64
		wantErr             bool
		wantErrorMsgSnippet string
	}{
		{name: "missing file", content: nil, wantNumbers: []int64{}},
		{name: "empty file", content: ptr(""), wantNumbers: []int64{}},
		{name: "comments only", content: ptr(commentsOnlyYAML), wantNumbers: []int64{}},
		{name: "empty list", content: ptr(emptyListYAML), wantNumbers: []int64{}},
		{name: "block list", content: ptr(validYAML), wantNumbers: []int64{0, 15, 5462895035}},
		{name: "flow list", content: ptr(flowYAML), wantNumbers: []int64{9, 97, 549}},
		{
			name:                "unknown field",
			content:             ptr(unknownFieldYAML),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal numbers",
		},
		{
			name:                "numbers is not a list of integers",
			content:             ptr(notAListYAML),
			wantErr:             true,
			wantErrorMsgSnippet: "failed to unmarshal numbers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "numbers.yaml")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatalf("failed to write fixture: %v", err)
				}
			}

			provider, err := NewYAMLProvider(path)
			if err != nil {
				t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
			}

			numbers, err := provider.GetNumbers()
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetNumbers() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), tt.wantErrorMsgSnippet) {
					t.Errorf("GetNumbers() error = %q, want error to contain %q", err.Error(), tt.wantErrorMsgSnippet)
				}
				if numbers != nil {
					t.Errorf("GetNumbers() expected nil numbers on error, got %#v", numbers)
				}
				return
			}
			if !reflect.DeepEqual(numbers, tt.wantNumbers) {
				t.Errorf("GetNumbers() = %#v, want %#v", numbers, tt.wantNumbers)
			}
		})
	}
}

func TestYAMLProvider_GetSourceIdentifier(t *testing.T) {
	provider, err := NewYAMLProvider("./data//numbers.yaml")
	if err != nil {
		t.Fatalf("NewYAMLProvider() failed unexpectedly: %v", err)
	}
	if got, want := provider.GetSourceIdentifier(), "File: data/numbers.yaml"; got != want {
		t.Errorf("GetSourceIdentifier() = %q, want %q", got, want)
	}
}

func ptr(s string) *string {
	return &s
}
