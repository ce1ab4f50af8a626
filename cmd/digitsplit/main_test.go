package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/AntonioJCosta/digitsplit/internal/config"
	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
	"github.com/fatih/color"
)

// captureStderr redirects warnings and errors into a buffer for one test.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stderr
	stderr = &buf
	t.Cleanup(func() { stderr = prev })
	return &buf
}

// isolateRun keeps the user's config and colour setting out of run().
func isolateRun(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DIGITSPLIT_OUTPUT_FORMAT", "")
	t.Setenv("DIGITSPLIT_CACHE_SIZE", "")
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })
	color.NoColor = true
}

func TestNewService_DefaultConfig(t *testing.T) {
	errOut := captureStderr(t)

	svc, err := newService(config.Default(), "")
	if err != nil {
		t.Fatalf("newService() unexpected error = %v", err)
	}

	// Decomposing twice goes through the cache on the second call.
	for i := 0; i < 2; i++ {
		d, err := svc.Decompose(5462895035)
		if err != nil {
			t.Fatalf("Decompose() unexpected error = %v", err)
		}
		want := []digits.Digit{5, 4, 6, 2, 8, 9, 5, 0, 3, 5}
		if !reflect.DeepEqual(d.Digits(), want) {
			t.Errorf("Decompose() digits = %v, want %v", d.Digits(), want)
		}
	}

	if _, err := svc.Decompose(-1); !errors.Is(err, digits.ErrInvalidArgument) {
		t.Errorf("Decompose(-1) error = %v, want ErrInvalidArgument", err)
	}

	result, err := svc.DecomposeFromSource()
	if err != nil {
		t.Fatalf("DecomposeFromSource() unexpected error = %v", err)
	}
	if len(result.Decompositions) != 0 {
		t.Errorf("DecomposeFromSource() without a file = %d decompositions, want 0", len(result.Decompositions))
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want no warnings", errOut.String())
	}
}

func TestNewService_CacheSizeFromConfig(t *testing.T) {
	captureStderr(t)

	cfg := &config.Config{Output: config.OutputConfig{Format: config.FormatText}, Cache: config.CacheConfig{Size: -1}}
	if _, err := newService(cfg, ""); err == nil || !strings.Contains(err.Error(), "error initializing decomposer") {
		t.Errorf("newService() with negative cache size error = %v, want decomposer init error", err)
	}

	cfg.Cache.Size = 0
	svc, err := newService(cfg, "")
	if err != nil {
		t.Fatalf("newService() with cache disabled unexpected error = %v", err)
	}
	d, err := svc.Decompose(549)
	if err != nil {
		t.Fatalf("Decompose() unexpected error = %v", err)
	}
	if !reflect.DeepEqual(d.Digits(), []digits.Digit{5, 4, 9}) {
		t.Errorf("Decompose() digits = %v, want [5 4 9]", d.Digits())
	}
}

func TestNewService_NumberFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numbers.yaml")
	if err := os.WriteFile(path, []byte("numbers: [5428950354, 0]\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	t.Run("existing file", func(t *testing.T) {
		errOut := captureStderr(t)
		svc, err := newService(config.Default(), path)
		if err != nil {
			t.Fatalf("newService() unexpected error = %v", err)
		}
		result, err := svc.DecomposeFromSource()
		if err != nil {
			t.Fatalf("DecomposeFromSource() unexpected error = %v", err)
		}
		want := digits.Frequency{2, 0, 1, 1, 2, 3, 0, 0, 1, 1}
		if result.Aggregate != want {
			t.Errorf("DecomposeFromSource() aggregate = %v, want %v", result.Aggregate, want)
		}
		if !strings.HasPrefix(result.SourceDetails, "File: ") {
			t.Errorf("SourceDetails = %q, want a file identifier", result.SourceDetails)
		}
		if errOut.Len() != 0 {
			t.Errorf("stderr = %q, want no warnings", errOut.String())
		}
	})

	t.Run("missing file warns and yields no numbers", func(t *testing.T) {
		errOut := captureStderr(t)
		missing := filepath.Join(dir, "absent.yaml")
		svc, err := newService(&config.Config{Cache: config.CacheConfig{Size: 0}}, missing)
		if err != nil {
			t.Fatalf("newService() unexpected error = %v", err)
		}
		if !strings.Contains(errOut.String(), "Warning: number file "+missing+" does not exist") {
			t.Errorf("stderr = %q, want missing file warning", errOut.String())
		}
		result, err := svc.DecomposeFromSource()
		if err != nil {
			t.Fatalf("DecomposeFromSource() unexpected error = %v", err)
		}
		if len(result.Decompositions) != 0 {
			t.Errorf("DecomposeFromSource() = %d decompositions, want 0", len(result.Decompositions))
		}
	})
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		env          map[string]string
		wantCode     int
		wantOut      string
		wantErrParts []string
	}{
		{
			name:     "split succeeds",
			args:     []string{"--no-color", "split", "97"},
			wantCode: 0,
			wantOut:  "97 -> [9 7]\n",
		},
		{
			name:         "negative number exits non-zero",
			args:         []string{"--no-color", "split", "-5"},
			wantCode:     1,
			wantErrParts: []string{"Error: ", "invalid argument"},
		},
		{
			name:         "invalid cache size in environment",
			args:         []string{"--no-color", "count", "1"},
			env:          map[string]string{"DIGITSPLIT_CACHE_SIZE": "-3"},
			wantCode:     1,
			wantErrParts: []string{"Error: ", "cache.size"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateRun(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			errOut := captureStderr(t)
			var out bytes.Buffer

			code := run(tt.args, &out)
			if code != tt.wantCode {
				t.Fatalf("run() = %d, want %d (stderr %q)", code, tt.wantCode, errOut.String())
			}
			if tt.wantOut != "" && out.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
			for _, part := range tt.wantErrParts {
				if !strings.Contains(errOut.String(), part) {
					t.Errorf("stderr = %q, want it to contain %q", errOut.String(), part)
				}
			}
		})
	}
}
