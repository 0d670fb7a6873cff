package validation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Required("Nodes", "")

	if !cv.HasErrors() {
		t.Error("Expected error for empty required field")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.Required("Nodes", "companies.csv")

	if cv2.HasErrors() {
		t.Error("Expected no error for non-empty required field")
	}
}

func TestConfigValidator_RangeInt(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		expectErr bool
	}{
		{"below min", 0, true},
		{"at min", 1, false},
		{"middle", 30, false},
		{"at max", 1000, false},
		{"above max", 1001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("TestConfig")
			cv.RangeInt("HistogramBins", tt.value, 1, 1000)
			if cv.HasErrors() != tt.expectErr {
				t.Errorf("RangeInt(%d) error = %v, want %v", tt.value, cv.HasErrors(), tt.expectErr)
			}
		})
	}
}

func TestConfigValidator_Positive(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.Positive("TopHubs", 0)
	if !cv.HasErrors() {
		t.Error("Expected error for zero")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.Positive("TopHubs", 10)
	if cv2.HasErrors() {
		t.Error("Expected no error for positive value")
	}
}

func TestConfigValidator_Probability(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		expectErr bool
	}{
		{"zero", 0, false},
		{"default", 0.1, false},
		{"one", 1, false},
		{"negative", -0.01, true},
		{"above one", 1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("TestConfig")
			cv.Probability("Probability", tt.value)
			if cv.HasErrors() != tt.expectErr {
				t.Errorf("Probability(%v) error = %v, want %v", tt.value, cv.HasErrors(), tt.expectErr)
			}
		})
	}
}

func TestConfigValidator_FileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "companies.csv")
	if err := os.WriteFile(file, []byte("Symbol\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if NewConfigValidator("C").FileExists("Nodes", file).HasErrors() {
		t.Error("Expected no error for existing file")
	}
	if NewConfigValidator("C").FileExists("Nodes", "").HasErrors() {
		t.Error("Expected empty path to be skipped")
	}
	if !NewConfigValidator("C").FileExists("Nodes", filepath.Join(dir, "missing.csv")).HasErrors() {
		t.Error("Expected error for missing file")
	}
	if !NewConfigValidator("C").FileExists("Nodes", dir).HasErrors() {
		t.Error("Expected error for directory")
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"auto", "sector", "edgelist"}

	cv := NewConfigValidator("TestConfig")
	cv.OneOf("Policy", "random", allowed)
	if !cv.HasErrors() {
		t.Error("Expected error for value not in allowed list")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.OneOf("Policy", "sector", allowed)
	if cv2.HasErrors() {
		t.Error("Expected no error for allowed value")
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	sentinel := errors.New("custom failure")

	cv := NewConfigValidator("TestConfig")
	cv.Custom("Field", func() error { return sentinel })
	if !cv.HasErrors() {
		t.Fatal("Expected error from custom validation")
	}
	if !errors.Is(cv.Errors()[0], sentinel) {
		t.Errorf("Expected wrapped sentinel, got %v", cv.Errors()[0])
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.Custom("Field", func() error { return nil })
	if cv2.HasErrors() {
		t.Error("Expected no error from passing custom validation")
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("TestConfig")
	cv.When(false, func(v *ConfigValidator) {
		v.Required("Edges", "")
	})
	if cv.HasErrors() {
		t.Error("Expected no error when condition is false")
	}

	cv2 := NewConfigValidator("TestConfig")
	cv2.When(true, func(v *ConfigValidator) {
		v.Required("Edges", "")
	})
	if !cv2.HasErrors() {
		t.Error("Expected error when condition is true")
	}
}

func TestConfigValidator_MultipleErrors(t *testing.T) {
	cv := NewConfigValidator("TestConfig").
		Required("Nodes", "").
		Probability("Probability", 2).
		OneOf("Policy", "bogus", []string{"auto"})

	if len(cv.Errors()) != 3 {
		t.Errorf("Expected 3 errors, got %d", len(cv.Errors()))
	}
}

func TestConfigValidator_Validate(t *testing.T) {
	if err := NewConfigValidator("TestConfig").Required("Nodes", "x").Validate(); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}

	single := NewConfigValidator("TestConfig").Required("Nodes", "").Validate()
	if single == nil || single.Error() != "TestConfig.Nodes: required field is empty" {
		t.Errorf("Unexpected single error: %v", single)
	}

	multi := NewConfigValidator("TestConfig").
		Required("Nodes", "").
		Positive("TopHubs", -1).
		Validate()
	if multi == nil {
		t.Fatal("Expected error")
	}
}

func TestDefaultOr(t *testing.T) {
	if got := DefaultOr("", "sector"); got != "sector" {
		t.Errorf("DefaultOr string = %q, want sector", got)
	}
	if got := DefaultOr("force", "sector"); got != "force" {
		t.Errorf("DefaultOr string = %q, want force", got)
	}
	if got := DefaultOr(0, 30); got != 30 {
		t.Errorf("DefaultOr int = %d, want 30", got)
	}
	if got := DefaultOr(0.25, 0.1); got != 0.25 {
		t.Errorf("DefaultOr float = %v, want 0.25", got)
	}
}
