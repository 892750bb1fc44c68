package config

import (
	"strings"
	"testing"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate_MaxDepthTooSmall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolve.MaxDepth = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for max_depth 0")
	}
	if !strings.Contains(err.Error(), "resolve.max_depth") {
		t.Errorf("error should name the failing field, got %v", err)
	}
}

func TestValidate_EmptySearchPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Paths = []string{"/ok", "  "}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for blank search path")
	}
	if !strings.Contains(err.Error(), "search.paths[1]") {
		t.Errorf("error should name the failing entry, got %v", err)
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid log level")
	}
}

func TestValidate_BadLogFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid log format")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolve.MaxDepth = -1
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}

	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 validation errors, got %d: %v", len(verrs), verrs)
	}
}
