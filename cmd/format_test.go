package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
)

func TestRunFormat(t *testing.T) {
	withLocal(t, time.UTC)
	resetState()

	tests := []struct {
		name     string
		input    any
		pattern  string
		expected string
	}{
		{
			name:     "seconds timestamp string",
			input:    "1733032145",
			pattern:  "YYYY-MM-DD HH:mm:ss",
			expected: "2024-12-01 05:49:05",
		},
		{
			name:     "epoch flag value",
			input:    int64(1733032145000),
			pattern:  "DD/MM/YYYY",
			expected: "01/12/2024",
		},
		{
			name:     "iso string",
			input:    "2024-11-28T10:15:30Z",
			pattern:  "HH:mm",
			expected: "10:15",
		},
		{
			name:     "literal without tokens",
			input:    "2024-11-28",
			pattern:  "today",
			expected: "today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := runFormat(&buf, "arg", tt.input, tt.pattern); err != nil {
				t.Fatalf("runFormat() error = %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRunFormat_JSON(t *testing.T) {
	withLocal(t, time.UTC)
	resetState()
	jsonOutput = true
	t.Cleanup(resetState)

	var buf bytes.Buffer
	if err := runFormat(&buf, "1733032145", "1733032145", "YYYY-MM-DD"); err != nil {
		t.Fatalf("runFormat() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error = %v", err)
	}

	wantKeys := []string{"command", "input", "pattern", "output", "instant"}
	for _, key := range wantKeys {
		if _, ok := result[key]; !ok {
			t.Errorf("Missing expected key in JSON: %s", key)
		}
	}
	if result["output"] != "2024-12-01" {
		t.Errorf("expected output 2024-12-01, got %v", result["output"])
	}
	if result["instant"] != "2024-12-01T05:49:05Z" {
		t.Errorf("expected instant 2024-12-01T05:49:05Z, got %v", result["instant"])
	}
	if _, ok := result["month_found"]; ok {
		t.Error("format output should not include month_found")
	}
}

func TestRunFormat_InvalidInput(t *testing.T) {
	resetState()

	var buf bytes.Buffer
	err := runFormat(&buf, "not a date", "not a date", "YYYY")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, dateformatter.ErrInvalidDateValue) {
		t.Errorf("expected ErrInvalidDateValue, got %v", err)
	}
	if !strings.Contains(err.Error(), `cannot read "not a date"`) {
		t.Errorf("expected error to mention the input, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
