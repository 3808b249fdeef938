package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		epoch   bool
		want    any
		wantErr bool
	}{
		{name: "string passthrough", arg: "2024-12-01", epoch: false, want: "2024-12-01"},
		{name: "digits stay strings without flag", arg: "1733032145", epoch: false, want: "1733032145"},
		{name: "epoch integer", arg: "1733032145", epoch: true, want: int64(1733032145)},
		{name: "epoch with spaces", arg: " 42 ", epoch: true, want: int64(42)},
		{name: "epoch negative", arg: "-1000000000", epoch: true, want: int64(-1000000000)},
		{name: "epoch rejects text", arg: "2024-12-01", epoch: true, wantErr: true},
		{name: "epoch rejects fraction", arg: "1.5", epoch: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInput(tt.arg, tt.epoch)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestReferenceTime(t *testing.T) {
	now, err := referenceTime("")
	if err != nil || now != nil {
		t.Errorf("expected nil reference for empty flag, got %v, %v", now, err)
	}

	now, err = referenceTime("2024-12-01T12:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !now.Equal(time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected reference time %v", now)
	}

	if _, err := referenceTime("whenever"); err == nil {
		t.Error("expected error for invalid --now, got nil")
	}
}

func TestResolvePattern(t *testing.T) {
	resetState()
	cfg.DefaultPattern = "uk"
	cfg.Presets["stamp"] = "YYYYMMDD"
	t.Cleanup(resetState)

	tests := []struct {
		input    string
		expected string
	}{
		{"", "DD/MM/YYYY"},
		{"stamp", "YYYYMMDD"},
		{"datetime", "YYYY-MM-DD HH:mm:ss"},
		{"HH:mm", "HH:mm"},
	}

	for _, tt := range tests {
		if got := resolvePattern(tt.input); got != tt.expected {
			t.Errorf("resolvePattern(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExecute_Format(t *testing.T) {
	withLocal(t, time.UTC)
	isolateConfig(t)

	stdout, _, err := executeCommand(t, nil, "format", "--epoch", "1733032145", "-p", "datetime")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(stdout) != "2024-12-01 05:49:05" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestExecute_FormatUsesConfigDefault(t *testing.T) {
	withLocal(t, time.UTC)
	dir := isolateConfig(t)

	configFile := filepath.Join(dir, "datefmt", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	content := "default_pattern = \"report\"\n\n[presets]\nreport = \"DD.MM.YYYY\"\n"
	if err := os.WriteFile(configFile, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	stdout, _, err := executeCommand(t, nil, "format", "2024-12-01T08:29:05Z")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(stdout) != "01.12.2024" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestExecute_FormatEnvPattern(t *testing.T) {
	withLocal(t, time.UTC)
	isolateConfig(t)
	t.Setenv("DATEFMT_PATTERN", "compact")

	stdout, _, err := executeCommand(t, nil, "format", "1733032145")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(stdout) != "20241201054905" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	isolateConfig(t)

	_, _, err := executeCommand(t, nil, "format", "not a date")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid date or timestamp provided") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestExecute_MissingExplicitConfig(t *testing.T) {
	isolateConfig(t)

	_, _, err := executeCommand(t, nil, "format", "2024-12-01", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "loading config") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestExecute_Version(t *testing.T) {
	isolateConfig(t)
	SetVersionInfo("1.4.0", "2024-12-01T08:29:05Z", "abc1234")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	stdout, _, err := executeCommand(t, nil, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "datefmt v1.4.0") || !strings.Contains(stdout, "abc1234") {
		t.Errorf("unexpected version output %q", stdout)
	}

	stdout, _, err = executeCommand(t, nil, "--version", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("JSON unmarshal error = %v", err)
	}
	if info["version"] != "1.4.0" || info["git_commit"] != "abc1234" {
		t.Errorf("unexpected version JSON %v", info)
	}
	if info["display_version"] != "v1.4.0" || info["release"] != true {
		t.Errorf("expected release v1.4.0, got %v", info)
	}
}

func TestExecute_VersionPrerelease(t *testing.T) {
	isolateConfig(t)
	SetVersionInfo("v1.5.0-rc.1", "unknown", "def5678")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	stdout, _, err := executeCommand(t, nil, "--version", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("JSON unmarshal error = %v", err)
	}
	if info["release"] != false {
		t.Errorf("expected release false for a prerelease, got %v", info["release"])
	}
}

func TestExecute_ErrorLineOnCommandStderr(t *testing.T) {
	isolateConfig(t)

	_, stderr, err := executeCommand(t, nil, "format", "not a date")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(stderr, `Error: cannot read "not a date" as a date`) {
		t.Errorf("expected error line on stderr, got %q", stderr)
	}
}

func TestExecute_VerboseLogsToStderr(t *testing.T) {
	withLocal(t, time.UTC)
	isolateConfig(t)

	stdout, stderr, err := executeCommand(t, nil, "format", "1733032145", "-p", "iso", "-v")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(stdout) != "2024-12-01" {
		t.Errorf("unexpected output %q", stdout)
	}
	if !strings.Contains(stderr, "resolved preset") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}
