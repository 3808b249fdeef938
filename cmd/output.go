package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
)

// renderResult is the output of a single-input command
type renderResult struct {
	Command    string `json:"command"`
	Input      string `json:"input"`
	Pattern    string `json:"pattern,omitempty"`
	Output     string `json:"output"`
	Instant    string `json:"instant,omitempty"`
	MonthFound *bool  `json:"month_found,omitempty"`
}

func outputJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeResult prints the bare output line, or the whole result as JSON
func writeResult(w io.Writer, result renderResult) error {
	if jsonOutput {
		return outputJSON(w, result)
	}
	_, err := fmt.Fprintln(w, result.Output)
	return err
}

// describeInputError adds the raw argument to normalisation failures
func describeInputError(raw string, err error) error {
	switch {
	case errors.Is(err, dateformatter.ErrInvalidDateValue):
		return fmt.Errorf("cannot read %q as a date: %w", raw, err)
	case errors.Is(err, dateformatter.ErrInvalidInputType):
		return fmt.Errorf("unsupported input %q: %w", raw, err)
	default:
		return err
	}
}
