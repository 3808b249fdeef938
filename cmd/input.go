package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
	"github.com/spf13/cobra"
)

var (
	epochInput bool
	nowFlag    string
)

func addEpochFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&epochInput, "epoch", "e", false, "treat the input as a numeric epoch timestamp")
}

func addNowFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference time for relative output (any accepted date input)")
}

// parseInput returns the argument as an int64 when epoch is set, else as a string
func parseInput(arg string, epoch bool) (any, error) {
	if !epoch {
		return arg, nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("--epoch expects an integer timestamp, got %q", arg)
	}
	return n, nil
}

// referenceTime parses --now, returning nil when unset
func referenceTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	f, err := dateformatter.New(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --now value: %w", err)
	}
	now := f.Time()
	return &now, nil
}

// resolvePattern turns a -p value (preset or literal) into a pattern,
// falling back to the configured default
func resolvePattern(value string) string {
	if value == "" {
		pattern := cfg.DefaultFormatPattern()
		logger.Debug().Str("pattern", pattern).Msg("using default pattern")
		return pattern
	}

	pattern, isPreset := cfg.ResolvePattern(value)
	if isPreset {
		logger.Debug().Str("preset", value).Str("pattern", pattern).Msg("resolved preset")
	} else if !dateformatter.HasTokens(pattern) {
		logger.Warn().Str("pattern", pattern).Msg("pattern has no tokens and is not a preset; output will be the pattern itself")
	}
	return pattern
}
