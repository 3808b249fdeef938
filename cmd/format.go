package cmd

import (
	"io"
	"time"

	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
	"github.com/spf13/cobra"
)

var formatPattern string

var formatCmd = &cobra.Command{
	Use:   "format <input>",
	Short: "Format a date with a pattern or preset",
	Long: `Format a date with a pattern built from the tokens YYYY, MM, DD, HH, mm
and ss, or with a named preset. Without -p the configured default pattern is
used (DATEFMT_PATTERN, then default_pattern in the config file, then YYYY-MM-DD).`,
	Example: `  datefmt format 1733032145
  datefmt format 2024-12-01T08:29:05Z -p "DD/MM/YYYY HH:mm:ss"
  datefmt format --epoch 1733032145000 -p compact`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := parseInput(args[0], epochInput)
		if err != nil {
			return err
		}
		return runFormat(cmd.OutOrStdout(), args[0], input, resolvePattern(formatPattern))
	},
}

func init() {
	formatCmd.Flags().StringVarP(&formatPattern, "pattern", "p", "", "pattern or preset name")
	addEpochFlag(formatCmd)
}

func runFormat(w io.Writer, raw string, input any, pattern string) error {
	f, err := dateformatter.New(input)
	if err != nil {
		return describeInputError(raw, err)
	}
	logger.Debug().Time("instant", f.Time()).Msg("normalised input")

	return writeResult(w, renderResult{
		Command: "format",
		Input:   raw,
		Pattern: pattern,
		Output:  f.FormatDate(pattern),
		Instant: f.Time().Format(time.RFC3339),
	})
}
