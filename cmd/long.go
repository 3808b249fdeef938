package cmd

import (
	"io"
	"time"

	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
	"github.com/spf13/cobra"
)

var longCmd = &cobra.Command{
	Use:   "long <input>",
	Short: `Render a date as "December 1, 2024"`,
	Example: `  datefmt long 1733032145
  datefmt long 2024-12-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := parseInput(args[0], epochInput)
		if err != nil {
			return err
		}
		return runLong(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], input)
	},
}

func init() {
	addEpochFlag(longCmd)
}

func runLong(w, errW io.Writer, raw string, input any) error {
	f, err := dateformatter.New(input)
	if err != nil {
		return describeInputError(raw, err)
	}

	long, found := f.LongDate()
	if !found {
		logger.Warn().Int("month", int(f.Time().Month())).Msg("month missing from month table")
		yellow.Fprintf(errW, "Warning: no name for month %d, output is incomplete\n", int(f.Time().Month()))
	}

	return writeResult(w, renderResult{
		Command:    "long",
		Input:      raw,
		Output:     long,
		Instant:    f.Time().Format(time.RFC3339),
		MonthFound: &found,
	})
}
