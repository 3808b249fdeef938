package cmd

import (
	"io"
	"time"

	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
	"github.com/spf13/cobra"
)

var relativeCmd = &cobra.Command{
	Use:     "relative <input>",
	Aliases: []string{"from-now"},
	Short:   "Describe a date relative to now",
	Example: `  datefmt relative 1733032145
  datefmt from-now "2024-11-28 10:15:30" --now 2024-12-01T00:00:00Z`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := parseInput(args[0], epochInput)
		if err != nil {
			return err
		}
		now, err := referenceTime(nowFlag)
		if err != nil {
			return err
		}
		return runRelative(cmd.OutOrStdout(), args[0], input, now)
	},
}

func init() {
	addEpochFlag(relativeCmd)
	addNowFlag(relativeCmd)
}

// runRelative renders the relative phrase against now, or the wall clock when now is nil
func runRelative(w io.Writer, raw string, input any, now *time.Time) error {
	f, err := dateformatter.New(input)
	if err != nil {
		return describeInputError(raw, err)
	}

	var phrase string
	if now != nil {
		logger.Debug().Time("now", *now).Msg("using fixed reference time")
		phrase = f.RelativeTimeFrom(*now)
	} else {
		phrase = f.RelativeTime()
	}

	return writeResult(w, renderResult{
		Command: "relative",
		Input:   raw,
		Output:  phrase,
		Instant: f.Time().Format(time.RFC3339),
	})
}
