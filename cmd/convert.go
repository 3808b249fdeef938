package cmd

import (
	"io"
	"time"

	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
	"github.com/spf13/cobra"
)

var convertOutput string

var convertCmd = &cobra.Command{
	Use:   "convert <text> <pattern>",
	Short: "Parse text by aligning it with an explicit pattern",
	Long: `Parse text by splitting it and the pattern on "-", "/", ":", "." and spaces,
then reading each part of the text as the token at the same position in the
pattern. Missing parts default to year 0, January, day 1 and midnight.

The pattern may be a preset name. The result is printed as RFC 3339 unless
an output pattern is given with -o.`,
	Example: `  datefmt convert 01/12/2024 DD/MM/YYYY
  datefmt convert "2024.12.01 08:29" "YYYY.MM.DD HH:mm" -o long
  datefmt convert 12-01-2024 us -o iso`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cfg.ResolvePattern(args[1])
		return runConvert(cmd.OutOrStdout(), args[0], pattern, convertOutput)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", `output pattern or preset ("long" for a long-form date)`)
}

func runConvert(w io.Writer, text, pattern, output string) error {
	t := dateformatter.ConvertPattern(text, pattern)
	logger.Debug().Str("text", text).Str("pattern", pattern).Time("result", t).Msg("converted")

	result := renderResult{
		Command: "convert",
		Input:   text,
		Pattern: pattern,
		Instant: t.Format(time.RFC3339),
	}

	switch output {
	case "":
		result.Output = t.Format(time.RFC3339)
	default:
		f, err := dateformatter.New(t)
		if err != nil {
			return describeInputError(text, err)
		}
		if output == "long" {
			long, found := f.LongDate()
			result.Output = long
			result.MonthFound = &found
		} else {
			result.Output = f.FormatDate(resolvePattern(output))
		}
	}

	return writeResult(w, result)
}
