package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/nickromney-org/date-formatter/internal/batch"
	"github.com/nickromney-org/date-formatter/pkg/dateformatter"
	"github.com/spf13/cobra"
)

var batchPattern string

var batchCmd = &cobra.Command{
	Use:   "batch <file|->",
	Short: "Render every entry of a JSON batch file",
	Long: `Render every entry of a JSON batch file in all three forms. The file holds
{"entries": [...]} where each entry is a timestamp, a date string, or an object
{"input": ..., "pattern": "..."} overriding the pattern for that entry.
Use "-" to read the batch from stdin.

Entries that cannot be read are reported individually; the command fails once
all entries have been rendered.`,
	Example: `  datefmt batch dates.json
  echo '{"entries": [1733032145, "2024-12-01"]}' | datefmt batch - --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now, err := referenceTime(nowFlag)
		if err != nil {
			return err
		}
		if now == nil {
			current := time.Now()
			now = &current
		}

		loader := batch.NewLoader(cmd.InOrStdin())
		data, entries, err := loader.Load(args[0])
		if err != nil {
			return err
		}
		logger.Debug().Str("source", args[0]).Int("entries", len(entries)).Msg("loaded batch")
		if data.GeneratedAt != nil {
			logger.Debug().Time("generated_at", *data.GeneratedAt).Msg("batch metadata")
		}

		report := renderBatch(entries, resolvePattern(batchPattern), *now)
		if err := writeBatchReport(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if report.Failed > 0 {
			return fmt.Errorf("%d of %d entries could not be rendered", report.Failed, len(report.Results))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchPattern, "pattern", "p", "", "default pattern or preset for entries without one")
	addNowFlag(batchCmd)
}

// batchResult is one rendered batch entry
type batchResult struct {
	Index     int    `json:"index"`
	Input     string `json:"input"`
	Pattern   string `json:"pattern,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	Relative  string `json:"relative,omitempty"`
	Long      string `json:"long,omitempty"`
	Instant   string `json:"instant,omitempty"`
	Error     string `json:"error,omitempty"`
}

// batchReport collects every entry's result
type batchReport struct {
	Now     string        `json:"now"`
	Results []batchResult `json:"results"`
	Failed  int           `json:"failed"`
}

func renderBatch(entries []batch.Entry, defaultPattern string, now time.Time) batchReport {
	report := batchReport{
		Now:     now.Format(time.RFC3339),
		Results: make([]batchResult, 0, len(entries)),
	}

	for _, entry := range entries {
		result := batchResult{
			Index: entry.Index,
			Input: fmt.Sprint(entry.Input),
		}

		if entry.Err != nil {
			result.Error = entry.Err.Error()
			report.Failed++
			report.Results = append(report.Results, result)
			logger.Warn().Int("index", entry.Index).Err(entry.Err).Msg("skipping malformed entry")
			continue
		}

		result.Pattern = defaultPattern
		if entry.Pattern != "" {
			result.Pattern, _ = cfg.ResolvePattern(entry.Pattern)
		}

		f, err := dateformatter.New(entry.Input)
		if err != nil {
			result.Error = err.Error()
			report.Failed++
			report.Results = append(report.Results, result)
			logger.Warn().Int("index", entry.Index).Err(err).Msg("entry is not a valid date")
			continue
		}

		result.Formatted = f.FormatDate(result.Pattern)
		result.Relative = f.RelativeTimeFrom(now)
		result.Long, _ = f.LongDate()
		result.Instant = f.Time().Format(time.RFC3339)
		report.Results = append(report.Results, result)
	}

	return report
}

func writeBatchReport(w io.Writer, report batchReport) error {
	if jsonOutput {
		return outputJSON(w, report)
	}

	cyan.Fprintf(w, "%-4s %-26s %-22s %-22s %s\n", "#", "Input", "Formatted", "Relative", "Long")
	for _, r := range report.Results {
		if r.Error != "" {
			red.Fprintf(w, "%-4d %-26s %s\n", r.Index, truncate(r.Input, 26), r.Error)
			continue
		}
		fmt.Fprintf(w, "%-4d %-26s %-22s %-22s %s\n", r.Index, truncate(r.Input, 26), r.Formatted, r.Relative, r.Long)
	}

	ok := len(report.Results) - report.Failed
	if report.Failed == 0 {
		green.Fprintf(w, "\n%d entries rendered\n", ok)
	} else {
		yellow.Fprintf(w, "\n%d entries rendered, %d failed\n", ok, report.Failed)
	}
	grey.Fprintf(w, "Relative to: %s\n", report.Now)
	return nil
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
