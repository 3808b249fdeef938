package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in and configured pattern presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPresets(cmd.OutOrStdout())
	},
}

type presetEntry struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Description string `json:"description,omitempty"`
	BuiltIn     bool   `json:"built_in"`
}

func runPresets(w io.Writer) error {
	presets := cfg.AllPresets()

	if jsonOutput {
		entries := make([]presetEntry, 0, len(presets))
		for _, p := range presets {
			entries = append(entries, presetEntry{
				Name:        p.Name,
				Pattern:     p.Pattern,
				Description: p.Description,
				BuiltIn:     p.BuiltIn,
			})
		}
		return outputJSON(w, entries)
	}

	cyan.Fprintf(w, "%-12s %-24s %s\n", "Name", "Pattern", "Description")
	for _, p := range presets {
		fmt.Fprintf(w, "%-12s %-24s %s\n", p.Name, p.Pattern, p.Description)
	}

	if cfg.Path != "" {
		grey.Fprintf(w, "\nUser presets from: %s\n", cfg.Path)
	}
	return nil
}
