package cmd

import (
	"fmt"

	colour "github.com/fatih/color"
	"github.com/nickromney-org/date-formatter/internal/config"
	"github.com/nickromney-org/date-formatter/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	jsonOutput  bool
	verbose     bool
	configPath  string
	showVersion bool

	// Version information (set via SetVersionInfo from main)
	buildInfo = version.Info{
		Version:   "dev",
		BuildTime: "unknown",
		GitCommit: "unknown",
	}

	// Loaded in setup before any subcommand runs
	cfg    = config.Default()
	logger = zerolog.Nop()

	// Colours for output
	green  = colour.New(colour.FgGreen, colour.Bold)
	yellow = colour.New(colour.FgYellow, colour.Bold)
	red    = colour.New(colour.FgRed, colour.Bold)
	cyan   = colour.New(colour.FgCyan)
	grey   = colour.New(colour.FgHiBlack) // Faint grey for footers
)

// SetVersionInfo sets the version information from the main package
func SetVersionInfo(ver, build, commit string) {
	buildInfo = version.Info{
		Version:   ver,
		BuildTime: build,
		GitCommit: commit,
	}
}

var rootCmd = &cobra.Command{
	Use:   "datefmt",
	Short: "Parse dates from timestamps or strings and format them",
	Long: `Parse a date given as an epoch timestamp (seconds or milliseconds) or a
date string, then render it with a custom pattern, as a relative phrase such
as "3 days ago", or as a long-form date like "December 1, 2024".

Patterns use the tokens YYYY, MM, DD, HH, mm and ss. Named presets such as
"iso", "uk" or "datetime" can be used wherever a pattern is expected.`,
	Example: `  # Format a timestamp with the default pattern
  datefmt format 1733032145

  # Format with a preset or a custom pattern
  datefmt format 2024-12-01T08:29:05Z -p datetime
  datefmt format 1733032145000 -p "DD/MM/YYYY HH:mm"

  # Relative and long-form output
  datefmt relative "2024-11-28 10:15:30"
  datefmt long 1733032145

  # Parse text against an explicit pattern
  datefmt convert 01/12/2024 DD/MM/YYYY

  # JSON output for automation
  datefmt format 1733032145 --json`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/datefmt/config.toml, or DATEFMT_CONFIG)")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "show version information")

	rootCmd.AddCommand(formatCmd, relativeCmd, longCmd, convertCmd, batchCmd, presetsCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		red.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// setup configures logging and loads the config file before any command runs
func setup(cmd *cobra.Command, args []string) error {
	logger = newLogger(cmd.ErrOrStderr(), verbose)

	loaded, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded

	if cfg.Path != "" {
		logger.Debug().Str("path", cfg.Path).Msg("loaded config file")
	} else {
		logger.Debug().Str("dir", config.Dir()).Msg("no config file found, using defaults")
	}
	logger.Debug().Str("default_pattern", cfg.DefaultPattern).Int("presets", len(cfg.Presets)).Msg("configuration ready")

	return nil
}

// versionOutput is the --version --json document
type versionOutput struct {
	version.Info
	DisplayVersion string `json:"display_version"`
	Release        bool   `json:"release"`
}

func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), versionOutput{
				Info:           buildInfo,
				DisplayVersion: buildInfo.DisplayVersion(),
				Release:        buildInfo.IsRelease(),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		return nil
	}

	return cmd.Help()
}
