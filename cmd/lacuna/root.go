package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hierophect/lacuna-tools/internal/config"
	"github.com/hierophect/lacuna-tools/internal/logging"
)

var (
	cfgFile    string
	priorFiles []string
	issuesOnly bool
	verbose    bool
	debug      bool
	listInfos  bool
	outPath    string

	cfg    *config.Config
	logger *logging.Logger
)

// newRootCmd builds the single-command CLI tree: a positional primary
// file and the flag set spec.md §6 describes.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lacuna FILE",
		Short: "Parse and validate a literate deck-description file",
		Long: `lacuna scans a semicolon-delimited deck-description file for
categories, groups, pair groups and chapter templates, resolves the
cross-references between them, and reports the result as a JSON
document tree plus a stream of diagnostics.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			applyFlagOverrides(cmd, cfg)

			level := cfg.LogLevel
			if cfg.Debug {
				level = "debug"
			}
			logger = logging.New(logging.Config{Level: level, Console: true})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], cfg)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "optional YAML file of default flag values")
	cmd.Flags().StringSliceVarP(&priorFiles, "prior-files", "f", nil, "preceding decks to supply data to the current file")
	cmd.Flags().BoolVarP(&issuesOnly, "issues-only", "i", false, "only print the list of issues, excluding JSON output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print lines as they're processed")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "print debug information when the fault boundary recovers")
	cmd.Flags().BoolVarP(&listInfos, "list-infos", "l", false, "show additional information about deck redundancy")
	cmd.Flags().StringVar(&outPath, "out", "", "write JSON output to this path instead of stdout")

	return cmd
}

// applyFlagOverrides layers flags the user actually set on top of
// whatever Load populated from a YAML file; flags always win.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("issues-only") {
		cfg.IssuesOnly = issuesOnly
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debug
	}
	if cmd.Flags().Changed("list-infos") {
		cfg.ListInfos = listInfos
	}
	if cmd.Flags().Changed("out") {
		cfg.OutPath = outPath
	}
	issuesOnly, verbose, debug, listInfos, outPath = cfg.IssuesOnly, cfg.Verbose, cfg.Debug, cfg.ListInfos, cfg.OutPath
}
