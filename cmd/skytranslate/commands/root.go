// Package commands provides the CLI commands for the skytranslate tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"martianoff/skytranslate/internal/config"
	"martianoff/skytranslate/internal/logging"
	"martianoff/skytranslate/internal/translator"
)

var (
	cfg       = config.DefaultConfig()
	listRules bool
	logger    *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "skytranslate [file...]",
	Short: "Translate build definitions to the Skylark dialect",
	Long: `skytranslate rewrites build definition files so that they load under Skylark.

Each file is read, rewritten and written under its base name into the output
directory (the current directory by default), overwriting any existing file.
The rewrite is textual and best effort:
  - PEP-484 parameter annotations (bool, int, str, list, dict, function) are removed
  - "raise Error(args)" lines become "fail(args)"
  - " is None" becomes " == None"

Examples:
  skytranslate rules/go.build_defs rules/cc.build_defs
  skytranslate -o skylark rules/*.build_defs
  skytranslate --list-rules`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(cfg.Verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTranslate,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "Directory to write translated files to")
	rootCmd.Flags().BoolVar(&listRules, "list-rules", false, "Print the rewrite rules in order and exit")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log each file as it is rewritten")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	t := translator.New()

	if listRules {
		for i, name := range t.Rules() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
		}
		return nil
	}

	if len(args) == 0 {
		return nil
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}

	return translator.NewFileRewriter(cfg, t, logger).RewriteAll(args)
}
