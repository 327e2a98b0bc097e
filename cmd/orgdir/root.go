package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbose bool
	var jsonOutput bool
	opts := organizeOptions{}

	ctx := newCommandContext(&configFlag, &verbose, &jsonOutput)

	rootCmd := &cobra.Command{
		Use:           "orgdir",
		Short:         "Organize your digital mess",
		Long:          "Sort the files directly inside a directory into category folders by file extension.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showConfigPath {
				return runShowConfigPath(cmd, ctx)
			}
			return runOrganize(cmd, ctx, opts)
		},
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit machine-readable JSON")

	rootCmd.Flags().StringVarP(&opts.path, "path", "p", cwd, "Directory to organize")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview changes without moving files")
	rootCmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&opts.showConfigPath, "config-path", false, "Show the configuration file path and exit")

	rootCmd.AddCommand(newCategoriesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
