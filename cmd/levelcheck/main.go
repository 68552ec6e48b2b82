package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "levelcheck",
		Short:        "Validate and inspect tilegame level documents",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log loader diagnostics")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	var manifestOnly bool

	cmd := &cobra.Command{
		Use:   "validate [level-file...]",
		Short: "Check that level documents load; exits non-zero if any fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newResolver(manifestOnly)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), res, args)
		},
	}

	cmd.Flags().BoolVar(&manifestOnly, "manifest-only", false, "check asset ids against the manifest without decoding images")
	return cmd
}

func inspectCmd() *cobra.Command {
	var manifestOnly bool

	cmd := &cobra.Command{
		Use:   "inspect [level-file]",
		Short: "Print a summary of one level document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newResolver(manifestOnly)
			if err != nil {
				return err
			}
			return runInspect(cmd.OutOrStdout(), res, args[0])
		},
	}

	cmd.Flags().BoolVar(&manifestOnly, "manifest-only", false, "check asset ids against the manifest without decoding images")
	return cmd
}
