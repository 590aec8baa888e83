package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mygreek-backend/internal/service/wordgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <word>",
	Short: "Generate a noun vocabulary entry for a Greek word",
	Long: `Generate normalizes the word, asks the default model for a complete noun
entry and prints it as JSON. With --verify the entry is regenerated by the
secondary model and the two are compared field by field; --parallel runs
both generations at the same time. Without either flag the generation
section of the configuration decides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		generate := a.Words.Generate
		if cmd.Flags().Changed("verify") || cmd.Flags().Changed("parallel") {
			var opts wordgen.Options
			opts.Verify, _ = cmd.Flags().GetBool("verify")
			opts.Parallel, _ = cmd.Flags().GetBool("parallel")
			if opts.Parallel && !opts.Verify {
				logger.Warn("--parallel has no effect without --verify")
			}
			generate = func(ctx context.Context, word string) (*wordgen.Result, error) {
				return a.Words.GenerateWithOptions(ctx, word, opts)
			}
		}

		res, err := generate(cmd.Context(), args[0])
		if err != nil {
			logger.Error("generation failed",
				slog.String("word", args[0]),
				slog.String("error", err.Error()),
			)
			return err
		}
		return writeJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	generateCmd.Flags().Bool("verify", false, "cross-check the entry with the secondary model")
	generateCmd.Flags().Bool("parallel", false, "run the secondary generation concurrently (with --verify)")

	rootCmd.AddCommand(generateCmd)
}
