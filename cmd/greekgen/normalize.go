package main

import (
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <word>",
	Short: "Normalize a Greek word to its lemma with gender and article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, err := setup(cmd)
		if err != nil {
			return err
		}

		l, err := a.Lemmas.Normalize(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), l)
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
