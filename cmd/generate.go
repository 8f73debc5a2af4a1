package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/game"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a freshly generated board as a snapshot",
	Long: `Print a freshly generated board as a YAML snapshot, suitable for
loading with --snapshot.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		session := game.NewSession(config)
		fmt.Fprint(cmd.OutOrStdout(), session.Snapshot().Serialize())
		return nil
	},
}
