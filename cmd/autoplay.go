package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director"
)

var (
	autoplayGames    int
	autoplayMaxSteps int
	autoplayDirector = directorValue("constraint")
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a director play games without a window and report how it did",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		result := director.Autoplay(config, autoplayDirector.create(rng), autoplayGames, autoplayMaxSteps)

		log.WithFields(logrus.Fields{
			"director": autoplayDirector,
			"games":    result.Games,
			"won":      result.Won,
			"lost":     result.Lost,
		}).Info("autoplay finished")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: won %d of %d games (%.1f%%)\n",
			autoplayDirector, result.Won, result.Games, result.WinRate()*100)
		return nil
	},
}

func init() {
	autoplayCmd.Flags().IntVarP(&autoplayGames, "games", "n", 100, "Number of games to play")
	autoplayCmd.Flags().IntVar(&autoplayMaxSteps, "max-steps", 10000, "Give up a game after this many director steps")
	autoplayCmd.Flags().VarP(&autoplayDirector, "director", "d", fmt.Sprintf("Director to play with (%s)", directorNames()))
}
