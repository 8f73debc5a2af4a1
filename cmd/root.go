package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/ui"
)

var log = logrus.New()

var (
	gameConfig   = game.NewConfig()
	configPath   string
	snapshotPath string
	logLevel     string
	directorName = directorValue("")
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	gosweep

Left click reveals, right click flags, middle click reveals around a
satisfied number. Enter starts a new game, Escape gives up.

Use the director flag to make the computer play for you
	gosweep --director constraint
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		game.SetLogger(log)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd)
		if err != nil {
			return err
		}

		options := ui.Options{Log: log}
		if directorName != "" {
			options.Director = directorName.create(nil)
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = ui.Run(session, options)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// resolveConfig merges defaults, the config file and explicitly set flags
func resolveConfig(cmd *cobra.Command) (game.Config, error) {
	config := game.NewConfig()
	if configPath != "" {
		var err error
		if config, err = game.LoadConfig(configPath, config); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		config.Rows = gameConfig.Rows
	}
	if flags.Changed("cols") {
		config.Cols = gameConfig.Cols
	}
	if flags.Changed("mines") {
		config.Mines = gameConfig.Mines
	} else if flags.Changed("rows") || flags.Changed("cols") {
		config.Mines = game.DefaultMines(config.Rows, config.Cols)
	}

	normalized := config.Normalize()
	if normalized != config {
		log.WithFields(logrus.Fields{
			"requested": fmt.Sprintf("%dx%d/%d", config.Rows, config.Cols, config.Mines),
			"using":     fmt.Sprintf("%dx%d/%d", normalized.Rows, normalized.Cols, normalized.Mines),
		}).Warn("adjusted board configuration")
	}
	return normalized, nil
}

func newSession(cmd *cobra.Command) (*game.Session, error) {
	if snapshotPath == "" {
		config, err := resolveConfig(cmd)
		if err != nil {
			return nil, err
		}
		return game.NewSession(config), nil
	}

	in, err := os.ReadFile(snapshotPath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", snapshotPath)
	}
	snapshot, err := game.LoadSnapshot(in)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", snapshotPath)
	}
	session, err := game.NewSessionFromSnapshot(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", snapshotPath)
	}
	return session, nil
}

type directorValue string

var directors = map[string]func(rng *rand.Rand) game.Director{
	"random": func(rng *rand.Rand) game.Director {
		return random.New(rng)
	},
	"constraint": func(rng *rand.Rand) game.Director {
		return constraint.New(rng)
	},
}

func directorNames() string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	if _, isValid := directors[name]; !isValid {
		return fmt.Errorf("invalid director %q (choose from %s)", name, directorNames())
	}
	*value = directorValue(name)
	return nil
}

func (value *directorValue) Type() string {
	return "director"
}

func (value directorValue) create(rng *rand.Rand) game.Director {
	return directors[string(value)](rng)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&gameConfig.Rows, "rows", "r", game.DefaultRows, "Number of rows on the game board")
	flags.IntVarP(&gameConfig.Cols, "cols", "c", game.DefaultCols, "Number of columns on the game board")
	flags.IntVarP(&gameConfig.Mines, "mines", "m", gameConfig.Mines, "Number of mines to place (default 10% of cells)")
	flags.StringVar(&configPath, "config", "", "YAML file with rows, cols and mines")
	flags.StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board from a snapshot file")
	rootCmd.Flags().VarP(&directorName, "director", "d", fmt.Sprintf("Make the computer play (%s)", directorNames()))

	rootCmd.AddCommand(generateCmd, autoplayCmd)
}
