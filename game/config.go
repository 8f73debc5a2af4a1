package game

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Mines int `yaml:"mines"`
}

func NewConfig() Config {
	return Config{
		Rows:  DefaultRows,
		Cols:  DefaultCols,
		Mines: DefaultMines(DefaultRows, DefaultCols),
	}
}

// DefaultMines is the mine count used for a rows×cols board when none is given
func DefaultMines(rows, cols int) int {
	return int(float64(rows*cols) * DefaultMineDensity)
}

func (config Config) NumCells() int {
	return config.Rows * config.Cols
}

// Normalize clamps the configuration into a playable one. Dimensions below 1
// become 1, a negative mine count becomes 0, and a mine count that does not
// fit the board falls back to the default density.
func (config Config) Normalize() Config {
	if config.Rows < 1 {
		config.Rows = 1
	}
	if config.Cols < 1 {
		config.Cols = 1
	}
	if config.Mines < 0 {
		config.Mines = 0
	}
	if config.Mines > config.NumCells() {
		config.Mines = DefaultMines(config.Rows, config.Cols)
	}
	return config
}

func (config Config) mustBeValid() {
	if config.Rows < 1 || config.Cols < 1 {
		panic(fmt.Sprintf("game: invalid board dimensions %dx%d", config.Rows, config.Cols))
	}
	if config.Mines < 0 || config.Mines > config.NumCells() {
		panic(fmt.Sprintf("game: cannot place %d mines on a %dx%d board", config.Mines, config.Rows, config.Cols))
	}
}

type configFile struct {
	Rows  *int `yaml:"rows"`
	Cols  *int `yaml:"cols"`
	Mines *int `yaml:"mines"`
}

// ParseConfig overlays YAML settings onto base. When the board size changes
// but no mine count is given, the mine count follows the default density.
// The result is not normalized.
func ParseConfig(in []byte, base Config) (Config, error) {
	var file configFile
	if err := yaml.UnmarshalStrict(in, &file); err != nil {
		return base, errors.Wrap(err, "parsing config")
	}

	config := base
	if file.Rows != nil {
		config.Rows = *file.Rows
	}
	if file.Cols != nil {
		config.Cols = *file.Cols
	}
	if file.Mines != nil {
		config.Mines = *file.Mines
	} else if config.Rows != base.Rows || config.Cols != base.Cols {
		config.Mines = DefaultMines(config.Rows, config.Cols)
	}
	return config, nil
}

// LoadConfig reads a YAML config file and overlays it onto base
func LoadConfig(path string, base Config) (Config, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrapf(err, "reading config %s", path)
	}

	config, err := ParseConfig(in, base)
	if err != nil {
		return base, errors.Wrapf(err, "in %s", path)
	}
	return config, nil
}
