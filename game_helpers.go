package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/pattern"
	"github.com/sheikhrachel/go-life/utils"
)

// defaultConfigFiles are tried in order when no config path is given
var defaultConfigFiles = []string{"config.yaml", "config.yml", "config.json"}

// loadConfig reads the config named on the command line, or the first default
// config file that exists, falling back to defaults
func loadConfig(args []string) utils.Config {
	if len(args) > 0 {
		config, err := utils.LoadConfig(args[0])
		if err != nil {
			log.Fatalf("failed to load config: %+v", err)
		}
		return config
	}

	for _, name := range defaultConfigFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		config, err := utils.LoadConfig(name)
		if err != nil {
			log.Fatalf("failed to load config: %+v", err)
		}
		return config
	}

	log.Println("Using default configuration (no config file found)")
	return utils.DefaultConfig()
}

// initializeBoard creates the board and fills it from the pattern file or randomly
func initializeBoard(config utils.Config) *model.Board {
	board := model.NewBoard(config.Width, config.Height)
	if config.Workers > 0 {
		board.SetWorkers(config.Workers)
	}
	if config.Seed != 0 {
		board.SetSeed(config.Seed)
	}
	resetBoard(config, board)
	return board
}

// resetBoard reloads the pattern file, or randomizes the board when there is
// none or it fails to load
func resetBoard(config utils.Config, board *model.Board) {
	if config.PatternFile != "" {
		err := board.InitWithFile(config.PatternFile)
		if err == nil {
			return
		}
		log.Printf("Falling back to a random board: %v", err)
	}
	board.InitRandomly(config.Chance)
}

// exportBoard writes the final board to the configured export file
func exportBoard(config utils.Config, board *model.Board) error {
	if config.ExportFile == "" {
		return nil
	}

	format, ok := pattern.FormatForPath(config.ExportFile)
	if config.ExportFormat != "" {
		var err error
		if format, err = pattern.ParseFormat(config.ExportFormat); err != nil {
			return errors.Wrap(err, "[exportBoard] invalid export format")
		}
	} else if !ok {
		format = pattern.RLE
	}

	if err := board.Pattern().WriteFile(config.ExportFile, format); err != nil {
		return errors.Wrapf(err, "[exportBoard] failed to export board as %s", format)
	}
	return nil
}

// displayStatus shows the current board status
func displayStatus(board *model.Board, stats *utils.Stats, status string) {
	name := board.GetName()
	if name == "" {
		name = "random"
	}
	population := board.Population()
	density := float64(population) / float64(board.GetWidth()*board.GetHeight()) * 100

	fmt.Printf("%s | Gen: %d | Living: %d | Density: %.1f%% | Rule: %s | Status: %s\n",
		name, board.Generation(), population, density, board.Rule(), status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

// stagnationDetector remembers recent board hashes to spot still lifes and
// short oscillators
type stagnationDetector struct {
	history []string
	size    int
}

func newStagnationDetector(size int) *stagnationDetector {
	return &stagnationDetector{size: max(size, 1)}
}

// Observe records a board hash and reports whether it was seen recently
func (d *stagnationDetector) Observe(hash string) bool {
	seen := false
	for _, h := range d.history {
		if h == hash {
			seen = true
			break
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > d.size {
		d.history = d.history[1:]
	}
	return seen
}

// Reset forgets the recorded history
func (d *stagnationDetector) Reset() {
	d.history = nil
}

// frameDelay returns how long to wait before the next frame
func frameDelay(config utils.Config, frameStart time.Time) time.Duration {
	if !config.Render {
		return 0
	}
	return max(config.FrameRate-time.Since(frameStart), 0)
}
