package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	config := loadConfig(os.Args[1:])

	board := initializeBoard(config)
	renderer := &model.TerminalRenderer{Out: os.Stdout}
	stats := utils.NewStats()
	stagnation := newStagnationDetector(config.StagnationThreshold)

	log.Printf("Board: %dx%d | Rule: %s | Initial living cells: %d",
		board.GetWidth(), board.GetHeight(), board.Rule(), board.Population())

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	status := "Active"
loop:
	for tick := 0; config.MaxGenerations == 0 || tick < config.MaxGenerations; tick++ {
		select {
		case <-sigChan:
			log.Println("Shutting down gracefully...")
			break loop
		default:
		}

		frameStart := time.Now()
		if config.Render {
			if err := renderer.Clear(); err != nil {
				log.Printf("Error clearing terminal: %v", err)
			}
			displayStatus(board, stats, status)
			if err := renderer.Display(board); err != nil {
				log.Printf("Error rendering board: %v", err)
			}
		}

		board.Update()
		population := board.Population()
		stats.Update(uint64(tick+1), population, time.Since(frameStart))

		if population == 0 || stagnation.Observe(board.Hash()) {
			status = "Stagnant"
			if population == 0 {
				status = "Extinct"
			}
			if !config.AutoRestart {
				log.Printf("Stopping at generation %d: %s", board.Generation(), status)
				break
			}
			log.Printf("Restarting at generation %d: %s", board.Generation(), status)
			resetBoard(config, board)
			stagnation.Reset()
			status = "Active"
		}

		time.Sleep(frameDelay(config, frameStart))
	}

	if err := exportBoard(config, board); err != nil {
		log.Printf("Export failed: %+v", err)
	} else if config.ExportFile != "" {
		log.Printf("Exported board to %s", config.ExportFile)
	}

	log.Printf("Final stats: %d generations in %.1fs | Population range: %d-%d | Avg: %.1f",
		stats.TotalGenerations, stats.Runtime().Seconds(),
		stats.MinPopulation, stats.MaxPopulation, stats.AveragePopulation)
}
