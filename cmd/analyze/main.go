// Command analyze prints quick, human-readable statistics about persisted
// sessions and configuration files. For sessions it summarizes scores,
// highest tiles, and how often moves came from the oracle versus the
// fallback; for configs it summarizes move caps and spawn probabilities.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"
)

// sessionFile is a light struct for reading persisted session files.
type sessionFile struct {
	ID         string `json:"id"`
	ConfigName string `json:"config_name"`
	GameState  struct {
		Board       [4][4]int `json:"board"`
		Score       int       `json:"score"`
		HighestTile int       `json:"highest_tile"`
		Terminal    bool      `json:"terminal"`
		TotalMoves  int       `json:"total_moves"`
		MoveHistory []struct {
			Direction string `json:"direction"`
			Source    string `json:"source"`
			Success   bool   `json:"success"`
		} `json:"move_history"`
	} `json:"game_state"`
}

// configFile is a light struct for reading config files used by analysis.
type configFile struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	TwoProbability float64 `json:"two_probability"`
	MaxMoves       int     `json:"max_moves"`
	Seed           int64   `json:"seed"`
	Oracle         struct {
		Model string `json:"model"`
	} `json:"oracle"`
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "Analyze persisted 2048 sessions and configurations",
		Commands: []*cli.Command{
			{
				Name:  "sessions",
				Usage: "Summarize persisted session files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: "sessions",
						Usage: "Directory containing persisted session JSON files",
					},
				},
				Action: analyzeSessions,
			},
			{
				Name:  "configs",
				Usage: "Summarize game configuration files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: "configs",
						Usage: "Directory containing game configuration JSON files",
					},
				},
				Action: analyzeConfigs,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func analyzeSessions(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading sessions directory: %w", err)
	}

	var sessions []sessionFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", entry.Name(), err)
			continue
		}
		var sess sessionFile
		if err := json.Unmarshal(data, &sess); err != nil {
			fmt.Printf("Skipping %s: %v\n", entry.Name(), err)
			continue
		}
		sessions = append(sessions, sess)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	fmt.Printf("Sessions: %d\n\n", len(sessions))

	totalScore := 0
	totalMoves := 0
	terminal := 0
	highestOverall := 0
	tileCounts := map[int]int{}
	sourceCounts := map[string]int{}
	illegal := 0

	for _, sess := range sessions {
		state := sess.GameState
		totalScore += state.Score
		totalMoves += state.TotalMoves
		if state.Terminal {
			terminal++
		}
		if state.HighestTile > highestOverall {
			highestOverall = state.HighestTile
		}
		tileCounts[state.HighestTile]++

		for _, move := range state.MoveHistory {
			source := move.Source
			if source == "" {
				source = "manual"
			}
			sourceCounts[source]++
			if !move.Success {
				illegal++
			}
		}
	}

	fmt.Printf("Average score: %.1f\n", float64(totalScore)/float64(len(sessions)))
	fmt.Printf("Average moves: %.1f\n", float64(totalMoves)/float64(len(sessions)))
	fmt.Printf("Finished games: %d/%d\n", terminal, len(sessions))
	fmt.Printf("Best tile overall: %d\n\n", highestOverall)

	fmt.Println("Highest tile distribution:")
	tiles := make([]int, 0, len(tileCounts))
	for tile := range tileCounts {
		tiles = append(tiles, tile)
	}
	sort.Ints(tiles)
	for _, tile := range tiles {
		fmt.Printf("  %5d: %d session(s)\n", tile, tileCounts[tile])
	}

	attempted := 0
	for _, count := range sourceCounts {
		attempted += count
	}
	if attempted > 0 {
		fmt.Println("\nMove sources:")
		for _, source := range []string{"oracle", "fallback", "manual"} {
			if count := sourceCounts[source]; count > 0 {
				fmt.Printf("  %-8s %d (%.1f%%)\n", source, count, 100*float64(count)/float64(attempted))
			}
		}
		fmt.Printf("\nIllegal move attempts: %d/%d\n", illegal, attempted)
	}

	return nil
}

func analyzeConfigs(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading configs directory: %w", err)
	}

	found := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		found++

		fmt.Printf("\n=== %s ===\n", entry.Name())

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			continue
		}

		var config configFile
		if err := json.Unmarshal(data, &config); err != nil {
			fmt.Printf("Error parsing JSON: %v\n", err)
			continue
		}

		fmt.Printf("Name: %s\n", config.Name)
		fmt.Printf("Description: %s\n", config.Description)
		fmt.Printf("Move cap: %d\n", config.MaxMoves)
		fmt.Printf("Spawn probabilities: 2 at %.0f%%, 4 at %.0f%%\n",
			config.TwoProbability*100, (1-config.TwoProbability)*100)
		if config.Seed != 0 {
			fmt.Printf("Fixed seed: %d (deterministic runs)\n", config.Seed)
		}
		if config.Oracle.Model != "" {
			fmt.Printf("Oracle model: %s\n", config.Oracle.Model)
		}

		if config.TwoProbability <= 0 || config.TwoProbability > 1 {
			fmt.Printf("WARNING: two_probability %.2f is outside (0, 1]\n", config.TwoProbability)
		}
	}

	if found == 0 {
		fmt.Println("No configs found.")
	}

	return nil
}
