// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Spawn probability within (0, 1]
//   - Move cap within the supported range
//   - Oracle settings (model, token budget, temperature)
//   - Required message templates and their format verbs
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config mirrors the JSON schema for a game configuration.
type Config struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	TwoProbability float64 `json:"two_probability"`
	MaxMoves       int     `json:"max_moves"`
	Seed           int64   `json:"seed"`
	Oracle         struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
	} `json:"oracle"`
	Messages struct {
		Welcome  string `json:"welcome"`
		Move     string `json:"move"`
		Illegal  string `json:"illegal"`
		Terminal string `json:"terminal"`
		MoveCap  string `json:"move_cap"`
	} `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

const (
	minMaxMoves = 1
	maxMaxMoves = 100000
)

// validateConfig loads and validates a single configuration JSON file.
// It performs structural checks, range checks on the spawn probability and
// move cap, and message template validation.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if strings.TrimSpace(config.Name) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "name is required")
	}

	// Spawn probability
	if config.TwoProbability <= 0 || config.TwoProbability > 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("two_probability must be in (0, 1], got %g", config.TwoProbability))
	}

	// Move cap
	if config.MaxMoves < minMaxMoves || config.MaxMoves > maxMaxMoves {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max_moves must be in [%d, %d], got %d", minMaxMoves, maxMaxMoves, config.MaxMoves))
	}

	// Oracle settings
	if strings.TrimSpace(config.Oracle.Model) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "oracle.model is required")
	}
	if config.Oracle.MaxTokens <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("oracle.max_tokens must be positive, got %d", config.Oracle.MaxTokens))
	}
	if config.Oracle.Temperature < 0 || config.Oracle.Temperature > 1 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("oracle.temperature must be in [0, 1], got %g", config.Oracle.Temperature))
	}

	// Message templates
	if strings.TrimSpace(config.Messages.Welcome) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "messages.welcome is required")
	}
	if strings.TrimSpace(config.Messages.Terminal) == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "messages.terminal is required")
	} else if !strings.Contains(config.Messages.Terminal, "%d") {
		result.Valid = false
		result.Errors = append(result.Errors, "messages.terminal must contain a %d verb for the final score")
	}
	if config.Messages.Move != "" && !strings.Contains(config.Messages.Move, "%d") {
		result.Valid = false
		result.Errors = append(result.Errors, "messages.move must contain a %d verb for the move number")
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Spawn: 2 at %.0f%%, 4 at %.0f%%", config.TwoProbability*100, (1-config.TwoProbability)*100))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Move cap: %d", config.MaxMoves))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Oracle: %s (max_tokens=%d, temperature=%g)", config.Oracle.Model, config.Oracle.MaxTokens, config.Oracle.Temperature))
		if config.Seed != 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Seed: %d (deterministic)", config.Seed))
		}
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
