package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// TwoProbability is the chance a spawned tile is a 2; the rest are 4s.
	TwoProbability float64 `json:"two_probability"`

	// MaxMoves caps a single auto-played game. It is a safety bound, not a
	// game rule.
	MaxMoves int `json:"max_moves"`

	// Seed fixes the tile-spawn RNG when nonzero. Zero means time-seeded.
	Seed int64 `json:"seed,omitempty"`

	Oracle OracleConfig `json:"oracle"`

	Messages struct {
		Welcome  string `json:"welcome"`
		Move     string `json:"move"`
		Illegal  string `json:"illegal"`
		Terminal string `json:"terminal"`
		MoveCap  string `json:"move_cap"`
	} `json:"messages"`
}

// OracleConfig holds the settings used when consulting the move oracle.
type OracleConfig struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// ValidateGameConfig validates a game configuration for correctness
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config cannot be nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.TwoProbability <= 0 || config.TwoProbability > 1 {
		return fmt.Errorf("config validation: two_probability must be in (0, 1], got %v", config.TwoProbability)
	}

	if config.MaxMoves < MinMaxMoves || config.MaxMoves > MaxMaxMoves {
		return fmt.Errorf("config validation: max_moves must be between %d and %d, got %d", MinMaxMoves, MaxMaxMoves, config.MaxMoves)
	}

	if config.Oracle.Model == "" {
		return fmt.Errorf("config validation: oracle.model is required")
	}
	if config.Oracle.MaxTokens <= 0 {
		return fmt.Errorf("config validation: oracle.max_tokens must be positive, got %d", config.Oracle.MaxTokens)
	}
	if config.Oracle.Temperature < 0 || config.Oracle.Temperature > 1 {
		return fmt.Errorf("config validation: oracle.temperature must be between 0 and 1, got %v", config.Oracle.Temperature)
	}

	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Terminal == "" {
		return fmt.Errorf("config validation: messages.terminal is required")
	}

	// Validate format strings
	if config.Messages.Move != "" && !strings.Contains(config.Messages.Move, "%d") {
		return fmt.Errorf("config validation: messages.move must contain %%d for the move number")
	}
	if !strings.Contains(config.Messages.Terminal, "%d") {
		return fmt.Errorf("config validation: messages.terminal must contain %%d for the final score")
	}

	return nil
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultGameConfig returns the built-in configuration used when no config
// file is available.
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:           "classic",
		Description:    "Classic 2048: merge tiles, chase the 2048 tile",
		TwoProbability: DefaultTwoProb,
		MaxMoves:       DefaultMaxMoves,
		Oracle: OracleConfig{
			Model:       DefaultOracleModel,
			MaxTokens:   16000,
			Temperature: 0.1,
		},
	}
	config.Messages.Welcome = "New game! Two tiles placed. Merge your way to 2048."
	config.Messages.Move = "Move #%d, score: %d"
	config.Messages.Illegal = "That direction doesn't change the board"
	config.Messages.Terminal = "Game over! No legal moves left. Final score: %d"
	config.Messages.MoveCap = "Move cap reached after %d moves"
	return config
}

// InitGameStateFromConfig creates a new game state using the provided
// configuration and spawner. A nil config falls back to the defaults.
func InitGameStateFromConfig(config *GameConfig, spawner *Spawner) *GameState {
	if config == nil {
		config = DefaultGameConfig()
	}
	if spawner == nil {
		spawner = NewSpawnerWithProbability(nil, config.TwoProbability)
	}

	board := spawner.InitBoard()

	return &GameState{
		Board:             board,
		Score:             board.Score(),
		HighestTile:       board.HighestTile(),
		Terminal:          false,
		Message:           config.Messages.Welcome,
		ConfigName:        config.Name,
		MoveHistory:       []MoveHistoryEntry{},
		TotalMoves:        0,
		CurrentMoves:      []MoveHistoryEntry{},
		CurrentMovesCount: 0,
	}
}
