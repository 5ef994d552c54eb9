package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrGameOver signals a move attempt on a terminal board. The terminal
// state is absorbing: once no direction is legal, no further moves are
// accepted until a reset.
var ErrGameOver = errors.New("game over: no moves accepted")

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	GetScore() int
	GetHighestTile() int
	GetBoard() Board

	// Movement operations
	Move(direction Move) error
	MoveWithRationale(direction Move, rationale, source string) error
	CanMove(direction Move) bool
	GetPossibleMoves() []Move
	GetPreviews() []MovePreview

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state   *GameState
	config  *GameConfig
	spawner *Spawner
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newEngine(config, rand.New(rand.NewSource(seed))), nil
}

// NewEngineWithRand creates a new game engine with an explicit random
// source, used by tests to make tile placement deterministic.
func NewEngineWithRand(config *GameConfig, rng *rand.Rand) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	return newEngine(config, rng), nil
}

// NewEngineWithDefaults creates a new game engine with default configuration
func NewEngineWithDefaults() *GameEngine {
	config := DefaultGameConfig()
	return newEngine(config, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newEngine(config *GameConfig, rng *rand.Rand) *GameEngine {
	spawner := NewSpawnerWithProbability(rng, config.TwoProbability)
	return &GameEngine{
		config:  config,
		spawner: spawner,
		state:   InitGameStateFromConfig(config, spawner),
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Reset starts a new game with two fresh seed tiles
func (e *GameEngine) Reset() *GameState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = InitGameStateFromConfig(e.config, e.spawner)

	// Restore cumulative history and totals; clear only the current segment
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal
	e.state.CurrentMoves = []MoveHistoryEntry{}
	e.state.CurrentMovesCount = 0

	return e.state
}

// IsGameOver returns whether the game is over
func (e *GameEngine) IsGameOver() bool {
	return e.state.Terminal
}

// GetScore returns the current score (sum of all tiles)
func (e *GameEngine) GetScore() int {
	return e.state.Score
}

// GetHighestTile returns the largest tile on the board
func (e *GameEngine) GetHighestTile() int {
	return e.state.HighestTile
}

// GetBoard returns a snapshot of the current board
func (e *GameEngine) GetBoard() Board {
	return e.state.Board
}

// Move attempts to slide the board in the specified direction
func (e *GameEngine) Move(direction Move) error {
	return e.MoveWithRationale(direction, "", "manual")
}

// MoveWithRationale slides the board and records where the choice came from
// ("oracle", "fallback", or "manual") along with any free-text rationale.
func (e *GameEngine) MoveWithRationale(direction Move, rationale, source string) error {
	if e.state.Terminal {
		return ErrGameOver
	}

	before := e.state.Board

	merged, err := Apply(before, direction)
	if err != nil {
		e.state.Message = e.config.Messages.Illegal
		e.addMoveToHistory(MoveHistoryEntry{
			Direction:   direction,
			BoardBefore: before,
			BoardAfter:  before,
			Rationale:   rationale,
			Source:      source,
			Success:     false,
		})
		return err
	}

	// Spawn is a no-op on a full board; the game continues until the
	// legal-move scan says otherwise.
	after, spawned, spawnedAt, _ := e.spawner.Spawn(merged)

	e.state.Board = after
	e.state.Score = after.Score()
	e.state.HighestTile = after.HighestTile()
	e.addMoveToHistory(MoveHistoryEntry{
		Direction:   direction,
		BoardBefore: before,
		BoardAfter:  after,
		Spawned:     spawned,
		SpawnedAt:   spawnedAt,
		Rationale:   rationale,
		Source:      source,
		Success:     true,
	})

	if IsTerminal(after) {
		e.state.Terminal = true
		e.state.Message = fmt.Sprintf(e.config.Messages.Terminal, e.state.Score)
	} else if e.config.Messages.Move != "" {
		e.state.Message = fmt.Sprintf(e.config.Messages.Move, e.state.CurrentMovesCount, e.state.Score)
	}

	return nil
}

// CanMove checks if sliding in the given direction would change the board
func (e *GameEngine) CanMove(direction Move) bool {
	if e.state.Terminal {
		return false
	}
	return IsLegal(e.state.Board, direction)
}

// GetPossibleMoves returns all legal directions in enumeration order
func (e *GameEngine) GetPossibleMoves() []Move {
	if e.state.Terminal {
		return nil
	}
	return LegalMoves(e.state.Board)
}

// GetPreviews returns the pre-spawn resulting board for each legal move
func (e *GameEngine) GetPreviews() []MovePreview {
	if e.state.Terminal {
		return nil
	}
	return PreviewAll(e.state.Board)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	e.spawner = NewSpawnerWithProbability(e.spawner.rng, config.TwoProbability)
	e.state = InitGameStateFromConfig(config, e.spawner)
	return nil
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// addMoveToHistory appends an entry to both the cumulative history and the
// current-game segment, stamping time and move numbers.
func (e *GameEngine) addMoveToHistory(entry MoveHistoryEntry) {
	e.state.TotalMoves++
	entry.Timestamp = time.Now().Unix()
	entry.MoveNumber = e.state.TotalMoves

	e.state.MoveHistory = append(e.state.MoveHistory, entry)
	e.state.CurrentMoves = append(e.state.CurrentMoves, entry)
	if entry.Success {
		e.state.CurrentMovesCount++
	}
}
