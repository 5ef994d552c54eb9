package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// BoardSize is the fixed edge length of the grid.
	BoardSize = 4

	// Validation constants
	MinMaxMoves        = 1
	MaxMaxMoves        = 100000
	DefaultMaxMoves    = 1000
	DefaultTwoProb     = 0.9
	DefaultOracleModel = "claude-sonnet-4-20250514"
)

// Move represents one of the four slide directions.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveUp
	MoveDown
)

// Moves lists all directions in their fixed enumeration order. Legal-move
// results and fallback selection both follow this order.
var Moves = []Move{MoveLeft, MoveRight, MoveUp, MoveDown}

// String returns the lowercase direction name.
func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	}
	return fmt.Sprintf("move(%d)", int(m))
}

// ParseMove converts a direction name (any case) to a Move.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return MoveLeft, nil
	case "right":
		return MoveRight, nil
	case "up":
		return MoveUp, nil
	case "down":
		return MoveDown, nil
	}
	return 0, fmt.Errorf("invalid direction: %q", s)
}

// MarshalJSON serializes moves as lowercase direction strings.
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON parses a lowercase direction string.
func (m *Move) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMove(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Board is a 4x4 grid of tile values. Zero means empty; every nonzero cell
// holds a power of two >= 2. Board is a value type: operations return new
// boards rather than mutating in place.
type Board [BoardSize][BoardSize]int

// Position identifies a cell by row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Transpose mirrors the board across its main diagonal.
func (b Board) Transpose() Board {
	var out Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			out[c][r] = b[r][c]
		}
	}
	return out
}

// FlipHorizontal reverses each row.
func (b Board) FlipHorizontal() Board {
	var out Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			out[r][BoardSize-1-c] = b[r][c]
		}
	}
	return out
}

// EmptyCells returns the positions of all zero cells in row-major order.
func (b Board) EmptyCells() []Position {
	var empty []Position
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == 0 {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}

// Score returns the sum of all tile values.
func (b Board) Score() int {
	total := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			total += b[r][c]
		}
	}
	return total
}

// HighestTile returns the largest tile value on the board.
func (b Board) HighestTile() int {
	highest := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b[r][c] > highest {
				highest = b[r][c]
			}
		}
	}
	return highest
}

// Render formats the board as fixed-width text with "." for empty cells.
// This is the representation shown to the oracle and written to logs.
func (b Board) Render() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		cells := make([]string, BoardSize)
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == 0 {
				cells[c] = fmt.Sprintf("%4s", ".")
			} else {
				cells[c] = fmt.Sprintf("%4d", b[r][c])
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// GameState represents the complete game state.
type GameState struct {
	Board       Board  `json:"board"`
	Score       int    `json:"score"`
	HighestTile int    `json:"highest_tile"`
	Terminal    bool   `json:"terminal"`
	Message     string `json:"message"`
	ConfigName  string `json:"config_name"`

	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`

	// CurrentMoves tracks only the moves since the last reset. It mirrors
	// MoveHistory entries but gets cleared on reset while MoveHistory
	// remains cumulative.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`
}

// MoveHistoryEntry represents a single move attempt in the game history.
type MoveHistoryEntry struct {
	Direction   Move      `json:"direction"`
	BoardBefore Board     `json:"board_before"`
	BoardAfter  Board     `json:"board_after"`
	Spawned     int       `json:"spawned,omitempty"`
	SpawnedAt   *Position `json:"spawned_at,omitempty"`
	Rationale   string    `json:"rationale,omitempty"`
	Source      string    `json:"source,omitempty"` // "oracle", "fallback", or "manual"
	Success     bool      `json:"success"`
	Timestamp   int64     `json:"timestamp"`
	MoveNumber  int       `json:"move_number"`
}

// MovePreview pairs a legal move with the board it would produce before
// tile spawning.
type MovePreview struct {
	Move  Move  `json:"move"`
	Board Board `json:"board"`
}
