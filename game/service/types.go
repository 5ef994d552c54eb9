package service

import (
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a single move operation
type MoveResult struct {
	Success    bool                 `json:"success"`
	GameState  *engine.GameState    `json:"game_state"`
	Message    string               `json:"message"`
	Events     []GameEvent          `json:"events,omitempty"`
	Direction  engine.Move          `json:"direction"`
	Source     string               `json:"source,omitempty"` // "oracle", "fallback", or "manual"
	Rationale  string               `json:"rationale,omitempty"`
	LegalMoves []engine.Move        `json:"legal_moves"`
	Previews   []engine.MovePreview `json:"previews,omitempty"`
}

// AutoPlayResult contains the result of an oracle-driven run
type AutoPlayResult struct {
	// Summary
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // terminal|move_cap|context_canceled
	StoppedReason  string            `json:"stopped_reason,omitempty"`

	// Start/end snapshot
	StartScore int `json:"start_score"`
	EndScore   int `json:"end_score"`
	ScoreDelta int `json:"score_delta"`

	// Per-turn compact trace (only for this call)
	Turns []TurnInfo `json:"turns,omitempty"`

	// Final status aids
	GameOver    bool          `json:"game_over"`
	HighestTile int           `json:"highest_tile"`
	Message     string        `json:"message,omitempty"`
	LegalMoves  []engine.Move `json:"legal_moves,omitempty"`
}

// TurnInfo is a compact record for each executed turn in an auto-play call
type TurnInfo struct {
	Idx       int          `json:"idx"`
	Dir       engine.Move  `json:"dir"`
	Source    string       `json:"source"`
	Rationale string       `json:"rationale,omitempty"`
	Score     int          `json:"score"`
	Terminal  bool         `json:"terminal,omitempty"`
	Board     engine.Board `json:"board"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string      `json:"type"` // "move", "spawn", "illegal_move", "game_over", "reset"
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	Direction engine.Move `json:"direction,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	MaxMoves    int    `json:"max_moves"`
	OracleModel string `json:"oracle_model"`
}
