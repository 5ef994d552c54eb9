package oracle

import (
	"context"
	"errors"
	"fmt"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

var (
	// ErrNoLegalMoves indicates a request with an empty legal-move set.
	ErrNoLegalMoves = errors.New("oracle: no legal moves to choose from")

	// ErrNoMoveFound indicates the response contained no recognizable legal
	// move token.
	ErrNoMoveFound = errors.New("oracle: no legal move found in response")
)

// Request carries everything an oracle may consider when picking a move.
type Request struct {
	Board      engine.Board         `json:"board"`
	MoveNumber int                  `json:"move_number"`
	Score      int                  `json:"score"`
	Legal      []engine.Move        `json:"legal"`
	Previews   []engine.MovePreview `json:"previews,omitempty"`
}

// Choice is an oracle's answer: one move from the legal set plus free-text
// rationale that the engine treats as opaque.
type Choice struct {
	Move      engine.Move `json:"move"`
	Rationale string      `json:"rationale,omitempty"`
}

// Oracle selects the next move for a board. Implementations may block on
// I/O; callers pass a context and must tolerate every failure mode by
// falling back to FirstLegal.
type Oracle interface {
	Choose(ctx context.Context, req Request) (Choice, error)
}

// FirstLegal returns the deterministic fallback: the first legal move in
// enumeration order.
func FirstLegal(legal []engine.Move) (engine.Move, error) {
	if len(legal) == 0 {
		return 0, ErrNoLegalMoves
	}
	return legal[0], nil
}

// Contains reports whether the move appears in the legal set.
func Contains(legal []engine.Move, m engine.Move) bool {
	for _, l := range legal {
		if l == m {
			return true
		}
	}
	return false
}

// ValidateRequest checks that a request is answerable.
func ValidateRequest(req Request) error {
	if len(req.Legal) == 0 {
		return ErrNoLegalMoves
	}
	for _, m := range req.Legal {
		if !engine.IsLegal(req.Board, m) {
			return fmt.Errorf("oracle: move %s listed as legal but does not change the board", m)
		}
	}
	return nil
}
