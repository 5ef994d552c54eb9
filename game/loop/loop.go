package loop

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/oracle"
)

// Stop reason codes reported in a Summary.
const (
	StopTerminal        = "terminal"
	StopMoveCap         = "move_cap"
	StopContextCanceled = "context_canceled"
)

// Move sources recorded per turn.
const (
	SourceOracle   = "oracle"
	SourceFallback = "fallback"
)

// TurnRecord captures one completed turn of the loop.
type TurnRecord struct {
	MoveNumber int          `json:"move_number"`
	Move       engine.Move  `json:"move"`
	Source     string       `json:"source"`
	Rationale  string       `json:"rationale,omitempty"`
	Board      engine.Board `json:"board"`
	Score      int          `json:"score"`
	Terminal   bool         `json:"terminal"`
}

// Summary describes a finished run.
type Summary struct {
	Moves       int          `json:"moves"`
	Score       int          `json:"score"`
	HighestTile int          `json:"highest_tile"`
	StopReason  string       `json:"stop_reason"`
	FinalBoard  engine.Board `json:"final_board"`
}

// Options tune a single Play run.
type Options struct {
	// MaxMoves caps the run; zero falls back to the engine config's cap.
	MaxMoves int

	// OnTurn, when set, is called after every completed turn. Transports
	// use it to broadcast state.
	OnTurn func(TurnRecord)

	// Quiet suppresses per-turn logging.
	Quiet bool
}

// Runner drives a game by alternating oracle consultation and engine moves.
// It owns the game state for the duration of a run: single-threaded, one
// turn at a time, the oracle call being the only suspension point.
type Runner struct {
	eng    engine.Engine
	oracle oracle.Oracle
}

// NewRunner creates a runner over an engine and an oracle.
func NewRunner(eng engine.Engine, o oracle.Oracle) *Runner {
	return &Runner{eng: eng, oracle: o}
}

// PlayTurn executes exactly one turn: enumerate legal moves, consult the
// oracle, apply the chosen (or fallback) move, spawn a tile. It returns
// engine.ErrGameOver when no turn can be played.
func (r *Runner) PlayTurn(ctx context.Context) (*TurnRecord, error) {
	if r.eng.IsGameOver() {
		return nil, engine.ErrGameOver
	}

	legal := r.eng.GetPossibleMoves()
	if len(legal) == 0 {
		// Possible after restoring a stuck board whose terminal flag was
		// never set: flip it now so the state machine stays consistent.
		state := r.eng.GetState()
		state.Terminal = true
		return nil, engine.ErrGameOver
	}

	choice, source := r.consult(ctx, legal)

	if err := r.eng.MoveWithRationale(choice.Move, choice.Rationale, source); err != nil {
		return nil, fmt.Errorf("apply %s: %w", choice.Move, err)
	}

	state := r.eng.GetState()
	return &TurnRecord{
		MoveNumber: state.CurrentMovesCount,
		Move:       choice.Move,
		Source:     source,
		Rationale:  choice.Rationale,
		Board:      state.Board,
		Score:      state.Score,
		Terminal:   state.Terminal,
	}, nil
}

// consult asks the oracle for a move and falls back to the first legal move
// when the answer is missing, illegal, or the call fails outright. The
// oracle is never retried; the fallback provides liveness instead.
func (r *Runner) consult(ctx context.Context, legal []engine.Move) (oracle.Choice, string) {
	fallback := legal[0]

	if r.oracle == nil {
		return oracle.Choice{Move: fallback, Rationale: "no oracle configured"}, SourceFallback
	}

	state := r.eng.GetState()
	req := oracle.Request{
		Board:      state.Board,
		MoveNumber: state.CurrentMovesCount,
		Score:      state.Score,
		Legal:      legal,
		Previews:   r.eng.GetPreviews(),
	}

	choice, err := r.oracle.Choose(ctx, req)
	if err != nil {
		log.Printf("Oracle failed, falling back to %s: %v", fallback, err)
		return oracle.Choice{Move: fallback, Rationale: fmt.Sprintf("fallback after oracle error: %v", err)}, SourceFallback
	}
	if !oracle.Contains(legal, choice.Move) {
		log.Printf("Oracle chose illegal move %s, falling back to %s", choice.Move, fallback)
		return oracle.Choice{Move: fallback, Rationale: fmt.Sprintf("fallback: oracle chose illegal %s", choice.Move)}, SourceFallback
	}

	return choice, SourceOracle
}

// Play runs turns until the game is terminal, the move cap is reached, or
// the context is canceled. It always returns a summary for the moves that
// were played; the error is non-nil only for engine failures.
func (r *Runner) Play(ctx context.Context, opts Options) (*Summary, error) {
	maxMoves := opts.MaxMoves
	if maxMoves <= 0 {
		maxMoves = r.eng.GetConfig().MaxMoves
	}

	stopReason := StopMoveCap

	for moves := 0; moves < maxMoves; moves++ {
		if ctx.Err() != nil {
			stopReason = StopContextCanceled
			break
		}

		record, err := r.PlayTurn(ctx)
		if errors.Is(err, engine.ErrGameOver) {
			stopReason = StopTerminal
			break
		}
		if err != nil {
			return r.summary(stopReason), err
		}

		if !opts.Quiet {
			log.Printf("Move #%d: %s (%s), score %d", record.MoveNumber, record.Move, record.Source, record.Score)
		}
		if opts.OnTurn != nil {
			opts.OnTurn(*record)
		}

		if record.Terminal {
			stopReason = StopTerminal
			break
		}
	}

	return r.summary(stopReason), nil
}

func (r *Runner) summary(stopReason string) *Summary {
	state := r.eng.GetState()
	return &Summary{
		Moves:       state.CurrentMovesCount,
		Score:       state.Score,
		HighestTile: state.HighestTile,
		StopReason:  stopReason,
		FinalBoard:  state.Board,
	}
}
