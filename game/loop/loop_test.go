package loop

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/oracle"
)

func createTestEngine(t *testing.T) *engine.GameEngine {
	t.Helper()
	eng, err := engine.NewEngineWithRand(engine.DefaultGameConfig(), rand.New(rand.NewSource(21)))
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	return eng
}

func TestPlayTurn_OracleChoice(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()
	state.Board = engine.Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	runner := NewRunner(eng, oracle.ChooseMoves(engine.MoveLeft))

	record, err := runner.PlayTurn(context.Background())
	if err != nil {
		t.Fatalf("PlayTurn returned error: %v", err)
	}
	if record.Move != engine.MoveLeft || record.Source != SourceOracle {
		t.Errorf("expected oracle left, got %s (%s)", record.Move, record.Source)
	}
	if record.Board[0][0] != 4 {
		t.Errorf("expected merged 4 at (0,0), got %d", record.Board[0][0])
	}
}

func TestPlayTurn_FallbackOnOracleError(t *testing.T) {
	eng := createTestEngine(t)
	runner := NewRunner(eng, oracle.NewScriptedOracle(
		oracle.ScriptStep{Err: errors.New("transport down")},
	))

	legal := eng.GetPossibleMoves()
	record, err := runner.PlayTurn(context.Background())
	if err != nil {
		t.Fatalf("PlayTurn returned error: %v", err)
	}
	if record.Source != SourceFallback {
		t.Errorf("expected fallback source, got %s", record.Source)
	}
	if record.Move != legal[0] {
		t.Errorf("fallback must be the first legal move %s, got %s", legal[0], record.Move)
	}
}

func TestPlayTurn_FallbackOnIllegalChoice(t *testing.T) {
	eng := createTestEngine(t)

	// Both rows are fully packed, so only up and down are legal; script an
	// illegal right
	state := eng.GetState()
	state.Board = engine.Board{
		{2, 4, 8, 16},
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	legal := eng.GetPossibleMoves()
	for _, m := range legal {
		if m == engine.MoveRight {
			t.Fatal("test layout must not allow right")
		}
	}

	runner := NewRunner(eng, oracle.ChooseMoves(engine.MoveRight))

	record, err := runner.PlayTurn(context.Background())
	if err != nil {
		t.Fatalf("PlayTurn returned error: %v", err)
	}
	if record.Source != SourceFallback {
		t.Errorf("expected fallback source, got %s", record.Source)
	}
	if record.Move != legal[0] {
		t.Errorf("expected first legal move %s, got %s", legal[0], record.Move)
	}
}

func TestPlayTurn_NoOracle(t *testing.T) {
	eng := createTestEngine(t)
	runner := NewRunner(eng, nil)

	record, err := runner.PlayTurn(context.Background())
	if err != nil {
		t.Fatalf("PlayTurn returned error: %v", err)
	}
	if record.Source != SourceFallback {
		t.Errorf("expected fallback source, got %s", record.Source)
	}
}

func TestPlayTurn_TerminalGame(t *testing.T) {
	eng := createTestEngine(t)
	state := eng.GetState()
	state.Terminal = true

	runner := NewRunner(eng, oracle.ChooseMoves(engine.MoveLeft))
	if _, err := runner.PlayTurn(context.Background()); !errors.Is(err, engine.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestPlayTurn_StuckBoardFlagsTerminal(t *testing.T) {
	eng := createTestEngine(t)

	// Restored stuck board without the terminal flag set
	state := eng.GetState()
	state.Board = engine.Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	state.Terminal = false

	runner := NewRunner(eng, nil)
	if _, err := runner.PlayTurn(context.Background()); !errors.Is(err, engine.ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if !eng.IsGameOver() {
		t.Error("runner must flag the stuck board as terminal")
	}
}

func TestPlay_MoveCap(t *testing.T) {
	eng := createTestEngine(t)
	runner := NewRunner(eng, nil)

	summary, err := runner.Play(context.Background(), Options{MaxMoves: 5, Quiet: true})
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if summary.StopReason != StopMoveCap && summary.StopReason != StopTerminal {
		t.Errorf("unexpected stop reason %q", summary.StopReason)
	}
	if summary.Moves > 5 {
		t.Errorf("move cap exceeded: %d moves", summary.Moves)
	}
}

func TestPlay_RunsToTerminal(t *testing.T) {
	eng := createTestEngine(t)
	runner := NewRunner(eng, nil)

	// Fallback-only play always ends: each turn changes the board and the
	// cap bounds the run
	summary, err := runner.Play(context.Background(), Options{MaxMoves: 5000, Quiet: true})
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if summary.StopReason != StopTerminal {
		t.Errorf("expected terminal stop, got %q", summary.StopReason)
	}
	if !eng.IsGameOver() {
		t.Error("engine must be terminal after a terminal stop")
	}
	if summary.Score != eng.GetScore() {
		t.Errorf("summary score %d disagrees with engine %d", summary.Score, eng.GetScore())
	}
}

func TestPlay_ContextCanceled(t *testing.T) {
	eng := createTestEngine(t)
	runner := NewRunner(eng, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := runner.Play(ctx, Options{MaxMoves: 100, Quiet: true})
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if summary.StopReason != StopContextCanceled {
		t.Errorf("expected context_canceled, got %q", summary.StopReason)
	}
	if summary.Moves != 0 {
		t.Errorf("expected no moves, got %d", summary.Moves)
	}
}

func TestPlay_OnTurnCallback(t *testing.T) {
	eng := createTestEngine(t)
	runner := NewRunner(eng, nil)

	var records []TurnRecord
	summary, err := runner.Play(context.Background(), Options{
		MaxMoves: 3,
		Quiet:    true,
		OnTurn:   func(r TurnRecord) { records = append(records, r) },
	})
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if len(records) != summary.Moves {
		t.Errorf("expected %d callbacks, got %d", summary.Moves, len(records))
	}
	for i, r := range records {
		if r.MoveNumber != i+1 {
			t.Errorf("record %d: expected move number %d, got %d", i, i+1, r.MoveNumber)
		}
	}
}

func TestPlay_MixedOracleScript(t *testing.T) {
	eng := createTestEngine(t)
	script := oracle.NewScriptedOracle(
		oracle.ScriptStep{Choice: oracle.Choice{Move: engine.MoveLeft, Rationale: "open the row"}},
		oracle.ScriptStep{Err: errors.New("timeout")},
		oracle.ScriptStep{Choice: oracle.Choice{Move: engine.MoveUp}},
	)
	runner := NewRunner(eng, script)

	summary, err := runner.Play(context.Background(), Options{MaxMoves: 3, Quiet: true})
	if err != nil {
		t.Fatalf("Play returned error: %v", err)
	}
	if summary.Moves == 0 {
		t.Fatal("expected some moves to be played")
	}

	history := eng.GetMoveHistory()
	sawFallback := false
	for _, entry := range history {
		if entry.Source == SourceFallback {
			sawFallback = true
		}
	}
	if len(history) >= 2 && !sawFallback {
		t.Error("expected at least one fallback entry after the scripted error")
	}
}
