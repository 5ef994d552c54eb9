package engine

import (
	"math/rand"
	"testing"
)

// stuckBoard has no empty cells and no two adjacent equal values in any
// row or column, so no direction is legal.
var stuckBoard = Board{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func randomBoard(rng *rand.Rand) Board {
	values := []int{0, 0, 2, 4, 8, 16, 32, 64}
	var b Board
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			b[r][c] = values[rng.Intn(len(values))]
		}
	}
	return b
}

func TestCompressRow(t *testing.T) {
	tests := []struct {
		name     string
		row      [BoardSize]int
		expected [BoardSize]int
		changed  bool
	}{
		{"four equal values merge pairwise", [BoardSize]int{2, 2, 2, 2}, [BoardSize]int{4, 4, 0, 0}, true},
		{"pair at the right slides and merges", [BoardSize]int{0, 0, 2, 2}, [BoardSize]int{4, 0, 0, 0}, true},
		{"merge across intervening zeros", [BoardSize]int{2, 0, 0, 2}, [BoardSize]int{4, 0, 0, 0}, true},
		{"merged tile does not merge again", [BoardSize]int{4, 2, 2, 0}, [BoardSize]int{4, 4, 0, 0}, true},
		{"triple merges leftmost pair", [BoardSize]int{2, 2, 2, 0}, [BoardSize]int{4, 2, 0, 0}, true},
		{"no merge, only slide", [BoardSize]int{0, 2, 0, 4}, [BoardSize]int{2, 4, 0, 0}, true},
		{"already compressed", [BoardSize]int{2, 4, 2, 0}, [BoardSize]int{2, 4, 2, 0}, false},
		{"full distinct row unchanged", [BoardSize]int{2, 4, 8, 16}, [BoardSize]int{2, 4, 8, 16}, false},
		{"empty row unchanged", [BoardSize]int{0, 0, 0, 0}, [BoardSize]int{0, 0, 0, 0}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, changed := compressRow(test.row)
			if result != test.expected {
				t.Errorf("compressRow(%v): expected %v, got %v", test.row, test.expected, result)
			}
			if changed != test.changed {
				t.Errorf("compressRow(%v): expected changed=%v, got %v", test.row, test.changed, changed)
			}
		})
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		b := randomBoard(rng)
		for _, m := range Moves {
			if got := denormalize(normalize(b, m), m); got != b {
				t.Fatalf("round trip for %s changed the board:\n%s\ngot:\n%s", m, b.Render(), got.Render())
			}
		}
	}
}

func TestApply_EndToEnd(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	expected := Board{
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	got, err := Apply(b, MoveLeft)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected.Render(), got.Render())
	}
}

func TestApply_Directions(t *testing.T) {
	b := Board{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 2},
	}

	tests := []struct {
		name     string
		move     Move
		expected Board
	}{
		{"left merges rows at left edge", MoveLeft, Board{
			{4, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{4, 0, 0, 0},
		}},
		{"right merges rows at right edge", MoveRight, Board{
			{0, 0, 0, 4},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 4},
		}},
		{"up merges columns at top edge", MoveUp, Board{
			{4, 0, 0, 4},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}},
		{"down merges columns at bottom edge", MoveDown, Board{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{4, 0, 0, 4},
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Apply(b, test.move)
			if err != nil {
				t.Fatalf("Apply(%s) returned error: %v", test.move, err)
			}
			if got != test.expected {
				t.Errorf("Apply(%s):\nexpected:\n%s\ngot:\n%s", test.move, test.expected.Render(), got.Render())
			}
		})
	}
}

func TestApply_IllegalMove(t *testing.T) {
	// Everything already packed against the left edge
	b := Board{
		{2, 4, 0, 0},
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	got, err := Apply(b, MoveLeft)
	if err != ErrIllegalMove {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if got != b {
		t.Errorf("illegal move must return the original board")
	}
}

func TestLegalMoves_Order(t *testing.T) {
	b := Board{
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
	}

	legal := LegalMoves(b)
	if len(legal) != 4 {
		t.Fatalf("expected all 4 moves legal, got %v", legal)
	}
	expected := []Move{MoveLeft, MoveRight, MoveUp, MoveDown}
	for i, m := range expected {
		if legal[i] != m {
			t.Errorf("position %d: expected %s, got %s", i, m, legal[i])
		}
	}
}

func TestLegalMoves_StuckBoard(t *testing.T) {
	if legal := LegalMoves(stuckBoard); len(legal) != 0 {
		t.Errorf("expected no legal moves, got %v", legal)
	}
	if !IsTerminal(stuckBoard) {
		t.Error("expected stuck board to be terminal")
	}
}

func TestLegalMoves_Pure(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	snapshot := b

	for i := 0; i < 3; i++ {
		first := LegalMoves(b)
		second := LegalMoves(b)
		if len(first) != len(second) {
			t.Fatalf("legal moves not deterministic: %v vs %v", first, second)
		}
	}
	if b != snapshot {
		t.Error("LegalMoves mutated the board")
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		terminal bool
	}{
		{"empty board", Board{}, false},
		{"full board with vertical merge available", Board{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{2, 8, 16, 32},
		}, false},
		{"full board with horizontal merge available", Board{
			{2, 2, 8, 4},
			{4, 8, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		}, false},
		{"no empty cells, no adjacent equals", stuckBoard, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsTerminal(test.board); got != test.terminal {
				t.Errorf("IsTerminal: expected %v, got %v", test.terminal, got)
			}
		})
	}
}

func TestPreviewAll(t *testing.T) {
	b := Board{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	previews := PreviewAll(b)
	legal := LegalMoves(b)
	if len(previews) != len(legal) {
		t.Fatalf("expected %d previews, got %d", len(legal), len(previews))
	}

	for i, p := range previews {
		if p.Move != legal[i] {
			t.Errorf("preview %d: expected move %s, got %s", i, legal[i], p.Move)
		}
		expected, err := Apply(b, p.Move)
		if err != nil {
			t.Fatalf("Apply(%s) returned error: %v", p.Move, err)
		}
		if p.Board != expected {
			t.Errorf("preview for %s does not match Apply result", p.Move)
		}
	}
}
