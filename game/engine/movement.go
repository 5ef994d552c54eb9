package engine

import "errors"

// ErrIllegalMove signals that a requested direction would leave the board
// unchanged. Callers recover by picking a different legal move.
var ErrIllegalMove = errors.New("illegal move: board unchanged")

// compressRow slides a single row leftward, merging equal adjacent tiles.
// It scans left to right skipping zeros and tracks the most recently placed
// value; clearing the tracked value after a merge is what limits every tile
// to one merge per move, so [2,2,2,2] yields [4,4,0,0] and never [8,...].
func compressRow(row [BoardSize]int) ([BoardSize]int, bool) {
	var out [BoardSize]int
	n := 0
	lastVal := 0

	for _, val := range row {
		if val == 0 {
			continue
		}
		if n > 0 && val == lastVal {
			out[n-1] *= 2
			lastVal = 0
		} else {
			out[n] = val
			lastVal = val
			n++
		}
	}

	return out, out != row
}

// normalize reorients the board so that compressing every row leftward is
// equivalent to compressing along the requested direction.
func normalize(b Board, m Move) Board {
	switch m {
	case MoveRight:
		return b.FlipHorizontal()
	case MoveUp:
		return b.Transpose()
	case MoveDown:
		return b.Transpose().FlipHorizontal()
	}
	return b
}

// denormalize undoes the normalize transform for the same direction.
func denormalize(b Board, m Move) Board {
	switch m {
	case MoveRight:
		return b.FlipHorizontal()
	case MoveUp:
		return b.Transpose()
	case MoveDown:
		return b.FlipHorizontal().Transpose()
	}
	return b
}

// compress applies the merge algorithm along the given direction and reports
// whether any cell changed.
func compress(b Board, m Move) (Board, bool) {
	working := normalize(b, m)

	changed := false
	for r := 0; r < BoardSize; r++ {
		row, rowChanged := compressRow(working[r])
		working[r] = row
		if rowChanged {
			changed = true
		}
	}

	return denormalize(working, m), changed
}

// Preview returns the board the move would produce before tile spawning,
// along with whether the move changes the board. It never fails.
func Preview(b Board, m Move) (Board, bool) {
	return compress(b, m)
}

// Apply executes a move and returns the resulting pre-spawn board. It
// returns ErrIllegalMove when the move would not change the board.
func Apply(b Board, m Move) (Board, error) {
	out, changed := compress(b, m)
	if !changed {
		return b, ErrIllegalMove
	}
	return out, nil
}

// IsLegal reports whether the move changes at least one cell.
func IsLegal(b Board, m Move) bool {
	_, changed := compress(b, m)
	return changed
}

// LegalMoves returns the subset of directions that change the board, in the
// fixed order left, right, up, down. It is pure: no mutation, no spawning.
func LegalMoves(b Board) []Move {
	var legal []Move
	for _, m := range Moves {
		if IsLegal(b, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsTerminal reports whether no direction is legal.
func IsTerminal(b Board) bool {
	return len(LegalMoves(b)) == 0
}

// PreviewAll returns the pre-spawn resulting board for each legal move, in
// enumeration order. Oracles use these to ground their analysis.
func PreviewAll(b Board) []MovePreview {
	var previews []MovePreview
	for _, m := range LegalMoves(b) {
		after, _ := Preview(b, m)
		previews = append(previews, MovePreview{Move: m, Board: after})
	}
	return previews
}
