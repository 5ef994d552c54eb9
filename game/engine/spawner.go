package engine

import (
	"math/rand"
	"time"
)

// Spawner inserts random tiles into the board. Randomness comes from an
// injected source so tests can supply fixed sequences and assert exact
// placement.
type Spawner struct {
	rng     *rand.Rand
	twoProb float64
}

// NewSpawner creates a spawner with the standard 9:1 two-to-four ratio.
// A nil rng gets a time-seeded source.
func NewSpawner(rng *rand.Rand) *Spawner {
	return NewSpawnerWithProbability(rng, DefaultTwoProb)
}

// NewSpawnerWithProbability creates a spawner with a custom probability of
// spawning a 2 (the remainder spawns a 4).
func NewSpawnerWithProbability(rng *rand.Rand, twoProb float64) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Spawner{rng: rng, twoProb: twoProb}
}

// Spawn writes a new tile into a uniformly chosen empty cell and returns the
// updated board with the spawned value and position. On a full board it is a
// no-op and reports false; a full board is not by itself game over, so the
// caller keeps playing until the legal-move scan says otherwise.
func (s *Spawner) Spawn(b Board) (Board, int, *Position, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b, 0, nil, false
	}

	value := 2
	if s.rng.Float64() >= s.twoProb {
		value = 4
	}

	pos := empty[s.rng.Intn(len(empty))]
	b[pos.Row][pos.Col] = value
	return b, value, &pos, true
}

// InitBoard creates a fresh board seeded with two random tiles.
func (s *Spawner) InitBoard() Board {
	var b Board
	b, _, _, _ = s.Spawn(b)
	b, _, _, _ = s.Spawn(b)
	return b
}
