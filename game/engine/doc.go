// Package engine provides the core game logic for the 2048 oracle game.
//
// The engine package implements the game mechanics including:
//   - The 4x4 tile board and the leftward merge algorithm
//   - Direction normalization via transpose/flip transforms
//   - Legal-move enumeration and terminal detection
//   - Random tile spawning with an injectable random source
//   - Game state management and configuration validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState represents the current game state,
// while GameConfig defines the game rules loaded from JSON files.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(engine.DefaultGameConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the board
//	err = gameEngine.Move(engine.MoveLeft)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Every move compresses the board toward one edge, merging equal adjacent
// tiles into one tile of double value; a tile merges at most once per move.
// After each changing move a new tile (2 with probability 0.9, else 4)
// appears in a random empty cell. A direction that changes nothing is
// illegal, and the game ends when no direction is legal.
package engine
