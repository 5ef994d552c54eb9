// Package service provides the business logic layer for the 2048 game server.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration management and loading
//   - Move processing and validation
//   - Oracle-driven turn execution and auto-play
//   - Move history tracking with pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state. Oracle-driven operations (PlayTurn,
// AutoPlay) delegate turn sequencing to the loop package; the oracle is shared
// across sessions and may be nil, in which case the first-legal fallback plays
// every turn.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr, llmOracle)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Execute a manual move
//	result, err := gameService.Move(ctx, sessionInfo.ID, engine.MoveLeft, false)
//
//	// Let the oracle play the game out
//	run, err := gameService.AutoPlay(ctx, sessionInfo.ID, 0)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time, last access time, and move
// history for analytics and debugging.
package service
