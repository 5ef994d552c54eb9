// Package mcp provides Model Context Protocol server implementation for the
// 2048 game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Session-aware command execution
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current board, score, and highest tile
//   - legal_moves: List directions that would change the board
//   - move: Execute single directional slide
//   - play_turn: Let the server-side oracle play one move
//   - auto_play: Let the oracle play until the game ends or a cap is hit
//   - reset_game: Reset board to two starting tiles
//   - move_history: Retrieve move history with pagination
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - game_instructions: Get comprehensive game rules
//
// Architecture:
//
// The Client is a thin proxy: every tool call is translated into a REST
// request against the API server, so the MCP process holds no game state of
// its own. Multiple MCP clients can share sessions through the same API.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play the game manually move by move
//   - Delegate move selection to the server-side oracle
//   - Analyze board states and move history
//   - Manage multiple game sessions
package mcp
