// Package websocket provides WebSocket transport for the 2048 game server.
//
// The websocket package implements:
//   - Real-time state broadcasting to board watchers
//   - Session-aware WebSocket connections
//   - Oracle-turn notifications with the chosen direction and source
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. State updates carry the full GameState; turn
// updates additionally carry the direction played and whether the oracle or
// the first-legal fallback chose it:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//	{"session_id": "ab12", "event": "turn_played", "direction": "left", "source": "oracle", "game_state": {...}}
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=ab12) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler
//	hub.ServeWS(w, r, sessionID)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and send messages simultaneously
// without blocking each other.
package websocket
