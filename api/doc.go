// Package api provides HTTP REST API handlers for the 2048 game server.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Oracle-driven turn and auto-play endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - GET /api/sessions/{id}/legal-moves - List directions that change the board
//   - POST /api/sessions/{id}/move - Execute a manual move
//   - POST /api/sessions/{id}/play-turn - Let the oracle play one turn
//   - POST /api/sessions/{id}/auto-play - Let the oracle play until the game ends
//   - POST /api/sessions/{id}/reset - Reset the board to a fresh game
//   - GET /api/sessions/{id}/history - Get move history with pagination
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a specific configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Moves are sent as POST with a JSON
// body:
//
//	{
//	  "direction": "left|right|up|down",
//	  "reset": true|false   // optional reset before the move
//	}
//
// Auto-play accepts an optional move cap:
//
//	{
//	  "max_moves": 200   // 0 or absent falls back to the config's cap
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
