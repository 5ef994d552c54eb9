package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"2048 Oracle Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`2048 Oracle Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Slide tiles on a 4x4 board. Equal adjacent tiles merge into their sum. The
game ends when no direction changes the board. Build the highest tile you can.

AVAILABLE TOOLS:
- game_state: Get current board, score, and highest tile
- legal_moves: List directions that would change the board
- move: Single move (left/right/up/down) - requires intent explanation
- play_turn: Let the server-side oracle pick and play one move
- auto_play: Let the oracle play many moves in a row
- reset_game: Reset the board to two starting tiles
- move_history: View past moves
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on the move tool serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List the directions that would change the board, in fixed left/right/up/down order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide the board in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"left", "right", "up", "down"},
					"description": "Direction to slide",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before moving",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_turn",
		Description: "Ask the server-side oracle to pick and play one move. Falls back to the first legal direction if the oracle is unavailable.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePlayTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "auto_play",
		Description: "Let the oracle play multiple turns in a row until the game ends or a move cap is hit",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"max_moves": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of moves to play (0 uses the config's cap)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleAutoPlay)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to a fresh board with two starting tiles",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	if session.GameState != nil {
		result += "\n" + formatGameState(session.GameState)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		SessionID  string        `json:"session_id"`
		LegalMoves []engine.Move `json:"legal_moves"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/legal-moves", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(response.LegalMoves) == 0 {
		return mcp.NewToolResultText("No legal moves. The game is over."), nil
	}

	names := make([]string, len(response.LegalMoves))
	for i, m := range response.LegalMoves {
		names[i] = m.String()
	}
	return mcp.NewToolResultText("Legal moves: " + strings.Join(names, ", ")), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"direction": direction,
		"reset":     reset,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePlayTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/play-turn", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Oracle turn: %s (source: %s)\n", result.Direction, result.Source)
	if result.Rationale != "" {
		response += fmt.Sprintf("Rationale: %s\n", result.Rationale)
	}
	response += "\n" + formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleAutoPlay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]interface{}{}
	if maxMoves, ok := args["max_moves"].(float64); ok {
		body["max_moves"] = int(maxMoves)
	}

	var result service.AutoPlayResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/auto-play", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatAutoPlayResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Also fetch current segment from live state
	var session service.SessionInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		// If fetching session fails, still return the history
		result := formatHistory(&history)
		return mcp.NewToolResultText(result), nil
	}

	result := formatHistory(&history)
	result += "\n" + formatCurrentSegment(session.GameState)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Move cap: %d, Oracle: %s\n\n",
			config.Name, config.Description, config.MaxMoves, config.OracleModel)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `2048 Oracle Game - Complete Instructions

GAME OBJECTIVE:
Slide tiles on a 4x4 board to merge equal neighbors into their sum. The game
ends when no direction changes the board. Maximize your score and highest tile.

GAME MECHANICS:
• Movement: left/right/up/down slides every tile as far as it can go
• Merging: two equal tiles that collide merge into one tile of double value
• Merge-once rule: a tile created by a merge cannot merge again in the same move
• Spawning: after every board-changing move one new tile appears in a random
  empty cell (2 with 90% probability, otherwise 4)
• Illegal moves: a direction that leaves the board unchanged is rejected and
  does not spawn a tile
• Scoring: the score is the sum of all tiles on the board
• Game over: terminal when no direction would change the board

BOARD DISPLAY:
Boards render as a 4x4 grid of numbers with "." for empty cells:

   2    4    .    .
   .    2    .    .
   .    .    .    .
   .    .    .    .

MERGE EXAMPLES (sliding left):
• [2 2 2 2] becomes [4 4 . .]  (pairs merge left to right)
• [. . 2 2] becomes [4 . . .]  (tiles slide before merging)
• [2 . . 2] becomes [4 . . .]  (gaps are ignored)
• [4 2 2 .] becomes [4 4 . .]  (the merged 4 does not re-merge)

ORACLE PLAY:
The server can drive the game with an oracle that picks moves. Use play_turn
for a single oracle move or auto_play for a full run. When the oracle is
unavailable or picks an illegal direction, the server falls back to the first
legal direction in left/right/up/down order.

STRATEGY HINTS:
• Keep your highest tile in a corner and build toward it
• Prefer two directions and use the others only when forced
• Check legal_moves before committing to a plan
• Use the intent parameter on move to explain your reasoning

MOVEMENT COMMANDS:
- left, right, up, down - single slides
- play_turn / auto_play - oracle-driven play
- Reset parameter available for fresh starts

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-game management

CONFIGURATION OPTIONS:
- classic: standard rules with a generous move cap
- quickfire: short demo runs with a small move cap`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Score: %d | Highest: %d | Moves: %d\n\n",
		state.Score, state.HighestTile, state.TotalMoves))

	result.WriteString(state.Board.Render())

	if state.Terminal {
		result.WriteString("\nGAME OVER - no legal moves remain")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
	} else {
		response = "✗ Move rejected: the board would not change\n"
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	if len(result.LegalMoves) > 0 {
		names := make([]string, len(result.LegalMoves))
		for i, m := range result.LegalMoves {
			names[i] = m.String()
		}
		response += "Legal moves: " + strings.Join(names, ",") + "\n"
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatAutoPlayResult(sessionID string, result *service.AutoPlayResult) string {
	var b strings.Builder

	configName := ""
	if result.GameState != nil {
		configName = result.GameState.ConfigName
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s\n", sessionID, configName))

	b.WriteString(fmt.Sprintf("Executed %d/%d moves\n", result.MovesExecuted, result.RequestedMoves))
	b.WriteString(fmt.Sprintf("Score: %d → %d (+%d) | Highest: %d\n",
		result.StartScore, result.EndScore, result.ScoreDelta, result.HighestTile))
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}

	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	// Compact per-turn trace for this call
	if len(result.Turns) > 0 {
		b.WriteString("\nTurns (this call):\n")
		for _, turn := range result.Turns {
			line := fmt.Sprintf("%d. %s (%s) score=%d", turn.Idx, turn.Dir, turn.Source, turn.Score)
			if turn.Rationale != "" {
				line += fmt.Sprintf(" — %s", turn.Rationale)
			}
			if turn.Terminal {
				line += " [terminal]"
			}
			b.WriteString(line + "\n")
		}
	}

	if len(result.LegalMoves) > 0 {
		names := make([]string, len(result.LegalMoves))
		for i, m := range result.LegalMoves {
			names[i] = m.String()
		}
		b.WriteString("\nLegal moves: " + strings.Join(names, ",") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for i, move := range history.Moves {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		line := fmt.Sprintf("%d. %s %s", num, move.Direction, status)
		if move.Source != "" {
			line += fmt.Sprintf(" [%s]", move.Source)
		}
		if move.Spawned != 0 && move.SpawnedAt != nil {
			line += fmt.Sprintf(" spawn=%d@(%d,%d)", move.Spawned, move.SpawnedAt.Row, move.SpawnedAt.Col)
		}
		result += line + "\n"
	}

	return result
}

func formatCurrentSegment(state *engine.GameState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	moves := state.CurrentMoves
	total := state.CurrentMovesCount
	header := fmt.Sprintf("Current Move Segment — Moves: %d\n\n", total)
	if len(moves) == 0 {
		return header + "(no moves in current segment)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, move := range moves {
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		b.WriteString(fmt.Sprintf("%d. %s %s\n", i+1, move.Direction, status))
	}
	return b.String()
}
