package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":       "test-session",
		"score":    12,
		"terminal": false,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_JSONError(t *testing.T) {
	// When the body carries an error field, that message should surface
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 404 response")
	}

	if err.Error() != "session not found" {
		t.Errorf("Expected 'session not found', got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "ab12",
			ConfigName: "classic",
			GameState: &engine.GameState{
				Board: engine.Board{
					{2, 0, 0, 0},
					{0, 0, 0, 2},
					{0, 0, 0, 0},
					{0, 0, 0, 0},
				},
				Score:       4,
				HighestTile: 2,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "ab12") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_legalMoves(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/legal-moves") {
			t.Errorf("Expected legal-moves path, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"session_id":  "ab12",
			"legal_moves": []string{"left", "down"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "legal_moves",
			Arguments: map[string]interface{}{"session_id": "ab12"},
		},
	}

	result, err := client.handleLegalMoves(ctx, request)
	if err != nil {
		t.Fatalf("handleLegalMoves failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "left, down") {
		t.Errorf("Expected 'left, down' in result, got: %s", resultStr.Text)
	}
}

func TestFormatGameState(t *testing.T) {
	gameState := &engine.GameState{
		Board: engine.Board{
			{2, 4, 0, 0},
			{0, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		Score:       8,
		HighestTile: 4,
		TotalMoves:  3,
		Message:     "Move #3, score: 8",
	}

	result := formatGameState(gameState)

	expectedFields := []string{
		"Score: 8",
		"Highest: 4",
		"Moves: 3",
		"Move #3, score: 8",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}

	// The rendered board uses "." for empty cells
	if !strings.Contains(result, ".") {
		t.Errorf("Expected rendered board with empty cell markers, got: %s", result)
	}
}

func TestFormatGameState_Terminal(t *testing.T) {
	gameState := &engine.GameState{
		Board: engine.Board{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		},
		Score:       48,
		HighestTile: 4,
		Terminal:    true,
		Message:     "Game over! No legal moves left. Final score: 48",
	}

	result := formatGameState(gameState)

	if !strings.Contains(result, "GAME OVER") {
		t.Errorf("Expected 'GAME OVER' in result, got: %s", result)
	}
}

func TestFormatMoveResult(t *testing.T) {
	moveResult := &service.MoveResult{
		Success:   true,
		Direction: engine.MoveLeft,
		GameState: &engine.GameState{
			Board: engine.Board{
				{4, 0, 0, 0},
				{0, 0, 2, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			Score:       6,
			HighestTile: 4,
		},
		LegalMoves: []engine.Move{engine.MoveLeft, engine.MoveRight, engine.MoveUp, engine.MoveDown},
	}

	result := formatMoveResult(moveResult)

	expectedFields := []string{
		"✓ Move successful",
		"Score: 6",
		"Legal moves: left,right,up,down",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatMoveResult_Rejected(t *testing.T) {
	moveResult := &service.MoveResult{
		Success: false,
		GameState: &engine.GameState{
			Board: engine.Board{
				{2, 0, 0, 0},
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			Score: 6,
		},
	}

	result := formatMoveResult(moveResult)

	if !strings.Contains(result, "✗ Move rejected") {
		t.Errorf("Expected '✗ Move rejected' in result, got: %s", result)
	}
}

func TestFormatAutoPlayResult(t *testing.T) {
	autoPlay := &service.AutoPlayResult{
		MovesExecuted:  3,
		RequestedMoves: 10,
		Success:        true,
		StartScore:     4,
		EndScore:       28,
		ScoreDelta:     24,
		HighestTile:    8,
		StoppedReason:  "No legal moves remain",
		Turns: []service.TurnInfo{
			{Idx: 1, Dir: engine.MoveLeft, Source: "oracle", Rationale: "stack the left column", Score: 12},
			{Idx: 2, Dir: engine.MoveDown, Source: "fallback", Score: 20},
			{Idx: 3, Dir: engine.MoveLeft, Source: "oracle", Score: 28, Terminal: true},
		},
		GameState: &engine.GameState{
			Score:       28,
			HighestTile: 8,
			Terminal:    true,
		},
	}

	result := formatAutoPlayResult("ab12", autoPlay)

	expectedFields := []string{
		"Session: ab12",
		"Executed 3/10 moves",
		"Score: 4 → 28 (+24)",
		"Stopped: No legal moves remain",
		"1. left (oracle)",
		"stack the left column",
		"2. down (fallback)",
		"[terminal]",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	history := &service.HistoryResponse{
		Moves: []engine.MoveHistoryEntry{
			{Direction: engine.MoveLeft, Success: true, Source: "manual", Spawned: 2, SpawnedAt: &engine.Position{Row: 3, Col: 2}},
			{Direction: engine.MoveUp, Success: false, Source: "manual"},
		},
		TotalMoves: 2,
		Page:       1,
		PageSize:   20,
		TotalPages: 1,
	}

	result := formatHistory(history)

	expectedFields := []string{
		"Move History (Page 1/1)",
		"1. left ✓ [manual] spawn=2@(3,2)",
		"2. up ✗ [manual]",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"2048 Oracle Game - Complete Instructions",
		"GAME OBJECTIVE:",
		"GAME MECHANICS:",
		"Merge-once rule",
		"BOARD DISPLAY:",
		"MERGE EXAMPLES",
		"ORACLE PLAY:",
		"STRATEGY HINTS:",
		"MOVEMENT COMMANDS:",
		"SESSION MANAGEMENT:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
