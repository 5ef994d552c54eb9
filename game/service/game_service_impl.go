package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/game2048/game/engine"
	"github.com/wricardo/mcp-training/game2048/game/loop"
	"github.com/wricardo/mcp-training/game2048/game/oracle"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	oracle   oracle.Oracle
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance. The oracle may be nil,
// in which case oracle-driven operations run on the fallback move only.
func NewGameService(sessions SessionManager, configs ConfigManager, o oracle.Oracle) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		oracle:   o,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single manual move for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, direction engine.Move, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	events := []GameEvent{}

	if reset {
		sess.Engine.Reset()
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	moveErr := sess.Engine.Move(direction)
	state := sess.Engine.GetState()

	result := &MoveResult{
		Success:    moveErr == nil,
		GameState:  state,
		Message:    state.Message,
		Direction:  direction,
		Source:     "manual",
		LegalMoves: sess.Engine.GetPossibleMoves(),
		Previews:   sess.Engine.GetPreviews(),
	}

	switch {
	case moveErr == nil:
		events = append(events, GameEvent{
			Type:      "move",
			Message:   state.Message,
			Timestamp: time.Now(),
			Direction: direction,
		})
		if state.Terminal {
			events = append(events, GameEvent{
				Type:      "game_over",
				Message:   state.Message,
				Timestamp: time.Now(),
			})
		}
	case errors.Is(moveErr, engine.ErrIllegalMove):
		events = append(events, GameEvent{
			Type:      "illegal_move",
			Message:   fmt.Sprintf("Direction %s does not change the board", direction),
			Timestamp: time.Now(),
			Direction: direction,
		})
	case errors.Is(moveErr, engine.ErrGameOver):
		events = append(events, GameEvent{
			Type:      "game_over",
			Message:   state.Message,
			Timestamp: time.Now(),
		})
	default:
		return nil, moveErr
	}

	result.Events = events
	s.sessions.Save(sessionID)
	return result, nil
}

// PlayTurn executes one oracle-driven turn for a session
func (s *gameServiceImpl) PlayTurn(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	runner := loop.NewRunner(sess.Engine, s.oracle)
	record, err := runner.PlayTurn(ctx)
	if errors.Is(err, engine.ErrGameOver) {
		state := sess.Engine.GetState()
		return &MoveResult{
			Success:   false,
			GameState: state,
			Message:   state.Message,
			Events: []GameEvent{{
				Type:      "game_over",
				Message:   state.Message,
				Timestamp: time.Now(),
			}},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()
	events := []GameEvent{{
		Type:      "move",
		Message:   state.Message,
		Timestamp: time.Now(),
		Direction: record.Move,
	}}
	if state.Terminal {
		events = append(events, GameEvent{
			Type:      "game_over",
			Message:   state.Message,
			Timestamp: time.Now(),
		})
	}

	s.sessions.Save(sessionID)
	return &MoveResult{
		Success:    true,
		GameState:  state,
		Message:    state.Message,
		Events:     events,
		Direction:  record.Move,
		Source:     record.Source,
		Rationale:  record.Rationale,
		LegalMoves: sess.Engine.GetPossibleMoves(),
		Previews:   sess.Engine.GetPreviews(),
	}, nil
}

// AutoPlay runs the oracle-driven loop for up to maxMoves turns
func (s *gameServiceImpl) AutoPlay(ctx context.Context, sessionID string, maxMoves int) (*AutoPlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if maxMoves <= 0 {
		maxMoves = sess.Config.MaxMoves
	}

	startScore := sess.Engine.GetScore()

	var turns []TurnInfo
	runner := loop.NewRunner(sess.Engine, s.oracle)
	summary, err := runner.Play(ctx, loop.Options{
		MaxMoves: maxMoves,
		Quiet:    true,
		OnTurn: func(r loop.TurnRecord) {
			turns = append(turns, TurnInfo{
				Idx:       len(turns) + 1,
				Dir:       r.Move,
				Source:    r.Source,
				Rationale: r.Rationale,
				Score:     r.Score,
				Terminal:  r.Terminal,
				Board:     r.Board,
			})
		},
	})
	if err != nil {
		return nil, fmt.Errorf("auto-play failed: %w", err)
	}

	state := sess.Engine.GetState()

	events := make([]GameEvent, 0, len(turns)+1)
	for _, turn := range turns {
		events = append(events, GameEvent{
			Type:      "move",
			Message:   fmt.Sprintf("Turn %d: %s (%s)", turn.Idx, turn.Dir, turn.Source),
			Timestamp: time.Now(),
			Direction: turn.Dir,
		})
	}
	if state.Terminal {
		events = append(events, GameEvent{
			Type:      "game_over",
			Message:   state.Message,
			Timestamp: time.Now(),
		})
	}

	s.sessions.Save(sessionID)
	return &AutoPlayResult{
		MovesExecuted:  len(turns),
		RequestedMoves: maxMoves,
		Success:        true,
		GameState:      state,
		Events:         events,
		StopReasonCode: summary.StopReason,
		StoppedReason:  stopReasonMessage(summary.StopReason),
		StartScore:     startScore,
		EndScore:       state.Score,
		ScoreDelta:     state.Score - startScore,
		Turns:          turns,
		GameOver:       state.Terminal,
		HighestTile:    state.HighestTile,
		Message:        state.Message,
		LegalMoves:     sess.Engine.GetPossibleMoves(),
	}, nil
}

// stopReasonMessage maps stop reason codes to human-readable text
func stopReasonMessage(code string) string {
	switch code {
	case loop.StopTerminal:
		return "No legal moves remain"
	case loop.StopMoveCap:
		return "Move cap reached"
	case loop.StopContextCanceled:
		return "Run canceled"
	}
	return code
}

// Reset resets a session's game to initial state
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.Reset()
	s.sessions.Save(sessionID)
	return state, nil
}

// GetGameState returns the current game state for a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetLegalMoves returns the legal directions for a session's current board
func (s *gameServiceImpl) GetLegalMoves(ctx context.Context, sessionID string) ([]engine.Move, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetPossibleMoves(), nil
}

// GetMoveHistory returns paginated move history for a session
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 20
	}
	if opts.Order != "asc" && opts.Order != "desc" {
		opts.Order = "desc"
	}

	ordered := make([]engine.MoveHistoryEntry, total)
	copy(ordered, history)
	if opts.Order == "desc" {
		for i, j := 0, total-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Moves:       ordered[start:end],
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns information about all available configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a configuration by name
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a configuration
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}
