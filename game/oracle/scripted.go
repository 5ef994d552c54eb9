package oracle

import (
	"context"
	"errors"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// ErrScriptExhausted is returned once a scripted oracle runs out of steps.
var ErrScriptExhausted = errors.New("oracle: script exhausted")

// ScriptStep is one scripted response: either a choice or an error.
type ScriptStep struct {
	Choice Choice
	Err    error
}

// ScriptedOracle replays a fixed sequence of responses. It stands in for
// the networked oracle in tests and lets them exercise every failure mode
// deterministically.
type ScriptedOracle struct {
	steps []ScriptStep
	calls int
}

// NewScriptedOracle creates an oracle that answers with the given steps in
// order.
func NewScriptedOracle(steps ...ScriptStep) *ScriptedOracle {
	return &ScriptedOracle{steps: steps}
}

// ChooseMoves is a convenience constructor for a script of plain moves.
func ChooseMoves(moves ...engine.Move) *ScriptedOracle {
	steps := make([]ScriptStep, len(moves))
	for i, m := range moves {
		steps[i] = ScriptStep{Choice: Choice{Move: m, Rationale: "scripted"}}
	}
	return NewScriptedOracle(steps...)
}

// Choose returns the next scripted step, or ErrScriptExhausted.
func (s *ScriptedOracle) Choose(_ context.Context, _ Request) (Choice, error) {
	if s.calls >= len(s.steps) {
		return Choice{}, ErrScriptExhausted
	}
	step := s.steps[s.calls]
	s.calls++
	if step.Err != nil {
		return Choice{}, step.Err
	}
	return step.Choice, nil
}

// Calls returns how many times the oracle has been consulted.
func (s *ScriptedOracle) Calls() int {
	return s.calls
}
