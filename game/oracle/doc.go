// Package oracle models the external move-selection collaborator.
//
// The engine is deterministic; the oracle is not. This package keeps the
// two decoupled behind a single-method capability:
//
//	type Oracle interface {
//		Choose(ctx context.Context, req Request) (Choice, error)
//	}
//
// AnthropicOracle is the production adapter: it renders the board into a
// prompt, calls the Anthropic messages API over HTTP, and parses the
// free-text reply back into a legal move. ScriptedOracle is the test
// stand-in with a fixed response sequence.
//
// Failure handling is the caller's job: on any transport error,
// unparseable reply, or illegal direction, Choose returns
// an error and the game loop substitutes FirstLegal. The oracle is never a
// source of fatal errors once play has started; only a missing API key
// (ErrMissingAPIKey) is fatal, and it surfaces at construction.
package oracle
