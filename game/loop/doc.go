// Package loop sequences turns for an oracle-driven 2048 game.
//
// The Runner owns the turn state machine: while moves remain it enumerates
// the legal set, consults the oracle, applies the chosen move (or the
// first-legal fallback when the oracle fails, answers illegally, or is
// absent), and lets the engine spawn the next tile. Play stops when the
// board is terminal, the configured move cap is reached, or the context is
// canceled.
//
// Oracle failures never abort a run; they only downgrade the turn's source
// to "fallback". Engine errors are the only fatal path out of Play.
package loop
