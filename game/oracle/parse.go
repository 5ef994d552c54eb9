package oracle

import (
	"strings"

	"github.com/wricardo/mcp-training/game2048/game/engine"
)

// moveTokens is the scan order for free-text matching. It intentionally
// matches the move enumeration order so ties resolve the same way the
// fallback does.
var moveTokens = []string{"LEFT", "RIGHT", "UP", "DOWN"}

// ParseChoice extracts a legal move from free-text oracle output. It
// prefers the final "MOVE:" line of the response contract; when that is
// missing or names an illegal move it falls back to scanning the whole
// text for the first legal direction token. Returns ErrNoMoveFound when
// nothing legal is recognizable.
func ParseChoice(text string, legal []engine.Move) (Choice, error) {
	if len(legal) == 0 {
		return Choice{}, ErrNoLegalMoves
	}

	if m, ok := parseMoveLine(text, legal); ok {
		return Choice{Move: m, Rationale: extractRationale(text, m)}, nil
	}

	upper := strings.ToUpper(text)
	for _, token := range moveTokens {
		if !strings.Contains(upper, token) {
			continue
		}
		m, err := engine.ParseMove(token)
		if err != nil {
			continue
		}
		if Contains(legal, m) {
			return Choice{Move: m, Rationale: extractRationale(text, m)}, nil
		}
	}

	return Choice{}, ErrNoMoveFound
}

// parseMoveLine looks for the last line of the form "MOVE: <direction>"
// and returns its direction when legal.
func parseMoveLine(text string, legal []engine.Move) (engine.Move, bool) {
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.ToUpper(strings.TrimSpace(lines[i]))
		if !strings.HasPrefix(line, "MOVE:") {
			continue
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, "MOVE:"))
		for _, token := range moveTokens {
			if strings.Contains(rest, token) {
				m, err := engine.ParseMove(token)
				if err != nil {
					continue
				}
				if Contains(legal, m) {
					return m, true
				}
				// A MOVE: line naming an illegal direction is not trusted;
				// keep scanning earlier lines.
			}
		}
	}
	return 0, false
}

// extractRationale keeps every line that does not carry the chosen move
// token, preserving the oracle's analysis without its answer line.
func extractRationale(text string, m engine.Move) string {
	token := strings.ToUpper(m.String())

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToUpper(line), token) {
			continue
		}
		kept = append(kept, line)
	}

	rationale := strings.TrimSpace(strings.Join(kept, "\n"))
	if rationale == "" {
		return strings.TrimSpace(text)
	}
	return rationale
}
