package oracle

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the request into the instruction text sent to the
// reasoning model. The format mirrors the response contract ParseChoice
// expects: candidate analysis followed by a final "MOVE:" line.
func BuildPrompt(req Request) string {
	var sb strings.Builder

	sb.WriteString("You are playing the game 2048. Your goal is to merge tiles to reach the 2048 tile and achieve the highest possible score.\n\n")

	fmt.Fprintf(&sb, "Current board state (move #%d, score: %d):\n%s\n", req.MoveNumber+1, req.Score, req.Board.Render())

	names := make([]string, len(req.Legal))
	for i, m := range req.Legal {
		names[i] = strings.ToUpper(m.String())
	}
	fmt.Fprintf(&sb, "Available moves: [%s]\n\n", strings.Join(names, ", "))

	if len(req.Previews) > 0 {
		sb.WriteString("Board after each available move, excluding the new randomly generated tile:\n")
		for _, p := range req.Previews {
			fmt.Fprintf(&sb, "\n%s:\n%s", strings.ToUpper(p.Move.String()), p.Board.Render())
		}
		sb.WriteString("\n")
	}

	sb.WriteString(`In 2048, the best strategy typically involves:
1. Keeping the highest value tile in a corner (usually bottom-right)
2. Building a snake-like pattern from that corner
3. Avoiding random moves that break the pattern
4. Prioritizing moves that merge tiles and create space

Please analyze the current board and choose the best move from the available options. Consider:
- Which move will create the most merges?
- Which move maintains or improves the board structure?
- Which move opens up the most opportunities for future moves?

First explain your reasoning, then provide your move choice.

Format your response as:
<For each candidate move>
CANDIDATE MOVE: [LEFT/RIGHT/UP/DOWN]
REASONING: [your analysis here]
<Finally>
MOVE: [LEFT/RIGHT/UP/DOWN]`)

	return sb.String()
}
