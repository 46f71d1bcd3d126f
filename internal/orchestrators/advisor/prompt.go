package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/combat-companion/internal/combat"
)

const promptTemplate = `You are a D&D 5e Combat Optimizer.

CHARACTER: %s (HP: %d/%d)
AVAILABLE MOVES: %s

SCENARIO: %s

Provide a concise, optimal turn breakdown:
1. **Movement**: Where to go.
2. **Action**: The best main action.
3. **Bonus Action**: How to utilize the bonus economy.
4. **Reaction**: What to look out for.
`

// ComposePrompt renders the fixed tactical prompt
func ComposePrompt(input PromptInput) string {
	opts := input.Options
	if opts == nil {
		opts = combat.NewOptions()
	}

	moves, err := json.Marshal(opts)
	if err != nil {
		moves = []byte("{}")
	}

	return fmt.Sprintf(promptTemplate,
		input.Name,
		input.CurrentHP,
		input.MaxHP,
		moves,
		strings.TrimSpace(input.Situation))
}
