package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/talent-matcher/internal/recommend"
)

// PlanNarrator renders an upskilling plan as short motivational prose.
// It satisfies recommend.Narrator.
type PlanNarrator struct {
	client Client
}

// NewPlanNarrator wraps an LLM client as a plan narrator.
func NewPlanNarrator(client Client) *PlanNarrator {
	return &PlanNarrator{client: client}
}

// Narrate generates a narrative for the plan.
func (n *PlanNarrator) Narrate(ctx context.Context, plan recommend.Plan) (string, error) {
	text, err := n.client.GenerateContent(ctx, buildNarrativePrompt(plan))
	if err != nil {
		return "", fmt.Errorf("failed to narrate upskilling plan: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func buildNarrativePrompt(plan recommend.Plan) string {
	var b strings.Builder
	b.WriteString("You are a career coach. Write a short, encouraging summary ")
	b.WriteString("(2-3 paragraphs, plain text, no markdown) of the following ")
	b.WriteString("upskilling plan. Mention the target role and the order in ")
	b.WriteString("which to tackle the skills.\n\n")
	fmt.Fprintf(&b, "Target role: %s\n\n", plan.TargetRole)

	for _, sp := range plan.Skills {
		fmt.Fprintf(&b, "Skill: %s (about %d weeks)\n", sp.Skill, sp.ETAWeeks)
		for _, item := range sp.Items {
			fmt.Fprintf(&b, "- [%s] %s (%d hours)\n", item.Type, item.Label, item.Hours)
		}
		b.WriteString("\n")
	}
	return b.String()
}
