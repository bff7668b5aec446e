package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an instructional designer writing quiz questions for an online learning activity.

Rules:
- Every question must be answerable from the provided study material alone. Do not test outside knowledge.
- Write clear, self-contained questions in plain text.
- Choose "multiple_choice" for concept and comparison questions, "true_false" for claims, and "short_answer" only when a one- or two-word answer is unambiguous.
- For multiple choice, provide 4 options where exactly one is correct. Distractors should reflect plausible misunderstandings, not random values.
- The explanation should point back to the part of the material that settles the answer.
- Give each question a short unique id ("q1", "q2", ...).
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	count := input.Count
	if count <= 0 {
		count = cfg.DefaultCount
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "mixed"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Activity: %s\n", input.ActivityTitle)
	fmt.Fprintf(&b, "Questions to generate: %d\n", count)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)

	b.WriteString("\nStudy material:\n")
	b.WriteString(buildSources(input.Sources))

	b.WriteString("\n\nAlready asked for this activity:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

func buildSources(sources []Source) string {
	if len(sources) == 0 {
		return "None"
	}
	var b strings.Builder
	for _, s := range sources {
		fmt.Fprintf(&b, "- %s", s.Title)
		if s.Summary != "" {
			fmt.Fprintf(&b, ": %s", s.Summary)
		}
		b.WriteString("\n")
		for _, kp := range s.KeyPoints {
			fmt.Fprintf(&b, "  * %s\n", kp)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildDedup formats prior questions for the prompt, respecting the max
// limit. Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
