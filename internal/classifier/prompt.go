package classifier

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const classificationSystemPrompt = `You are an expert learning scientist deciding which branch of an adaptive activity a learner should take next.

Instructions:
- Judge whether the learner's response demonstrates mastery of the material in the provided context sources.
- Weigh depth of reasoning over length; restating the source is not mastery.
- Use the performance history to calibrate: a weak response from a consistently strong learner may still warrant the mastery path.
- Provide a confidence score (0.0-1.0) and a performanceScore (0-100).
- Keep reasoning to one or two sentences.`

var classificationUserTemplate = template.Must(template.New("classification").Parse(`Learner response:
{{.Response}}

Mastery threshold: {{.Threshold}}/100

Context the learner has studied:
{{.Context}}

Performance history:
{{.History}}`))

type classificationPromptInput struct {
	Response  string
	Threshold int
	Context   string
	History   string
}

func buildClassificationMessage(req Request) (string, error) {
	input := classificationPromptInput{
		Response:  req.StudentResponse,
		Threshold: req.Threshold,
		Context:   renderContextSources(req.ContextSources),
		History:   renderHistory(req.PerformanceHistory),
	}

	var buf bytes.Buffer
	if err := classificationUserTemplate.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderContextSources(sources []ContextSource) string {
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

func renderHistory(history []HistoryEntry) string {
	if len(history) == 0 {
		return "None"
	}
	var b strings.Builder
	for _, h := range history {
		switch {
		case h.Score != nil:
			fmt.Fprintf(&b, "- %s: score %.0f\n", h.Type, *h.Score)
		case h.Performance != nil:
			fmt.Fprintf(&b, "- %s: performance %.0f\n", h.Type, *h.Performance)
		default:
			fmt.Fprintf(&b, "- %s\n", h.Type)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
