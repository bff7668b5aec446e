package classifier

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Heuristic signal weights. These exact values are a pedagogical
// contract: activities are authored against them (a long, wordy,
// reasoned answer scores 85). Do not tune them casually.
const (
	wordCountBonus  = 20 // more than 50 words
	questionBonus   = 15 // contains a question mark
	reasoningBonus  = 25 // contains a reasoning connective
	length100Bonus  = 20 // longer than 100 characters
	length200Bonus  = 20 // longer than 200 characters
	maxScore        = 100
	longWordCount   = 50
	longLength      = 100
	veryLongLength  = 200
)

var reasoningConnectives = []string{"because", "therefore", "however"}

// Score converts a free-text learner response into a mastery score in
// [0,100] using fixed linguistic signals. Deterministic, side-effect
// free, and always available — it is the fallback when the AI
// classifier is disabled, unconfigured, or failing.
func Score(response string) int {
	score := 0

	if len(strings.Fields(response)) > longWordCount {
		score += wordCountBonus
	}
	if strings.Contains(response, "?") {
		score += questionBonus
	}
	lower := strings.ToLower(response)
	for _, c := range reasoningConnectives {
		if strings.Contains(lower, c) {
			score += reasoningBonus
			break
		}
	}
	// Length is measured in characters, not bytes, so multibyte
	// scripts aren't graded on encoding width.
	length := utf8.RuneCountInString(response)
	if length > longLength {
		score += length100Bonus
	}
	if length > veryLongLength {
		score += length200Bonus
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// HeuristicClassifier is the deterministic rule-based Classifier.
// It never returns an error.
type HeuristicClassifier struct{}

// NewHeuristicClassifier creates the rule-based classifier.
func NewHeuristicClassifier() *HeuristicClassifier {
	return &HeuristicClassifier{}
}

// Classify scores the response and gates it on the request threshold.
// Confidence is the normalized score, which keeps repeated calls for
// the same input bit-for-bit reproducible.
func (h *HeuristicClassifier) Classify(_ context.Context, req Request) (Decision, error) {
	score := Score(req.StudentResponse)
	return Decision{
		ShouldTakeMasteryPath: score >= req.Threshold,
		Confidence:            float64(score) / 100,
		Reasoning:             fmt.Sprintf("Heuristic score %d against threshold %d", score, req.Threshold),
	}, nil
}
