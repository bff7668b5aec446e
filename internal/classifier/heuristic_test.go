package classifier

import (
	"context"
	"strings"
	"testing"
)

func TestScore_CombinesIndependentSignals(t *testing.T) {
	// 7 words, 40 characters: question mark and connectives only.
	got := Score("because it helps, therefore I understand?")
	if got != 40 {
		t.Fatalf("score = %d, want 40 (15 question + 25 connective)", got)
	}
}

func TestScore_Signals(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     int
	}{
		{"empty", "", 0},
		{"short plain", "I think so", 0},
		{"question only", "what happens next?", 15},
		{"connective only", "because of gravity", 25},
		{"however counts", "However, the result differs", 25},
		{"therefore counts", "THEREFORE it follows", 25},
		{"length over 100", strings.Repeat("abcde", 25), 20},
		{"length over 200 stacks both bonuses", strings.Repeat("abcde", 50), 40},
		// 51 one-letter words is also 102 characters, so the word
		// bonus always arrives with the first length bonus.
		{"word count over 50", strings.Repeat("a ", 51), 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.response); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.response, got, tt.want)
			}
		})
	}
}

func TestScore_LengthCountsCharactersNotBytes(t *testing.T) {
	// 70 CJK characters occupy 210 bytes; neither length bonus applies.
	if got := Score(strings.Repeat("学", 70)); got != 0 {
		t.Fatalf("70-character response scored %d, want 0", got)
	}
	// 110 characters (330 bytes) earns the >100 bonus but not the >200.
	if got := Score(strings.Repeat("学", 110)); got != 20 {
		t.Fatalf("110-character response scored %d, want 20", got)
	}
}

func TestScore_CappedAt100(t *testing.T) {
	// Every signal at once: 20+15+25+20+20 = 100, never more.
	long := strings.Repeat("because? ", 60)
	if got := Score(long); got != 100 {
		t.Fatalf("score = %d, want 100", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	r := "The plant grows toward light because phototropism bends the stem."
	first := Score(r)
	for range 10 {
		if got := Score(r); got != first {
			t.Fatalf("score changed between calls: %d then %d", first, got)
		}
	}
}

func TestHeuristicClassifier_ThresholdMonotonic(t *testing.T) {
	h := NewHeuristicClassifier()
	response := strings.Repeat("x", 210) + " because"

	prev := true
	for threshold := 0; threshold <= 100; threshold++ {
		d, err := h.Classify(context.Background(), Request{
			StudentResponse: response,
			Threshold:       threshold,
		})
		if err != nil {
			t.Fatalf("unexpected error at threshold %d: %v", threshold, err)
		}
		// Raising the threshold can only flip true -> false, never back.
		if d.ShouldTakeMasteryPath && !prev {
			t.Fatalf("mastery flipped false->true as threshold rose to %d", threshold)
		}
		prev = d.ShouldTakeMasteryPath
	}
}

func TestHeuristicClassifier_GatesOnThreshold(t *testing.T) {
	h := NewHeuristicClassifier()

	// 210 chars containing "because": 25 + 20 + 20 = 65... plus the
	// repeated filler pushes word count over 50 only if spaced. Use a
	// response scoring exactly 85.
	response := strings.Repeat("ab", 105) + " because it follows"

	d, err := h.Classify(context.Background(), Request{StudentResponse: response, Threshold: 70})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score := Score(response); score != 65 {
		t.Fatalf("setup: score = %d, want 65", score)
	}
	if d.ShouldTakeMasteryPath {
		t.Error("65 should not pass threshold 70")
	}

	d, _ = h.Classify(context.Background(), Request{StudentResponse: response, Threshold: 65})
	if !d.ShouldTakeMasteryPath {
		t.Error("65 should pass threshold 65")
	}
}
