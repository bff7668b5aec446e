package flowgraph

import (
	"strings"
	"testing"
)

func TestLoad_ConditionDefaults(t *testing.T) {
	raw := []byte(`{
		"nodes": [{"id": "cond1", "type": "condition"}],
		"connections": []
	}`)

	g, err := Load(raw, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	n, ok := g.Node("cond1")
	if !ok {
		t.Fatal("node cond1 not found")
	}
	if n.Kind != KindCondition {
		t.Fatalf("kind = %q, want condition", n.Kind)
	}
	cfg := n.Condition
	if cfg == nil {
		t.Fatal("condition config is nil")
	}
	if cfg.ConditionType != ConditionPerformance {
		t.Errorf("condition type = %q, want performance", cfg.ConditionType)
	}
	if cfg.PerformanceThreshold != DefaultThreshold {
		t.Errorf("threshold = %d, want %d", cfg.PerformanceThreshold, DefaultThreshold)
	}
	if !cfg.UseAIClassification {
		t.Error("use_ai_classification should default to true")
	}
	if cfg.MasteryPathLabel != "Mastery Path" || cfg.NovelPathLabel != "Novel Path" {
		t.Errorf("labels = %q / %q, want defaults", cfg.MasteryPathLabel, cfg.NovelPathLabel)
	}
}

func TestLoad_ConditionOverrides(t *testing.T) {
	raw := []byte(`{
		"nodes": [{
			"id": "cond1",
			"type": "condition",
			"data": {
				"performance_threshold": 85,
				"use_ai_classification": false,
				"mastery_path_label": "Fast Track",
				"novel_path_label": "Review"
			}
		}],
		"connections": [{"from": "cond1", "to": "m1", "label": "mastery"}]
	}`)

	g, err := Load(raw, LoadOptions{DefaultThreshold: 60})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	n, _ := g.Node("cond1")
	cfg := n.Condition
	if cfg.PerformanceThreshold != 85 {
		t.Errorf("threshold = %d, want 85", cfg.PerformanceThreshold)
	}
	if cfg.UseAIClassification {
		t.Error("use_ai_classification should be false")
	}
	if cfg.MasteryPathLabel != "Fast Track" {
		t.Errorf("mastery label = %q, want Fast Track", cfg.MasteryPathLabel)
	}
}

func TestLoad_CallerDefaultThreshold(t *testing.T) {
	raw := []byte(`{"nodes": [{"id": "c", "type": "condition"}], "connections": []}`)

	g, err := Load(raw, LoadOptions{DefaultThreshold: 90})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n, _ := g.Node("c")
	if n.Condition.PerformanceThreshold != 90 {
		t.Errorf("threshold = %d, want 90", n.Condition.PerformanceThreshold)
	}
}

func TestLoad_UnknownTypeBecomesOther(t *testing.T) {
	raw := []byte(`{"nodes": [{"id": "v1", "type": "video"}], "connections": []}`)

	g, err := Load(raw, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	n, _ := g.Node("v1")
	if n.Kind != KindOther {
		t.Errorf("kind = %q, want other", n.Kind)
	}
	if n.Condition != nil {
		t.Error("non-condition node should not carry condition config")
	}
}

func TestLoad_ThresholdOutOfRange(t *testing.T) {
	raw := []byte(`{
		"nodes": [{"id": "c", "type": "condition", "data": {"performance_threshold": 150}}],
		"connections": []
	}`)

	_, err := Load(raw, LoadOptions{})
	if err == nil {
		t.Fatal("expected error for out-of-range threshold")
	}
	if !strings.Contains(err.Error(), "150") {
		t.Errorf("error should mention the bad value, got: %v", err)
	}
}

func TestValidate_ReportsDanglingAndDuplicates(t *testing.T) {
	g := New(
		[]Node{condNode("a"), condNode("a")},
		[]Connection{{From: "a", To: "missing", Label: "mastery"}},
	)

	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should mention the dangling target, got: %v", err)
	}
}

func TestValidate_ConditionNeedsOutgoingEdge(t *testing.T) {
	g := New([]Node{condNode("a")}, nil)

	err := g.Validate()
	if err == nil {
		t.Fatal("expected validation error for condition node with no edges")
	}
	if !strings.Contains(err.Error(), "outgoing") {
		t.Errorf("error should mention outgoing connections, got: %v", err)
	}
}
