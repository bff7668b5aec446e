package flowgraph

import (
	"fmt"
	"strings"
)

// Validate performs structural checks on the graph and returns a
// combined error describing all problems found, or nil.
//
// Validation is for authoring tools: the engine itself tolerates every
// condition reported here. A dangling connection endpoint resolves to
// "no match" at traversal time rather than failing the activity.
func (g *Graph) Validate() error {
	var errs []string

	idSet := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		if idSet[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node ID: %q", n.ID))
		}
		idSet[n.ID] = true
	}

	for i, c := range g.connections {
		if !idSet[c.From] {
			errs = append(errs, fmt.Sprintf("connection %d references nonexistent source node %q", i, c.From))
		}
		if !idSet[c.To] {
			errs = append(errs, fmt.Sprintf("connection %d references nonexistent target node %q", i, c.To))
		}
	}

	for _, n := range g.nodes {
		if n.Kind == KindCondition {
			if n.Condition == nil {
				errs = append(errs, fmt.Sprintf("condition node %q has no condition config", n.ID))
				continue
			}
			t := n.Condition.PerformanceThreshold
			if t < 0 || t > 100 {
				errs = append(errs, fmt.Sprintf("condition node %q: threshold %d outside [0,100]", n.ID, t))
			}
			if len(g.Outgoing(n.ID)) == 0 {
				errs = append(errs, fmt.Sprintf("condition node %q has no outgoing connections", n.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("activity graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
