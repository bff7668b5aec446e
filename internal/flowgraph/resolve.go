package flowgraph

// NextNode resolves the node that follows current when taking the
// branch named by pathLabel.
//
// Resolution is two-tier, in authored connection order:
//
//  1. The first outgoing connection whose label matches pathLabel
//     (case-insensitive) wins.
//  2. Failing that, the first outgoing connection wins regardless of
//     label. An author who wires only one edge from a condition node
//     should not break the activity.
//
// A node with no outgoing connections returns ("", false), which the
// orchestrator treats as "activity ends here", not as an error.
func (g *Graph) NextNode(current, pathLabel string) (string, bool) {
	for _, c := range g.connections {
		if c.From == current && labelEqual(c.Label, pathLabel) {
			return c.To, true
		}
	}
	for _, c := range g.connections {
		if c.From == current {
			return c.To, true
		}
	}
	return "", false
}
