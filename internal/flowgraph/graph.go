package flowgraph

import "strings"

// NodeKind discriminates node variants. Only condition nodes carry
// branching behavior; everything else passes through.
type NodeKind string

const (
	KindCondition NodeKind = "condition"
	KindContent   NodeKind = "content"
	KindOther     NodeKind = "other"
)

// ConditionType selects how a condition node decides its branch.
type ConditionType string

// ConditionPerformance branches on a mastery classification of the
// learner's response. It is the only type the classifier attempts the
// AI path for.
const ConditionPerformance ConditionType = "performance"

// DefaultThreshold is the mastery threshold applied when neither the
// authored node nor the caller supplies one.
const DefaultThreshold = 70

// ConditionConfig holds the authored branching parameters of a
// condition node.
type ConditionConfig struct {
	ConditionType        ConditionType
	PerformanceThreshold int
	UseAIClassification  bool
	MasteryPathLabel     string
	NovelPathLabel       string
}

// Node is one vertex of an activity graph.
// Condition is non-nil exactly when Kind == KindCondition.
type Node struct {
	ID        string
	Kind      NodeKind
	Condition *ConditionConfig
}

// Connection is a directed, optionally labeled edge between two nodes.
type Connection struct {
	From  string
	To    string
	Label string
}

// Graph is the executable definition of one activity. It is immutable
// after construction and safe for concurrent readers.
//
// Connections keep their authored order: the resolver's tie-break
// depends on it.
type Graph struct {
	byID        map[string]*Node
	nodes       []Node
	connections []Connection
}

// New builds a Graph from authored nodes and connections. Duplicate
// node ids keep the first occurrence; dangling connection endpoints are
// tolerated (resolution simply yields no match for them).
func New(nodes []Node, connections []Connection) *Graph {
	g := &Graph{
		byID:        make(map[string]*Node, len(nodes)),
		nodes:       nodes,
		connections: connections,
	}
	for i := range g.nodes {
		if _, exists := g.byID[g.nodes[i].ID]; !exists {
			g.byID[g.nodes[i].ID] = &g.nodes[i]
		}
	}
	return g
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.byID[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes in authored order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Connections returns all connections in authored order.
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)
	return out
}

// Outgoing returns the connections leaving the given node, in authored order.
func (g *Graph) Outgoing(id string) []Connection {
	var out []Connection
	for _, c := range g.connections {
		if c.From == id {
			out = append(out, c)
		}
	}
	return out
}

// labelEqual compares connection labels case-insensitively.
func labelEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}
