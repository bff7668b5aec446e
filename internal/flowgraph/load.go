package flowgraph

import (
	"encoding/json"
	"fmt"
)

// Wire format for authored activity content. The authoring collaborator
// stores nodes as loosely-typed objects; decoding narrows them into the
// closed Node variants at load time.

type contentDoc struct {
	Nodes       []wireNode       `json:"nodes"`
	Connections []wireConnection `json:"connections"`
}

type wireNode struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type wireCondition struct {
	ConditionType        string `json:"condition_type"`
	PerformanceThreshold *int   `json:"performance_threshold"`
	UseAIClassification  *bool  `json:"use_ai_classification"`
	MasteryPathLabel     string `json:"mastery_path_label"`
	NovelPathLabel       string `json:"novel_path_label"`
}

type wireConnection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// LoadOptions adjusts defaults applied while decoding authored content.
type LoadOptions struct {
	// DefaultThreshold is used for condition nodes that don't author
	// their own performance_threshold. Zero means DefaultThreshold (70).
	DefaultThreshold int
}

// Load decodes authored activity content into a Graph.
// Unknown node types become KindOther and pass through untouched;
// only a malformed document fails the load.
func Load(raw []byte, opts LoadOptions) (*Graph, error) {
	var doc contentDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode activity content: %w", err)
	}

	threshold := opts.DefaultThreshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	nodes := make([]Node, 0, len(doc.Nodes))
	for _, wn := range doc.Nodes {
		if wn.ID == "" {
			return nil, fmt.Errorf("node without id in activity content")
		}
		n := Node{ID: wn.ID}
		switch wn.Type {
		case string(KindCondition):
			n.Kind = KindCondition
			cfg, err := decodeCondition(wn, threshold)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", wn.ID, err)
			}
			n.Condition = cfg
		case string(KindContent):
			n.Kind = KindContent
		default:
			n.Kind = KindOther
		}
		nodes = append(nodes, n)
	}

	conns := make([]Connection, 0, len(doc.Connections))
	for _, wc := range doc.Connections {
		conns = append(conns, Connection{From: wc.From, To: wc.To, Label: wc.Label})
	}

	return New(nodes, conns), nil
}

func decodeCondition(wn wireNode, defaultThreshold int) (*ConditionConfig, error) {
	var wc wireCondition
	if len(wn.Data) > 0 {
		if err := json.Unmarshal(wn.Data, &wc); err != nil {
			return nil, fmt.Errorf("decode condition config: %w", err)
		}
	}

	cfg := &ConditionConfig{
		ConditionType:        ConditionPerformance,
		PerformanceThreshold: defaultThreshold,
		UseAIClassification:  true,
		MasteryPathLabel:     "Mastery Path",
		NovelPathLabel:       "Novel Path",
	}

	if wc.ConditionType != "" {
		cfg.ConditionType = ConditionType(wc.ConditionType)
	}
	if wc.PerformanceThreshold != nil {
		t := *wc.PerformanceThreshold
		if t < 0 || t > 100 {
			return nil, fmt.Errorf("performance_threshold %d outside [0,100]", t)
		}
		cfg.PerformanceThreshold = t
	}
	if wc.UseAIClassification != nil {
		cfg.UseAIClassification = *wc.UseAIClassification
	}
	if wc.MasteryPathLabel != "" {
		cfg.MasteryPathLabel = wc.MasteryPathLabel
	}
	if wc.NovelPathLabel != "" {
		cfg.NovelPathLabel = wc.NovelPathLabel
	}

	return cfg, nil
}
