package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coursecraft/flowengine/internal/classifier"
	"github.com/coursecraft/flowengine/internal/flow"
	"github.com/coursecraft/flowengine/internal/flowgraph"
	"github.com/coursecraft/flowengine/internal/llm"
	"github.com/coursecraft/flowengine/internal/store"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <activity.json>",
	Short: "Run one branching decision against an authored activity graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		nodeID, _ := cmd.Flags().GetString("node")
		response, _ := cmd.Flags().GetString("response")
		userID, _ := cmd.Flags().GetString("user")
		useAI, _ := cmd.Flags().GetBool("ai")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read activity: %w", err)
		}
		g, err := flowgraph.Load(raw, graphLoadOptions())
		if err != nil {
			return err
		}
		if err := g.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		eventRepo := st.EventRepo()

		var gateway *classifier.Gateway
		if useAI {
			cfg, ok := llm.ResolveConfig()
			if !ok {
				fmt.Fprintln(os.Stderr, "No AI credential configured; using simple scoring.")
				gateway = classifier.NewGateway(nil)
			} else {
				cfg.Retry.MaxAttempts = 1
				provider, err := llm.NewProvider(cmd.Context(), cfg, eventRepo)
				if err != nil {
					return fmt.Errorf("initialize provider: %w", err)
				}
				gateway = classifier.NewGateway(
					classifier.NewLLMClassifier(provider, classifier.DefaultLLMConfig()),
					classifier.WithTimeout(cfg.Timeout),
				)
			}
		} else {
			gateway = classifier.NewGateway(nil)
		}

		o := flow.NewOrchestrator(gateway, eventRepo)
		res, err := o.Advance(cmd.Context(), g, flow.AdvanceRequest{
			ActivityID:      args[0],
			UserID:          userID,
			NodeID:          nodeID,
			StudentResponse: response,
		})
		if err != nil {
			return err
		}

		out := map[string]any{
			"shouldTakeMasteryPath": res.Decision.ShouldTakeMasteryPath,
			"confidence":            res.Decision.Confidence,
			"reasoning":             res.Decision.Reasoning,
			"pathLabel":             res.PathLabel,
			"method":                string(res.Decision.Method),
			"thresholdUsed":         res.ThresholdUsed,
			"decisionId":            res.DecisionID,
		}
		if res.HasNext {
			out["nextNodeId"] = res.NextNodeID
		} else {
			out["nextNodeId"] = nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	classifyCmd.Flags().StringP("node", "n", "", "Condition node ID (required)")
	classifyCmd.Flags().StringP("response", "r", "", "Learner response text")
	classifyCmd.Flags().StringP("user", "u", "", "Learner ID for the audit record")
	classifyCmd.Flags().Bool("ai", false, "Attempt AI classification (falls back to heuristic)")
	_ = classifyCmd.MarkFlagRequired("node")
}
