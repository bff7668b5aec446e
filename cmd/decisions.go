package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursecraft/flowengine/internal/store"
	"github.com/spf13/cobra"
)

var decisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Inspect recorded branching decisions",
}

var decisionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent decisions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		activityID, _ := cmd.Flags().GetString("activity")
		userID, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		q := store.DecisionQuery{ActivityID: activityID, UserID: userID}
		q.Limit = limit
		records, err := s.EventRepo().QueryDecisions(ctx, q)
		if err != nil {
			return fmt.Errorf("query decisions: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No decisions found.")
			return nil
		}

		// Header.
		fmt.Printf("%-36s  %-19s  %-12s  %-10s  %-7s  %-4s  %-8s\n",
			"Decision", "Timestamp", "Activity", "Node", "Mastery", "Thr", "Method")
		fmt.Println(strings.Repeat("─", 108))

		for _, d := range records {
			mastery := "novel"
			if d.ShouldTakeMasteryPath {
				mastery = "mastery"
			}
			fmt.Printf("%-36s  %-19s  %-12s  %-10s  %-7s  %-4d  %-8s\n",
				d.DecisionID,
				d.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(d.ActivityID, 12),
				truncate(d.NodeID, 10),
				mastery,
				d.ThresholdUsed,
				d.Method,
			)
		}
		return nil
	},
}

var decisionsViewCmd = &cobra.Command{
	Use:   "view <decision-id>",
	Short: "View one decision in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		d, err := s.EventRepo().GetDecision(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get decision: %w", err)
		}
		if d == nil {
			return fmt.Errorf("decision %q not found", args[0])
		}

		fmt.Printf("Decision:   %s\n", d.DecisionID)
		fmt.Printf("Time:       %s\n", d.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("User:       %s\n", d.UserID)
		fmt.Printf("Activity:   %s\n", d.ActivityID)
		fmt.Printf("Node:       %s\n", d.NodeID)
		fmt.Printf("Mastery:    %v\n", d.ShouldTakeMasteryPath)
		fmt.Printf("Confidence: %.2f\n", d.Confidence)
		fmt.Printf("Threshold:  %d\n", d.ThresholdUsed)
		fmt.Printf("Method:     %s\n", d.Method)
		fmt.Printf("Reasoning:  %s\n", d.Reasoning)

		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println("RESPONSE")
		fmt.Println(strings.Repeat("─", 60))
		if d.Response != "" {
			fmt.Println(d.Response)
		} else {
			fmt.Println("(empty)")
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	decisionsListCmd.Flags().IntP("limit", "n", 20, "Number of decisions to show")
	decisionsListCmd.Flags().StringP("activity", "a", "", "Filter by activity ID")
	decisionsListCmd.Flags().StringP("user", "u", "", "Filter by user ID")

	decisionsCmd.AddCommand(decisionsListCmd)
	decisionsCmd.AddCommand(decisionsViewCmd)
}
