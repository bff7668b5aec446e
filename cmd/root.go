package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coursecraft/flowengine/internal/flowgraph"
	"github.com/coursecraft/flowengine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "flowengine",
	Short: "Adaptive activity flow engine",
	Long:  "Flowengine decides which branch of an adaptive learning activity a learner takes next, with an auditable record of every decision.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FLOW_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(decisionsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then FLOW_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// graphLoadOptions builds load options from FLOW_DEFAULT_THRESHOLD, the
// deployment-wide mastery threshold for condition nodes that don't
// author their own.
func graphLoadOptions() flowgraph.LoadOptions {
	var opts flowgraph.LoadOptions
	if v := os.Getenv("FLOW_DEFAULT_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			fmt.Fprintf(os.Stderr, "warning: ignoring FLOW_DEFAULT_THRESHOLD=%q (want 0-100)\n", v)
		} else {
			opts.DefaultThreshold = n
		}
	}
	return opts
}
