package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coursecraft/flowengine/internal/llm"
	"github.com/coursecraft/flowengine/internal/quizgen"
	"github.com/coursecraft/flowengine/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate quiz questions for an activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		title, _ := cmd.Flags().GetString("title")
		summary, _ := cmd.Flags().GetString("summary")
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		cfg, ok := llm.ResolveConfig()
		if !ok {
			return fmt.Errorf("no AI credential configured (set FLOW_GEMINI_API_KEY, FLOW_OPENAI_API_KEY, or FLOW_ANTHROPIC_API_KEY)")
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

		provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		questions, err := gen.Generate(cmd.Context(), quizgen.GenerateInput{
			ActivityTitle: title,
			Sources:       []quizgen.Source{{Title: title, Summary: summary}},
			Count:         count,
			Difficulty:    difficulty,
		})
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	quizCmd.Flags().StringP("title", "t", "", "Activity title (required)")
	quizCmd.Flags().StringP("summary", "s", "", "Summary of the studied material")
	quizCmd.Flags().IntP("count", "n", 0, "Number of questions (0 uses the default)")
	quizCmd.Flags().String("difficulty", "", "easy, medium, or hard (empty for mixed)")
	_ = quizCmd.MarkFlagRequired("title")
}
