package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coursecraft/flowengine/internal/classifier"
	"github.com/coursecraft/flowengine/internal/flow"
	"github.com/coursecraft/flowengine/internal/httpapi"
	"github.com/coursecraft/flowengine/internal/llm"
	"github.com/coursecraft/flowengine/internal/quizgen"
	"github.com/coursecraft/flowengine/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the flow engine HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if it exists.
		_ = godotenv.Load()

		port, _ := cmd.Flags().GetInt("port")
		contentDir, _ := cmd.Flags().GetString("content")

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

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

		ctx := cmd.Context()
		opts := httpapi.Options{
			Port:   port,
			Logger: logger,
			Graphs: httpapi.NewDirSource(contentDir, httpapi.WithLoadOptions(graphLoadOptions())),
			Events: eventRepo,
		}

		cfg, ok := llm.ResolveConfig()
		if !ok {
			logger.Info("no AI credential configured, running in simple-scoring mode")
			opts.Orchestrator = flow.NewOrchestrator(classifier.NewGateway(nil), eventRepo)
			return httpapi.New(opts).Start()
		}

		// The classification path fails fast to the heuristic; quiz
		// authoring can afford the full backoff.
		classifyCfg := cfg
		classifyCfg.Retry.MaxAttempts = 1
		classifyProvider, err := llm.NewProvider(ctx, classifyCfg, eventRepo)
		if err != nil {
			return fmt.Errorf("initialize classifier provider: %w", err)
		}
		quizProvider, err := llm.NewProvider(ctx, cfg, eventRepo)
		if err != nil {
			return fmt.Errorf("initialize quiz provider: %w", err)
		}

		gateway := classifier.NewGateway(
			classifier.NewLLMClassifier(classifyProvider, classifier.DefaultLLMConfig()),
			classifier.WithTimeout(cfg.Timeout),
		)
		opts.Orchestrator = flow.NewOrchestrator(gateway, eventRepo)
		opts.Quizzes = quizgen.New(quizProvider, quizgen.DefaultConfig())

		logger.Info("AI classification enabled",
			slog.String("provider", cfg.Provider),
			slog.String("model", classifyProvider.ModelID()),
		)
		return httpapi.New(opts).Start()
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringP("content", "c", "./content", "Directory of authored activity graphs (<activityID>.json)")
}
