package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/catalog"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/logger"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/reasoning/gemini"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/recommend"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/secrets"
	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recommendation HTTP server",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (default 8000)")

	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

// serve wires the catalog, reasoner and recommender together and runs the
// HTTP server until interrupted.
func serve(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the career-recommender", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	cat := buildCatalog(ctx, config, logger)
	reasoner := buildReasoner(ctx, config.AI, logger)
	recommender := recommend.New(cat, reasoner, logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: server.New(cat, recommender, reasoner, version, logger).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("listening", zap.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serving http", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down", zap.String("reason", "signal received"))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown failed", zap.Error(err))
		}
	}
}

// buildCatalog prefers the persistent store when a database is configured.
// Any storage failure degrades to the in-memory catalog so the service
// always starts.
func buildCatalog(ctx context.Context, config *Config, logger *zap.Logger) catalog.Catalog {
	seed := career.Seed()

	dsn, err := secrets.Load(secrets.Source{
		Name:  "database url",
		Value: config.DatabaseURL,
		File:  config.DatabaseURLFile,
	})
	if err != nil {
		logger.Info("no database configured, serving careers from memory")
		return catalog.NewMemory(seed)
	}

	store, err := catalog.NewStore(dsn, seed, logger)
	if err != nil {
		logger.Warn("connecting to database failed, serving careers from memory", zap.Error(err))
		return catalog.NewMemory(seed)
	}

	if err := store.Seed(ctx); err != nil {
		logger.Warn("seeding careers table", zap.Error(err))
	}

	return store
}

// buildReasoner returns the generative reasoner when a gemini api key is
// available and the rule-based one otherwise.
func buildReasoner(ctx context.Context, config *AIConfig, base *zap.Logger) reasoning.Reasoner {
	ruleBased := reasoning.NewRuleBased()

	if config == nil || config.Gemini == nil {
		base.Info("no ai provider configured, using rule-based reasoning")
		return ruleBased
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		base.Warn("unsupported ai provider, using rule-based reasoning", zap.String("provider", config.Provider))
		return ruleBased
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: config.Gemini.APIKey,
		File:  config.Gemini.APIKeyFile,
	})
	if err != nil {
		base.Info("no gemini api key, using rule-based reasoning", zap.Error(err))
		return ruleBased
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model)
	if err != nil {
		base.Warn("creating gemini client failed, using rule-based reasoning", zap.Error(err))
		return ruleBased
	}

	aiLogger := logger.WithAIFields(base, "gemini", generator.Model())

	base.Info("using gemini reasoning", zap.String("model", generator.Model()))

	return gemini.NewReasoner(generator, ruleBased, aiLogger)
}
