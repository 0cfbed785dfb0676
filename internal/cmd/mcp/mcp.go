// Package mcp parses MCP command flags and serves audit tools over stdio.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	mcpservice "github.com/seoforge/auditdesk/internal/mcp/service"
	"github.com/seoforge/auditdesk/internal/platform/config"
	"github.com/seoforge/auditdesk/internal/platform/otel"
	"github.com/seoforge/auditdesk/internal/services/advisor"
	auditservice "github.com/seoforge/auditdesk/internal/services/audit/service"
	"github.com/seoforge/auditdesk/internal/services/audit/storage/sqlite"
)

// Config holds the MCP command configuration.
type Config struct {
	DBPath          string `env:"AUDITDESK_DB_PATH"          envDefault:"auditdesk.db"`
	GeminiAPIKey    string `env:"AUDITDESK_GEMINI_API_KEY"`
	GeminiModel     string `env:"AUDITDESK_GEMINI_MODEL"     envDefault:"gemini-2.0-flash"`
	SafetyThreshold string `env:"AUDITDESK_SAFETY_THRESHOLD" envDefault:"BLOCK_NONE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", cfg.GeminiModel, "Gemini model for recommendations")
	fs.StringVar(&cfg.SafetyThreshold, "safety-threshold", cfg.SafetyThreshold, "Gemini harm block threshold")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter over stdio.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open audit store: %w", err)
	}
	defer store.Close()

	auditSvc := auditservice.New(store, log.Default())
	advisorSvc := advisor.New(advisor.Config{
		APIKey:          cfg.GeminiAPIKey,
		Model:           cfg.GeminiModel,
		SafetyThreshold: cfg.SafetyThreshold,
	}, newGenerator(ctx, cfg.GeminiAPIKey))

	return mcpservice.New(auditSvc, advisorSvc).Run(ctx)
}

func newGenerator(ctx context.Context, apiKey string) advisor.Generator {
	if apiKey == "" {
		return nil
	}
	generator, err := advisor.NewGeminiGenerator(ctx, apiKey)
	if err != nil {
		log.Printf("gemini client init failed, recommendations disabled: %v", err)
		return nil
	}
	return generator
}
