// Package web parses web command flags and starts the audit desk HTTP server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/seoforge/auditdesk/internal/platform/config"
	"github.com/seoforge/auditdesk/internal/platform/otel"
	"github.com/seoforge/auditdesk/internal/services/advisor"
	auditservice "github.com/seoforge/auditdesk/internal/services/audit/service"
	"github.com/seoforge/auditdesk/internal/services/audit/storage/sqlite"
	"github.com/seoforge/auditdesk/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr        string `env:"AUDITDESK_WEB_HTTP_ADDR"    envDefault:"localhost:8086"`
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

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", cfg.GeminiModel, "Gemini model for recommendations")
	fs.StringVar(&cfg.SafetyThreshold, "safety-threshold", cfg.SafetyThreshold, "Gemini harm block threshold")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the audit desk web service.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "web")
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

	server, err := web.NewServer(web.Config{
		HTTPAddr:    cfg.HTTPAddr,
		Dataset:     auditSvc,
		Checklist:   auditSvc,
		Recommender: advisorSvc,
		Logger:      log.Default(),
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// newGenerator builds the Gemini client when a key is configured. Without a
// key the advisor runs in degraded mode and reports the missing credential.
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
