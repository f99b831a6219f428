package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/rfp-advisor/internal/ai"
	"github.com/spigell/rfp-advisor/internal/ai/gemini"
	"github.com/spigell/rfp-advisor/internal/decision"
	"github.com/spigell/rfp-advisor/internal/logger"
	"github.com/spigell/rfp-advisor/internal/secrets"
)

const geminiAPIKeyEnv = "GEMINI_API_KEY"

func newPipeline(ctx context.Context, config *Config, log *zap.Logger) (*decision.Pipeline, error) {
	engagements, err := loadCatalog(config.CatalogFile)
	if err != nil {
		return nil, err
	}

	log.Info("comparable engagements loaded",
		zap.Int("count", engagements.Len()),
		zap.String("catalog_file", config.CatalogFile),
	)

	deps := &decision.Deps{
		Catalog: engagements,
		Logger:  log,
	}

	backend, err := newBackend(ctx, config.AI, log)
	if err != nil {
		return nil, err
	}
	deps.Backend = backend

	return decision.NewPipeline(&decision.Config{TopK: config.TopK}, deps), nil
}

// newBackend returns nil without error when the reasoning service is disabled
// or has no credentials: decisions then take the mock path.
func newBackend(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Backend, error) {
	if cfg == nil || !cfg.Enabled {
		log.Info("reasoning backend disabled in configuration")
		return nil, nil
	}

	geminiCfg := cfg.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  geminiCfg.APIKeyFile,
		Env:   geminiAPIKeyEnv,
		Value: geminiCfg.APIKey,
	})
	if errors.Is(err, secrets.ErrNotConfigured) {
		log.Warn("reasoning backend is not configured, decisions will be mocked",
			zap.String("hint", "set GEMINI_API_KEY, GEMINI_API_KEY_FILE or ai.gemini.api-key-file"),
		)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	backendLogger := logger.WithBackend(log, "gemini", geminiCfg.Model).With(
		zap.Int("ai_max_retries", geminiCfg.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, geminiCfg.Model, geminiCfg.MaxRetries, backendLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewBackend(generator, geminiCfg.MaxLogLength, backendLogger), nil
}
