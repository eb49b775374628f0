package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"visionassist/internal/adapter/repo"
	"visionassist/internal/auth"
	"visionassist/internal/http/handlers"
	"visionassist/internal/http/httpapi"
	"visionassist/internal/infra"
	"visionassist/internal/pipeline"
	"visionassist/internal/prompts"
	"visionassist/internal/providers/language"
	"visionassist/internal/providers/vision"
	"visionassist/internal/storage"
)

func main() {
	_ = godotenv.Load()

	// The logger only needs APP_ENV, so it comes up before config validation
	// and every startup failure goes through it.
	logger := infra.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := infra.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	store, err := newStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize blob storage")
	}

	visionKey, visionBase := providerCredentials(cfg, cfg.VisionProvider)
	visionCaller, err := vision.NewCaller(vision.Options{
		Provider: cfg.VisionProvider,
		Model:    cfg.VisionModel,
		APIKey:   visionKey,
		BaseURL:  visionBase,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure vision provider")
	}
	languageKey, languageBase := providerCredentials(cfg, cfg.LanguageProvider)
	languageCaller, err := language.NewCaller(language.Options{
		Provider:    cfg.LanguageProvider,
		Model:       cfg.LanguageModel,
		APIKey:      languageKey,
		BaseURL:     languageBase,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure language provider")
	}

	attempts := repo.NewAttemptRepository(dbpool)
	orchestrator := pipeline.New(pipeline.Options{
		Registry:        prompts.NewRegistry(),
		Vision:          visionCaller,
		Language:        languageCaller,
		Store:           store,
		Attempts:        attempts,
		Logger:          logger,
		VisionTimeout:   cfg.VisionTimeout,
		LanguageTimeout: cfg.LanguageTimeout,
	})

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	app := &handlers.App{
		Users:          repo.NewUserRepository(dbpool),
		Images:         repo.NewImageRepository(dbpool),
		Attempts:       attempts,
		Store:          store,
		Pipeline:       orchestrator,
		Tokens:         tokens,
		Logger:         logger,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	router := httpapi.NewRouter(httpapi.Options{
		App:            app,
		Tokens:         tokens,
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RatePerMinute:  cfg.RateLimitPerMin,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("vision_provider", cfg.VisionProvider).
			Str("language_provider", cfg.LanguageProvider).
			Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// newStore picks the blob storage backend from configuration.
func newStore(ctx context.Context, cfg *infra.Config) (storage.Store, error) {
	switch cfg.StorageProvider {
	case "s3":
		return storage.NewMinioStore(ctx, storage.MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
	default:
		return storage.NewFileStore(cfg.StoragePath)
	}
}

// providerCredentials returns the API key and base URL for a provider name.
func providerCredentials(cfg *infra.Config, provider string) (string, string) {
	switch provider {
	case "google":
		return cfg.GoogleAPIKey, cfg.GoogleBaseURL
	case "huggingface":
		return cfg.HuggingFaceAPIKey, cfg.HuggingFaceBaseURL
	default:
		return cfg.OpenAIAPIKey, cfg.OpenAIBaseURL
	}
}
