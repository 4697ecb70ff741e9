package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"nameplate-relay/internal/annotate/vision"
	"nameplate-relay/internal/config"
	"nameplate-relay/internal/format/gemini"
	"nameplate-relay/internal/format/openai"
	"nameplate-relay/internal/monitoring"
	"nameplate-relay/internal/pipeline"
	"nameplate-relay/internal/relay"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	// Vision credentials: a service account key file wins over an API key.
	var visionOpt option.ClientOption
	if cfg.VisionCredentialsFile != "" {
		visionOpt = option.WithCredentialsFile(cfg.VisionCredentialsFile)
	} else {
		visionOpt = option.WithAPIKey(cfg.VisionAPIKey)
	}
	annotator, err := vision.New(context.Background(), visionOpt)
	if err != nil {
		logger.Fatal("could not build vision client", zap.Error(err))
	}

	var formatter pipeline.Formatter
	switch cfg.FormatProvider {
	case "gemini":
		formatter = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		formatter = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}

	metrics := monitoring.NewMetrics()
	server := relay.NewServer(cfg, annotator, formatter, metrics, logger)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("relay started",
		zap.String("port", cfg.ServerPort),
		zap.String("format_provider", cfg.FormatProvider))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
