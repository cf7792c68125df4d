package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-task-parser/config"
	_ "smart-task-parser/docs" // Swagger docs
	"smart-task-parser/internal/httpserver"
	parserHTTP "smart-task-parser/internal/parser/delivery/http"
	"smart-task-parser/internal/parser/usecase"
	"smart-task-parser/pkg/datemath"
	"smart-task-parser/pkg/log"
	"smart-task-parser/pkg/nlpextract"
)

// @title       Smart Task Parser API
// @description Chinese natural-language task intent parser: turns free text into create-task drafts or edits against existing tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Parser.Timezone)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid parser.timezone %q: %v", cfg.Parser.Timezone, err)
		return
	}

	// 4. Remote extraction client (optional)
	var extractor nlpextract.IExtractor
	if cfg.Extractor.Enabled && cfg.Extractor.AppKey != "" && cfg.Extractor.AppSecret != "" {
		extractor, err = nlpextract.New(nlpextract.Config{
			BaseURL:   cfg.Extractor.BaseURL,
			AppKey:    cfg.Extractor.AppKey,
			AppSecret: cfg.Extractor.AppSecret,
		})
		if err != nil {
			logger.Warnf(ctx, "Extraction service not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Extraction service client initialized")
		}
	} else {
		logger.Info(ctx, "Extraction service disabled, using rule-based pipeline only")
	}

	// 5. Parser UseCase + delivery
	parserUC := usecase.New(logger, dateMathParser, extractor,
		cfg.Parser.OwnerNames, cfg.Extractor.Timeout, cfg.Extractor.MinConfidence)
	parserHandler := parserHTTP.New(logger, parserUC)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ParserHandler:   parserHandler,
		RateLimitPerMin: cfg.Parser.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
