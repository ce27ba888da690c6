package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-negotiator/config"
	_ "ai-negotiator/docs" // Swagger docs
	chatHTTP "ai-negotiator/internal/chat/delivery/http"
	"ai-negotiator/internal/chat/repository/memory"
	chatUC "ai-negotiator/internal/chat/usecase"
	"ai-negotiator/internal/httpserver"
	"ai-negotiator/internal/middleware"
	"ai-negotiator/internal/prompt"
	"ai-negotiator/pkg/llmprovider"
	"ai-negotiator/pkg/log"
)

// @title       AI Negotiation Trainer API
// @description B2B negotiation training chatbot. A seller persona negotiates price, delivery, and volume against the user, driven by hidden deterministic deal parameters.
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

	logger.Info(ctx, "Starting AI Negotiation Trainer...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxRetries:      cfg.LLM.MaxRetries,
		RetryBaseDelay:  cfg.LLM.RetryBaseDelay,
		CallTimeout:     cfg.LLM.CallTimeout,
	}, logger)

	// 4. Prompt builder
	counter, err := buildCounter(cfg.Prompt)
	if err != nil {
		logger.Error(ctx, "Failed to build prompt counter: ", err)
		return
	}
	logger.Infof(ctx, "Prompt budget: %d %s", cfg.Prompt.MaxHistoryUnits, counter.Name())
	builder := prompt.NewBuilder(prompt.NegotiationSystemTemplate, counter, cfg.Prompt.MaxHistoryUnits)

	// 5. Session store
	store, err := memory.New(cfg.Session.StoreCapacity)
	if err != nil {
		logger.Error(ctx, "Failed to create session store: ", err)
		return
	}

	// 6. Chat domain
	uc := chatUC.New(logger, manager, store, builder, chatUC.Config{
		ConflictRetries:             cfg.Orchestrator.ConflictRetries,
		CreateSessionOnStoreFailure: cfg.Orchestrator.CreateSessionOnStoreFailure,
	})
	chatHandler := chatHTTP.New(logger, uc)

	// 7. Middleware
	mw, err := middleware.New(logger, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	if err != nil {
		logger.Error(ctx, "Failed to create middleware: ", err)
		return
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func buildCounter(cfg config.PromptConfig) (prompt.Counter, error) {
	if cfg.Counter == "tokens" {
		return prompt.NewTokenCounter(cfg.TokenizerModel)
	}
	return prompt.RuneCounter{}, nil
}
