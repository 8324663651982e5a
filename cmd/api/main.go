package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multi-agent-code-assistant/config"
	_ "multi-agent-code-assistant/docs" // Swagger docs
	"multi-agent-code-assistant/internal/agent"
	agentDelivery "multi-agent-code-assistant/internal/agent/delivery/http"
	"multi-agent-code-assistant/internal/agent/orchestrator"
	"multi-agent-code-assistant/internal/agent/tools"
	chatDelivery "multi-agent-code-assistant/internal/chat/delivery/http"
	"multi-agent-code-assistant/internal/httpserver"
	"multi-agent-code-assistant/internal/middleware"
	"multi-agent-code-assistant/internal/rag"
	"multi-agent-code-assistant/internal/sandbox"
	"multi-agent-code-assistant/internal/session"
	toolDelivery "multi-agent-code-assistant/internal/tool/delivery/http"
	"multi-agent-code-assistant/internal/vectorstore"
	"multi-agent-code-assistant/pkg/llmprovider"
	"multi-agent-code-assistant/pkg/log"
	"multi-agent-code-assistant/pkg/qdrant"
	"multi-agent-code-assistant/pkg/voyage"
)

// @title       Multi-Agent Code Assistant API
// @description Multi-agent coding assistant with RAG retrieval, LLM provider fallback, and sandboxed code execution.
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

	logger.Info(ctx, "Starting Multi-Agent Code Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Retrieval stack: Qdrant + Voyage embeddings (optional)
	var (
		store      vectorstore.Store
		ragBuilder *rag.Builder
		qdrantOK   func(ctx context.Context) error
	)
	if cfg.Voyage.APIKey != "" && cfg.Qdrant.URL != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Errorf(ctx, "Failed to initialize Voyage client: %v", vErr)
			return
		}
		qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)

		vs := vectorstore.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
		if err := vs.EnsureCollection(ctx); err != nil {
			logger.Errorf(ctx, "Failed to initialize vector store: %v", err)
			return
		}
		store = vs
		ragBuilder = rag.New(vs, logger)
		qdrantOK = func(ctx context.Context) error {
			_, sErr := qdrantClient.CollectionExists(ctx, cfg.Qdrant.CollectionName)
			return sErr
		}
		logger.Info(ctx, "Vector store initialized")
	} else {
		logger.Warn(ctx, "Retrieval stack skipped: VOYAGE_API_KEY or Qdrant URL is missing")
	}

	// 4. LLM providers with fallback
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d providers", len(providers))

	// 5. Sandbox executor and tool registry
	sandboxTimeout, _ := time.ParseDuration(cfg.Sandbox.Timeout)
	executor := sandbox.New(logger, sandboxTimeout)

	registry := agent.NewToolRegistry()
	registry.Register(tools.NewExecuteCodeTool(executor))
	if store != nil {
		registry.Register(tools.NewSearchDocsTool(store))
	}
	workDir, _ := os.Getwd()
	registry.Register(tools.NewReadFileTool(workDir))

	// 6. Conversation sessions
	sessions, err := session.New(cfg.Sessions.Capacity, func(conversationID string) *orchestrator.Orchestrator {
		return orchestrator.New(manager, ragBuilder, logger)
	}, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to create session store: %v", err)
		return
	}

	// 7. Delivery handlers
	mw := middleware.New(logger, cfg)
	chatHandler := chatDelivery.New(logger, sessions)
	agentHandler := agentDelivery.New(logger)
	toolHandler := toolDelivery.New(logger, registry, executor)

	readiness := map[string]func(ctx context.Context) error{}
	if qdrantOK != nil {
		readiness["qdrant"] = qdrantOK
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		ChatHandler:  chatHandler,
		AgentHandler: agentHandler,
		ToolHandler:  toolHandler,
		Readiness:    readiness,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
