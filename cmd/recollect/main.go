// Recollect server — conversational spaced-repetition: HTTP API, WebSocket
// streaming, and the live session engine.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/recollect-ai/recollect/pkg/api"
	"github.com/recollect-ai/recollect/pkg/cleanup"
	"github.com/recollect-ai/recollect/pkg/config"
	"github.com/recollect-ai/recollect/pkg/database"
	"github.com/recollect-ai/recollect/pkg/engine"
	"github.com/recollect-ai/recollect/pkg/events"
	"github.com/recollect-ai/recollect/pkg/fsrs"
	"github.com/recollect-ai/recollect/pkg/llm"
	"github.com/recollect-ai/recollect/pkg/services"
	"github.com/recollect-ai/recollect/pkg/version"
)

// Generation parameters per binding. The tutor converses; the utility binding
// answers structured side calls and stays deterministic.
const (
	tutorMaxTokens   = 1024
	tutorTemperature = 0.7

	utilityMaxTokens   = 768
	utilityTemperature = 0.0
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("RECOLLECT_CONFIG", "./config.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting recollect", "version", version.Full())

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	scheduler := fsrs.NewScheduler(fsrs.Params{DesiredRetention: cfg.FSRS.DesiredRetention})
	clock := services.SystemClock()

	setService := services.NewRecallSetService(dbClient.Client, clock)
	pointService := services.NewRecallPointService(dbClient.Client, scheduler, clock)
	sessionService := services.NewSessionService(dbClient.Client, pointService, cfg.Session.MaxTargetPointsPerSession, clock)
	messageService := services.NewMessageService(dbClient.Client, clock)
	outcomeService := services.NewOutcomeService(dbClient.Client, clock)
	rabbitholeService := services.NewRabbitholeService(dbClient.Client, clock)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. LLM client and bindings
	// Note: grpc.NewClient dials lazily; the connection opens on first RPC.
	llmClient, err := llm.NewGRPCClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr,
		"tutor_model", cfg.LLM.TutorModel, "utility_model", cfg.LLM.UtilityModel)

	tutorBinding := llm.NewBinding(llmClient, llm.GenerationConfig{
		Model:       cfg.LLM.TutorModel,
		MaxTokens:   tutorMaxTokens,
		Temperature: tutorTemperature,
	}, cfg.LLM.Timeout())
	utilityBinding := llm.NewBinding(llmClient, llm.GenerationConfig{
		Model:       cfg.LLM.UtilityModel,
		MaxTokens:   utilityMaxTokens,
		Temperature: utilityTemperature,
	}, cfg.LLM.Timeout())

	// 5. Engine
	publisher := events.NewPublisher(dbClient.DB())
	eng := engine.New(
		engine.Config{
			EvaluatorWindow:         cfg.Session.EvaluatorRecentMessageWindow,
			EvaluatorThreshold:      cfg.Session.EvaluatorConfidenceThreshold,
			RabbitholeEnter:         cfg.Session.RabbitholeEnterThreshold,
			RabbitholeReturn:        cfg.Session.RabbitholeReturnThreshold,
			StallThreshold:          cfg.Session.StallThreshold,
			EnableNotationDetection: cfg.Session.EnableNotationDetection,
			InputPricePerMTok:       cfg.LLM.InputPricePerMTok,
			OutputPricePerMTok:      cfg.LLM.OutputPricePerMTok,
		},
		scheduler,
		engine.Stores{
			Sets:        setService,
			Points:      pointService,
			Sessions:    sessionService,
			Messages:    messageService,
			Outcomes:    outcomeService,
			Rabbitholes: rabbitholeService,
		},
		publisher,
		tutorBinding,
		utilityBinding,
		clock,
	)

	// 6. Streaming infrastructure
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	replayer := events.NewMessageServiceAdapter(messageService)
	connManager := events.NewConnectionManager(eng, replayer, catchupQuerier, cfg.Server.WSWriteTimeout)

	// NotifyListener holds a dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 7. Retention sweep
	cleanupService := cleanup.NewService(&cfg.Retention, sessionService, eventService, eng, publisher)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	apiServer := api.NewServer(
		setService, pointService, sessionService, eng,
		messageService, outcomeService, rabbitholeService,
		connManager, dbClient, cfg.Server.AllowedWSOrigins,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	apiServer.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Recollect started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting requests, then pause live
	// sessions so they resume on the next attach.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	engineCtx, engineCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer engineCancel()
	if err := eng.Stop(engineCtx); err != nil {
		slog.Warn("Engine shutdown timeout exceeded; sessions remain resumable", "error", err)
	}

	slog.Info("Shutdown complete")
}
