package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conversational-task-management/config"
	_ "conversational-task-management/docs" // Swagger docs
	chatHTTP "conversational-task-management/internal/chat/delivery/http"
	"conversational-task-management/internal/chat/slots"
	chatUC "conversational-task-management/internal/chat/usecase"
	convMemory "conversational-task-management/internal/conversation/repository/memory"
	convUC "conversational-task-management/internal/conversation/usecase"
	"conversational-task-management/internal/httpserver"
	taskMemory "conversational-task-management/internal/task/repository/memory"
	taskUC "conversational-task-management/internal/task/usecase"
	"conversational-task-management/pkg/datemath"
	"conversational-task-management/pkg/gcalendar"
	"conversational-task-management/pkg/llmprovider"
	"conversational-task-management/pkg/log"
)

// @title       Conversational Task Management API
// @description Bilingual (English/Urdu) conversational task management: chat-driven task CRUD with OpenRouter/DeepSeek LLM replies and optional Google Calendar mirroring.
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

	logger.Info(ctx, "Starting Conversational Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser anchored to the configured timezone
	dateMathParser, dtErr := datemath.NewParser(cfg.Chat.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Google Calendar client (optional)
	var calendarClient taskUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 5. Task domain
	taskRepo := taskMemory.New()
	tasks := taskUC.New(logger, taskRepo, calendarClient, cfg.Chat.Timezone)

	// 6. Conversation domain
	convRepo := convMemory.New()
	conversations := convUC.New(logger, convRepo)

	// 7. LLM providers + fallback manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 8. Chat domain
	extractor := slots.NewExtractor(dateMathParser)
	chat := chatUC.New(logger, tasks, conversations, extractor, manager)
	chatHandler := chatHTTP.New(logger, chat)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatHandler:     chatHandler,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
