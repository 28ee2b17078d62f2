package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/config"
	_ "taskboard/docs" // Swagger docs
	extractionHTTP "taskboard/internal/extraction/delivery/http"
	extractionUC "taskboard/internal/extraction/usecase"
	"taskboard/internal/httpserver"
	"taskboard/internal/mailgw"
	"taskboard/internal/middleware"
	"taskboard/internal/notify"
	"taskboard/internal/roster"
	"taskboard/internal/taskstore"
	"taskboard/pkg/datemath"
	"taskboard/pkg/llmprovider"
	"taskboard/pkg/log"
	"taskboard/pkg/mailer"
)

// @title       TaskBoard Extraction API
// @description Natural-language task extraction and email triage for the TaskBoard.
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

	logger.Info(ctx, "Starting TaskBoard extraction service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	timezone := cfg.Extraction.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. LLM provider chain. No providers is legal: extraction degrades to
	// the deterministic fallback parser and triage reports unavailable.
	var generator extractionUC.Generator
	providers, provErr := llmprovider.InitializeProviders(&cfg.LLM)
	if provErr != nil {
		logger.Warnf(ctx, "LLM provider initialization failed: %v", provErr)
	}
	if len(providers) > 0 {
		generator = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
			MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, time.Minute),
		}, logger)
		logger.Infof(ctx, "LLM providers configured: %d", len(providers))
	} else {
		logger.Warn(ctx, "No LLM providers configured, running fallback-only")
	}

	// 5. Extraction use case
	uc := extractionUC.New(logger, generator, dateMathParser, timezone, cfg.Extraction.LLMTimeoutDuration())

	// 6. Roster source with snapshot cache
	rosterSrc := roster.NewCachedSource(
		roster.NewHTTPSource(cfg.Roster.BaseURL, cfg.Roster.AccessToken),
		cfg.Roster.CacheTTLDuration(),
		logger,
	)

	// 7. Task store client (optional, extraction is dry-run-only without it)
	var store taskstore.Repository
	if cfg.TaskStore.BaseURL != "" {
		store = taskstore.NewClient(cfg.TaskStore.BaseURL, cfg.TaskStore.AccessToken, logger)
	} else {
		logger.Warn(ctx, "Task store not configured, extraction runs dry-run only")
	}

	// 8. Notification dispatcher
	var notifier notify.Dispatcher
	if cfg.Notify.BaseURL != "" {
		notifier = notify.NewHTTPDispatcher(cfg.Notify.BaseURL, cfg.Notify.AccessToken, logger)
	}

	// 9. Outbound mail (optional)
	var mailSender mailgw.Sender
	if cfg.Mail.Enabled && cfg.Mail.CredentialsPath != "" {
		mailClient, mailErr := mailer.NewClientFromCredentialsFile(ctx, cfg.Mail.CredentialsPath, cfg.Mail.FromAddress)
		if mailErr != nil {
			logger.Warnf(ctx, "Outbound mail not available (optional): %v", mailErr)
		} else {
			mailSender = mailClient
			logger.Info(ctx, "Outbound mail initialized")
		}
	}

	// 10. HTTP delivery
	extractionHandler := extractionHTTP.New(logger, uc, rosterSrc, store, notifier, cfg.Extraction)

	var mailHandler httpserver.InboundMailHandler
	if cfg.InboundMail.Enabled && store != nil {
		mailHandler = mailgw.NewHandler(uc, rosterSrc, store, mailSender, notifier, mailgw.SecurityConfig{
			Secret:          cfg.InboundMail.Secret,
			AllowedIPs:      cfg.InboundMail.AllowedIPs,
			RateLimitPerMin: cfg.InboundMail.RateLimitPerMin,
		}, logger)
	} else if cfg.InboundMail.Enabled {
		logger.Warn(ctx, "Inbound mail disabled: task store is not configured")
	}

	mw := middleware.New(logger, cfg.HTTPServer.APIKey)

	// 11. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		ExtractionHandler: extractionHandler,
		MailHandler:       mailHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 12. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
