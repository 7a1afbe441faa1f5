// SleepAid API
//
// REST API for nightly sleep logging, scoring, and AI coaching.
//
//	@title			SleepAid API
//	@version		1.0
//	@description	Sleep scoring, streaks, insights, and AI coaching over nightly sleep logs.
//
//	@BasePath	/v1
//
//	@tag.name			auth
//	@tag.description	Account creation and login
//
//	@tag.name			profile
//	@tag.description	Onboarding and profile management
//
//	@tag.name			sleep-logs
//	@tag.description	Nightly sleep logging and export
//
//	@tag.name			insights
//	@tag.description	Dashboard, weekly insights, and coaching
//
//	@tag.name			avatar
//	@tag.description	Profile picture storage
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rsweeney/sleepaid/internal/api"
	"github.com/rsweeney/sleepaid/internal/api/handler"
	"github.com/rsweeney/sleepaid/internal/avatar"
	"github.com/rsweeney/sleepaid/internal/config"
	"github.com/rsweeney/sleepaid/internal/domain"
	"github.com/rsweeney/sleepaid/internal/langfuse"
	"github.com/rsweeney/sleepaid/internal/llm"
	"github.com/rsweeney/sleepaid/internal/repository"
	"github.com/rsweeney/sleepaid/internal/seed"
	"github.com/rsweeney/sleepaid/internal/service"
	"github.com/rsweeney/sleepaid/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleepaid-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown error: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.ProfileRecord{}, &domain.SleepLog{}, &repository.UsageRecord{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	sleepLogRepo := repository.NewSleepLogRepository(db)
	usageRepo := repository.NewUsageRepository(db)

	// Initialize Langfuse client (disabled when not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Fetch the coaching prompt from Langfuse, falling back to the built-in one
	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.CoachPromptName,
		PromptLabel: cfg.CoachPromptLabel,
		SavePath:    cfg.CoachPromptPath,
	})
	if err != nil {
		log.Printf("Coach prompt not loaded from Langfuse, using the built-in prompt: %v", err)
		systemPrompt = service.DefaultCoachPrompt
	}

	// Initialize OpenAI client (may be nil if not configured)
	var suggestionLLM llm.SuggestionLLM
	if openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel); openaiClient != nil {
		suggestionLLM = openaiClient
	} else {
		log.Println("Warning: OpenAI API key not configured, coaching falls back to built-in advice")
	}

	// Avatar storage on local disk
	avatarStore, err := avatar.NewStore(cfg.AvatarDir)
	if err != nil {
		log.Fatalf("Failed to initialize avatar storage: %v", err)
	}

	// Initialize services
	userService := service.NewUserService(userRepo, profileRepo)
	profileService := service.NewProfileService(profileRepo, userRepo, sleepLogRepo)
	sleepLogService := service.NewSleepLogService(sleepLogRepo, userRepo, profileRepo)
	exportService := service.NewExportService(sleepLogRepo, profileRepo, userRepo)
	insightsService := service.NewInsightsService(sleepLogRepo, profileRepo, userRepo)
	coachService := service.NewCoachService(suggestionLLM, langfuseClient, systemPrompt, sleepLogRepo, profileRepo, userRepo, usageRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	profileHandler := handler.NewProfileHandler(profileService)
	sleepLogHandler := handler.NewSleepLogHandler(sleepLogService, exportService)
	insightsHandler := handler.NewInsightsHandler(insightsService, coachService, langfuseClient)
	avatarHandler := handler.NewAvatarHandler(avatarStore)

	// Setup router
	router := api.NewRouter(authHandler, profileHandler, sleepLogHandler, insightsHandler, avatarHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
