// Wellness API
//
// REST API for couple wellness tracking.
//
//	@title			Wellness API
//	@version		1.0
//	@description	Track moods and daily relationship assessments, and generate heuristic or LLM-backed relationship analyses.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management and partner linking endpoints
//
//	@tag.name			moods
//	@tag.description	Mood tracking and mood pattern analysis endpoints
//
//	@tag.name			assessments
//	@tag.description	Daily assessment and couple aggregation endpoints
//
//	@tag.name			relationship
//	@tag.description	Emotional sync and relationship analysis endpoints
//
//	@tag.name			gamification
//	@tag.description	Stats, achievements and notification endpoints
//
//	@tag.name			llm
//	@tag.description	Raw LLM completion proxy
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/savantarmorer/wellness-sub001/internal/api"
	"github.com/savantarmorer/wellness-sub001/internal/api/handler"
	"github.com/savantarmorer/wellness-sub001/internal/config"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/langfuse"
	"github.com/savantarmorer/wellness-sub001/internal/llm"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
	"github.com/savantarmorer/wellness-sub001/internal/seed"
	"github.com/savantarmorer/wellness-sub001/internal/service"
	"github.com/savantarmorer/wellness-sub001/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.MoodEntry{},
		&domain.DailyAssessment{},
		&domain.AnalysisRecord{},
		&domain.Notification{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Optional Redis cache for analyses
	cache := config.NewRedis(cfg)

	// OpenTelemetry traces go to Langfuse when configured
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "wellness-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	moodEntryRepo := repository.NewMoodEntryRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAnalysisModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, LLM endpoints will be unavailable")
	} else if cfg.LangfusePromptName != "" || cfg.LangfusePromptPath != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
			SavePath:    cfg.LangfusePromptPath,
		})
		if err != nil {
			log.Printf("Managed analysis prompt unavailable, using built-in: %v", err)
		} else {
			openaiClient = openaiClient.WithSystemPrompt(prompt)
		}
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	moodService := service.NewMoodService(moodEntryRepo, userRepo)
	assessmentService := service.NewAssessmentService(assessmentRepo, userRepo)
	moodAnalysisService := service.NewMoodAnalysisService(moodEntryRepo, userRepo)
	syncService := service.NewSyncService(moodEntryRepo, userRepo)
	trendsService := service.NewTrendsService(assessmentRepo, userRepo)
	gamificationService := service.NewGamificationService(
		assessmentRepo,
		userRepo,
		notificationRepo,
		service.NewMemoryUnlockStore(),
		service.NewStoredNotifier(notificationRepo),
	)
	analysisService := service.NewAnalysisService(
		syncService,
		moodAnalysisService,
		trendsService,
		openaiClient,
		analysisRepo,
		userRepo,
		cache,
	)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	moodHandler := handler.NewMoodHandler(moodService, moodAnalysisService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, trendsService)
	analysisHandler := handler.NewAnalysisHandler(syncService, analysisService, langfuseClient)
	gamificationHandler := handler.NewGamificationHandler(gamificationService)
	llmHandler := handler.NewLLMHandler(openaiClient)

	// Setup router
	router := api.NewRouter(userHandler, moodHandler, assessmentHandler, analysisHandler, gamificationHandler, llmHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
