package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/savantarmorer/wellness-sub001/docs"
	"github.com/savantarmorer/wellness-sub001/internal/api/handler"
	"github.com/savantarmorer/wellness-sub001/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler         *handler.UserHandler
	moodHandler         *handler.MoodHandler
	assessmentHandler   *handler.AssessmentHandler
	analysisHandler     *handler.AnalysisHandler
	gamificationHandler *handler.GamificationHandler
	llmHandler          *handler.LLMHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	moodHandler *handler.MoodHandler,
	assessmentHandler *handler.AssessmentHandler,
	analysisHandler *handler.AnalysisHandler,
	gamificationHandler *handler.GamificationHandler,
	llmHandler *handler.LLMHandler,
) *Router {
	return &Router{
		userHandler:         userHandler,
		moodHandler:         moodHandler,
		assessmentHandler:   assessmentHandler,
		analysisHandler:     analysisHandler,
		gamificationHandler: gamificationHandler,
		llmHandler:          llmHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Raw completion proxy
		r.Post("/llm/analyze", rt.llmHandler.Analyze)

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Put("/{userId}/partner", rt.userHandler.LinkPartner)

			// Mood entries (nested under users)
			r.Route("/{userId}/mood-entries", func(r chi.Router) {
				r.Post("/", rt.moodHandler.Create)
				r.Get("/", rt.moodHandler.List)
			})
			r.Get("/{userId}/mood-analysis", rt.moodHandler.GetAnalysis)

			// Daily assessments and couple aggregations
			r.Route("/{userId}/assessments", func(r chi.Router) {
				r.Post("/", rt.assessmentHandler.Create)
				r.Get("/", rt.assessmentHandler.List)
				r.Get("/time-series", rt.assessmentHandler.GetTimeSeries)
				r.Get("/radar", rt.assessmentHandler.GetRadar)
			})

			// Relationship sync and analysis
			r.Route("/{userId}/relationship", func(r chi.Router) {
				r.Get("/sync", rt.analysisHandler.GetSync)
				r.Post("/analysis", rt.analysisHandler.Generate)
				r.Get("/analysis", rt.analysisHandler.GetLatest)
				r.Get("/analysis/history", rt.analysisHandler.History)
				r.Post("/analysis/feedback", rt.analysisHandler.PostFeedback)
			})

			// Gamification
			r.Get("/{userId}/stats", rt.gamificationHandler.GetStats)
			r.Route("/{userId}/achievements", func(r chi.Router) {
				r.Get("/", rt.gamificationHandler.ListAchievements)
				r.Post("/check", rt.gamificationHandler.CheckAchievements)
			})
			r.Get("/{userId}/notifications", rt.gamificationHandler.ListNotifications)
		})
	})

	return r
}
