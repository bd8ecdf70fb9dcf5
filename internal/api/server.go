package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/casemark/strategist/internal/auth"
	"github.com/casemark/strategist/internal/cache"
	"github.com/casemark/strategist/internal/engine"
	"github.com/casemark/strategist/internal/storage"
)

// ServerConfig holds server dependencies
type ServerConfig struct {
	DB        *sql.DB
	JWTSecret string
	CacheTTL  time.Duration
	CacheSize int
}

type Server struct {
	router       *chi.Mux
	caseRepo     storage.CaseRepository
	documentRepo storage.DocumentRepository
	authService  auth.Service
	authHandlers *auth.Handlers
	engine       *engine.Engine
	reports      *cache.ReportCache
}

func NewServer(config ServerConfig) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authConfig := auth.DefaultConfig()
	if config.JWTSecret != "" {
		authConfig.SecretKey = config.JWTSecret
	}
	authService := auth.NewJWTService(authConfig, auth.NewPostgresRepository(config.DB))

	s := &Server{
		router:       r,
		caseRepo:     storage.NewPostgresCaseRepository(config.DB),
		documentRepo: storage.NewPostgresDocumentRepository(config.DB),
		authService:  authService,
		authHandlers: auth.NewHandlers(authService),
		engine:       engine.New(),
		reports:      cache.New(config.CacheSize, config.CacheTTL),
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API v1
	s.router.Route("/api/v1", func(r chi.Router) {
		// Auth routes (public)
		r.Post("/auth/register", s.authHandlers.Register)
		r.Post("/auth/login", s.authHandlers.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.authService))

			r.Get("/auth/me", s.authHandlers.Me)

			r.Route("/cases", func(r chi.Router) {
				r.Get("/", s.handleListCases)
				r.Post("/", s.handleCreateCase)
				r.Get("/{caseID}", s.handleGetCase)
				r.Put("/{caseID}", s.handleUpdateCase)
				r.Delete("/{caseID}", s.handleDeleteCase)

				r.Get("/{caseID}/documents", s.handleListDocuments)
				r.Post("/{caseID}/documents", s.handleAddDocument)

				// Strategy work-up
				r.Post("/{caseID}/strategy", s.handleStrategy)
				r.Get("/{caseID}/strategy/routes", s.handleStrategyRoutes)
				r.Get("/{caseID}/strategy/moves", s.handleStrategyMoves)
				r.Get("/{caseID}/strategy/observations", s.handleStrategyObservations)
				r.Get("/{caseID}/strategy/impacts", s.handleStrategyImpacts)
				r.Get("/{caseID}/strategy/triggers", s.handleStrategyTriggers)
			})
		})
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helper to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
