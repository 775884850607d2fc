package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/MonoCollector_Go/internal/category"
	"github.com/osse101/MonoCollector_Go/internal/collection"
	"github.com/osse101/MonoCollector_Go/internal/config"
	"github.com/osse101/MonoCollector_Go/internal/database"
	"github.com/osse101/MonoCollector_Go/internal/handler"
	"github.com/osse101/MonoCollector_Go/internal/item"
	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/metrics"
	"github.com/osse101/MonoCollector_Go/internal/middleware"
	"github.com/osse101/MonoCollector_Go/internal/review"
	"github.com/osse101/MonoCollector_Go/internal/stats"
	"github.com/osse101/MonoCollector_Go/internal/user"
)

// Services bundles the application services the HTTP layer calls into
type Services struct {
	Item       item.Service
	Category   category.Service
	User       user.Service
	Collection collection.Service
	Review     review.Service
	Stats      stats.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(cfg *config.Config, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

// NewRouter builds the chi router with the full middleware stack and every route
func NewRouter(cfg *config.Config, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", HeaderAPIKey, middleware.HeaderUserID},
			ExposedHeaders:   []string{handler.HeaderImageBlurHash, handler.HeaderImageWidth, handler.HeaderImageHeight},
			AllowCredentials: false,
			MaxAge:           CORSMaxAgeSeconds,
		}))
	}
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(int64(cfg.MaxImageBytes) + MultipartOverheadBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.UserIdentity)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, cfg.ReadinessTimeout))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(cfg.Version, cfg.Environment))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	userHandler := handler.NewUserHandler(svc.User)
	categoryHandler := handler.NewCategoryHandler(svc.Category)
	itemHandler := handler.NewItemHandler(svc.Item, int64(cfg.MaxImageBytes))
	collectionHandler := handler.NewCollectionHandler(svc.Collection)
	reviewHandler := handler.NewReviewHandler(svc.Review)
	adminHandler := handler.NewAdminHandler(svc.Stats, svc.User)
	leaderboardHandler := handler.NewLeaderboardHandler(svc.Stats)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users/guest", userHandler.HandleCreateGuest)
		r.Get("/collection/rarity", collectionHandler.HandleGetRarity)
		r.Get("/collection/tables", collectionHandler.HandleGetTables)
		r.Get("/reviews", reviewHandler.HandleListReviews)
		r.Get("/reviews/summary", reviewHandler.HandleGetSummary)
		r.Get("/stats/leaderboard", leaderboardHandler.HandleGetLeaderboard)

		// Routes acting on the caller's own data
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Get("/users/me", userHandler.HandleGetMe)
			r.Get("/users/me/links", userHandler.HandleListLinks)
			r.Post("/users/me/links", userHandler.HandleLinkAccount)
			r.Delete("/users/me/links/{provider}", userHandler.HandleUnlink)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.HandleListCategories)
				r.Post("/", categoryHandler.HandleCreateCategory)
				r.Put("/{id}", categoryHandler.HandleUpdateCategory)
				r.Delete("/{id}", categoryHandler.HandleDeleteCategory)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", itemHandler.HandleListItems)
				r.Post("/", itemHandler.HandleCreateItem)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", itemHandler.HandleGetItem)
					r.Patch("/", itemHandler.HandleUpdateItem)
					r.Delete("/", itemHandler.HandleDeleteItem)
					r.Post("/collected", itemHandler.HandleSetCollected)
					r.Put("/image", itemHandler.HandleUploadImage)
					r.Get("/image", itemHandler.HandleGetImage)
					r.Delete("/image", itemHandler.HandleDeleteImage)
					r.Post("/icon", itemHandler.HandleGenerateIcon)
				})
			})

			r.Get("/collection/stats", collectionHandler.HandleGetStats)
			r.Post("/collection/unlocks", collectionHandler.HandleCheckUnlocks)
			r.Post("/reviews", reviewHandler.HandleSubmitReview)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(cfg.AdminUserIDs))

			r.Get("/analytics", adminHandler.HandleGetAnalytics)
			r.Get("/cache/stats", adminHandler.HandleGetCacheStats)
			r.Post("/cache/purge", adminHandler.HandlePurgeAnalyticsCache)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// loggingMiddleware tags the request with an id and logs its start and end.
// Health check and scrape paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if quietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		began := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(began)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", elapsed.Milliseconds())
	})
}

func quietPath(path string) bool {
	for _, prefix := range quietPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for k := range out {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully and closes the database pool
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	return err
}
