// Package web provides the HTTP API of the budget tracker.
package web

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/JonMunkholm/budget/internal/config"
	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/logging"
	appmw "github.com/JonMunkholm/budget/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are JSON numbers, as clients of the API expect.
	decimal.MarshalJSONWithoutQuotes = true
}

// Server is the HTTP server for the budget API.
type Server struct {
	service  *core.Service
	tokens   appmw.TokenVerifier
	cfg      *config.Config
	router   *chi.Mux
	server   *http.Server
	limiters []*rateLimiter
}

// NewServer creates a new Server instance.
func NewServer(service *core.Service, tokens appmw.TokenVerifier, cfg *config.Config) *Server {
	s := &Server{
		service: service,
		tokens:  tokens,
		cfg:     cfg,
		router:  chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(appmw.TrustedRealIP(s.cfg.Security.TrustedProxies))
	s.router.Use(appmw.Logger)
	s.router.Use(middleware.Recoverer)
	if s.cfg.Server.RequestTimeout > 0 {
		s.router.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Security.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "HX-Request", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))

	if s.cfg.Rate.Enabled {
		limiter := s.newLimiter(s.cfg.Rate.RequestsPerMinute)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(appmw.RequireUser(s.tokens))

			r.Get("/auth/me", s.handleMe)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", s.handleListCategories)
				r.Post("/", s.handleCreateCategory)
				r.Put("/{id}", s.handleUpdateCategory)
				r.Delete("/{id}", s.handleDeleteCategory)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", s.handleListTransactions)
				r.Post("/", s.handleCreateTransaction)
				r.Get("/{id}", s.handleGetTransaction)
				r.Put("/{id}", s.handleUpdateTransaction)
				r.Delete("/{id}", s.handleDeleteTransaction)
			})

			r.Route("/budgets", func(r chi.Router) {
				r.Get("/", s.handleListBudgets)
				r.Post("/", s.handleSetBudget)
				r.Get("/status", s.handleBudgetStatus)
				r.Put("/{id}", s.handleUpdateBudget)
				r.Delete("/{id}", s.handleDeleteBudget)
			})

			r.Route("/households", func(r chi.Router) {
				r.Get("/", s.handleListHouseholds)
				r.Post("/", s.handleCreateHousehold)
				r.Post("/join", s.handleJoinHousehold)
				r.Get("/{id}", s.handleGetHousehold)
				r.Get("/{id}/members", s.handleListMembers)
				r.Post("/{id}/regenerate-code", s.handleRegenerateCode)
				r.Delete("/{id}/members/{userID}", s.handleRemoveMember)
				r.Delete("/{id}/leave", s.handleLeaveHousehold)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/monthly", s.handleMonthlySummary)
				r.Get("/categories", s.handleCategoryBreakdown)
				r.Get("/trends", s.handleSpendingTrends)
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/analyze", s.handleAnalyze)
				r.Post("/chat", s.handleChat)
			})

			r.Route("/import", func(r chi.Router) {
				r.Get("/history", s.handleImportHistory)
				r.Get("/status", s.handleImportQueueStatus)

				r.Group(func(r chi.Router) {
					if s.cfg.Rate.Enabled {
						r.Use(s.newLimiter(s.cfg.Rate.ImportLimit).middleware)
					}
					r.Post("/csv/preview", s.handlePreviewCSV)
					r.Post("/csv/confirm", s.handleConfirmCSV)
				})
			})
		})
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	logging.FromContext(context.Background()).Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server and its rate limiters.
func (s *Server) Shutdown(ctx context.Context) error {
	for _, l := range s.limiters {
		l.stop()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if enableCSP {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) newLimiter(perMinute int) *rateLimiter {
	l := newRateLimiter(perMinute, time.Minute)
	s.limiters = append(s.limiters, l)
	return l
}

// rateLimiter is a fixed-window request counter per client IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int
	window   time.Duration
	now      func() time.Time
	done     chan struct{}
	once     sync.Once
}

type visitor struct {
	tokens    int
	lastReset time.Time
}

// newRateLimiter creates a rate limiter allowing rate requests per window.
func newRateLimiter(rate int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// cleanup drops visitors idle for two windows until stop is called.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for ip, v := range rl.visitors {
				if rl.now().Sub(v.lastReset) > rl.window*2 {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.once.Do(func() { close(rl.done) })
}

// allow reports whether ip may make another request, consuming a token.
func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, exists := rl.visitors[ip]
	if !exists || now.Sub(v.lastReset) > rl.window {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return rl.rate > 0
	}
	if v.tokens <= 0 {
		return false
	}
	v.tokens--
	return true
}

// middleware rate limits by r.RemoteAddr, which TrustedRealIP has already
// resolved to the client address.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if addr, ok := clientIP(ip); ok {
			ip = addr
		}
		if !rl.allow(ip) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			writeJSONStatus(w, http.StatusTooManyRequests, ErrorResponse{
				Error:   "Too many requests",
				Detail:  "Too many requests",
				Message: "Too many requests",
				Action:  "Please wait a moment before trying again",
				Code:    "RATE001",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
