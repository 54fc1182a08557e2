// Package server provides the HTTP API and views for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
)

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	handler       http.Handler
	store         *session.Store
	renderer      *rendering.Renderer
	rateLimiter   *ratelimit.Limiter
	tokens        *Tokens
	sessionIdle   time.Duration
	exportTimeout time.Duration
}

// Config holds server configuration
type Config struct {
	Port          int
	Store         *session.Store
	Renderer      *rendering.Renderer // defaults to rendering.Default()
	Tokens        *config.SessionConfig
	RateLimit     *ratelimit.Config // defaults to ratelimit.LoadConfig()
	SessionIdle   time.Duration     // zero keeps sessions until their token expires
	ExportTimeout time.Duration     // zero means no extra bound
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("session token config is required")
	}

	renderer := cfg.Renderer
	if renderer == nil {
		var err error
		if renderer, err = rendering.Default(); err != nil {
			return nil, fmt.Errorf("failed to load templates: %w", err)
		}
	}

	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		store:         cfg.Store,
		renderer:      renderer,
		rateLimiter:   ratelimit.NewLimiter(rlConfig),
		tokens:        NewTokens(cfg.Tokens),
		sessionIdle:   cfg.SessionIdle,
		exportTimeout: cfg.ExportTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleLanding)
	mux.HandleFunc("GET /editor", s.handleEditor)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /sessions", s.handleCreateSession)

	auth := middleware.AuthMiddleware(s.tokens)
	protected := func(pattern string, h sessionHandler) {
		mux.Handle(pattern, auth(s.withSession(h)))
	}

	// Document
	protected("GET /resume", s.handleGetResume)
	protected("DELETE /resume", s.handleDeleteSession)
	protected("PUT /resume/personal-info/{field}", s.handleSetPersonalInfo)
	protected("PUT /resume/summary", s.handleSetSummary)
	protected("POST /resume/{collection}", s.handleAddEntity)
	protected("PATCH /resume/{collection}/{id}", s.handleUpdateEntity)
	protected("DELETE /resume/{collection}/{id}", s.handleRemoveEntity)

	// Derived views
	protected("GET /resume/validation", s.handleValidation)
	protected("GET /resume/preview", s.handlePreview)
	protected("GET /resume/status", s.handleStatus)

	// Collaborators
	protected("POST /resume/suggestions/summary", s.handleSuggestSummary)
	protected("POST /resume/suggestions/skills", s.handleSuggestSkills)
	protected("POST /resume/suggestions/improve", s.handleImproveText)
	protected("POST /resume/experience/{id}/suggestions/description", s.handleSuggestJobDescription)
	protected("POST /resume/education/{id}/suggestions/description", s.handleSuggestEducationDescription)
	protected("POST /resume/export", s.handleExport)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for suggestions and export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	sweepDone := make(chan struct{})
	if s.sessionIdle > 0 {
		go s.sweepSessions(sweepDone)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		close(sweepDone)
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	close(sweepDone)
	s.rateLimiter.Stop()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

func (s *Server) sweepSessions(done <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.store.Sweep(s.sessionIdle)
		case <-done:
			return
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.store.Len()})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// htmlResponse writes a rendered page
func (s *Server) htmlResponse(w http.ResponseWriter, status int, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(page)); err != nil {
		log.Printf("Error writing HTML response: %v", err)
	}
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; forwarded headers are not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		secs := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = secs
		w.Header().Set("Retry-After", fmt.Sprintf("%d", secs))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d RetryAfter=%s",
		info.Limit, info.Remaining, info.RetryAfter)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
