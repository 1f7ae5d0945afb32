package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/macproducts/routergen/internal/common"
	"github.com/macproducts/routergen/internal/export"
	"github.com/macproducts/routergen/internal/llm"
	"github.com/macproducts/routergen/internal/render"
	"github.com/macproducts/routergen/internal/repair"
	"github.com/macproducts/routergen/internal/session"
)

const sessionCookie = "rg_session"

// Service wires the web surface to the generator, the repair pipeline, and
// the per-session history.
type Service struct {
	cfg      *common.Config
	gen      llm.RouterGenerator
	pipeline *repair.Pipeline
	exports  *export.Service
	sessions *session.Store
	logger   *zap.Logger
}

func NewService(cfg *common.Config, gen llm.RouterGenerator, pipeline *repair.Pipeline, exports *export.Service, sessions *session.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		gen:      gen,
		pipeline: pipeline,
		exports:  exports,
		sessions: sessions,
		logger:   logger,
	}
}

// Routes builds the HTTP handler for the single-page surface.
func (s *Service) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /export/csv", s.handleExportCSV)
	mux.HandleFunc("GET /export/xlsx", s.handleExportXLSX)
	mux.HandleFunc("GET /raw", s.handleRaw)
	mux.HandleFunc("POST /clear", s.handleClear)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.withRequestLog(mux)
}

func (s *Service) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rid := uuid.New().String()
		r = r.WithContext(common.WithRequestID(r.Context(), rid))
		next.ServeHTTP(w, r)
		s.logger.Info("http.request",
			zap.String("req_id", rid),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

// currentSession resolves the session from the request cookie, creating one
// (and setting the cookie) when absent.
func (s *Service) currentSession(w http.ResponseWriter, r *http.Request) (string, *session.History) {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	newID, hist := s.sessions.Get(id)
	if newID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    newID,
			Path:     "/",
			HttpOnly: true,
		})
	}
	return newID, hist
}

func (s *Service) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, hist := s.currentSession(w, r)
	s.renderPage(w, hist, "", http.StatusOK)
}

func (s *Service) handleClear(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Clear(c.Value)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) renderPage(w http.ResponseWriter, hist *session.History, errMsg string, status int) {
	items := make([]render.HistoryItem, 0, hist.Len())
	for _, e := range hist.Entries() {
		items = append(items, render.HistoryItem{
			Role:    e.Role,
			Message: e.Message,
			Router:  e.Router,
		})
	}
	_, hasResult := hist.LastResult()
	data := render.PageData{
		Title:      "MAC Router Generator",
		DefaultQty: s.cfg.LLM.DefaultQty,
		History:    items,
		HasResult:  hasResult,
		Error:      errMsg,
		Generated:  hist.Generated(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := render.WritePage(w, data); err != nil {
		s.logger.Error("render page failed", zap.Error(err))
	}
}
