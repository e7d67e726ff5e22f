// internal/debugsrv/server.go
package debugsrv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"time"

	"go-beastfight/internal/app"
	"go-beastfight/internal/config"

	"github.com/gorilla/mux"
)

// SnapshotSource отдаёт последний опубликованный снимок матча.
// Вызывается из горутин сервера, поэтому должен быть потокобезопасным.
type SnapshotSource interface {
	Snapshot() *app.Snapshot
}

// Server — отладочный HTTP-сервер: снимок матча, статистика, живая лента и pprof.
// Только чтение, на ход боя не влияет.
type Server struct {
	source SnapshotSource
	logger *log.Logger
	router *mux.Router
	hub    *Hub
}

func New(source SnapshotSource, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		source: source,
		logger: logger,
		router: mux.NewRouter(),
		hub:    NewHub(source, config.SnapshotPublishInterval, logger),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.HandleFunc("/debug/match", s.handleMatch).Methods(http.MethodGet)
	r.HandleFunc("/debug/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/debug/units/{id}", s.handleUnit).Methods(http.MethodGet)
	r.HandleFunc("/debug/ws", s.hub.HandleWS)

	r.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	r.HandleFunc("/debug/pprof/profile", pprof.Profile)
	r.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	r.HandleFunc("/debug/pprof/trace", pprof.Trace)
	r.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)
}

// Handler возвращает роутер, удобно для httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Hub — лента снимков для websocket-клиентов.
func (s *Server) Hub() *Hub { return s.hub }

// ListenAndServe запускает сервер и ленту до отмены ctx.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go s.hub.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Printf("WARNING: debug server shutdown: %v", err)
		}
	}()

	s.logger.Printf("Debug server listening on http://%s/debug/match", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve debug endpoints: %w", err)
	}
	return nil
}

func (s *Server) snapshot(w http.ResponseWriter) *app.Snapshot {
	snap := s.source.Snapshot()
	if snap == nil {
		http.Error(w, "match is not running", http.StatusServiceUnavailable)
	}
	return snap
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if snap := s.snapshot(w); snap != nil {
		s.writeJSON(w, snap)
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if snap := s.snapshot(w); snap != nil {
		s.writeJSON(w, snap.Stats)
	}
}

func (s *Server) handleUnit(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	id := mux.Vars(r)["id"]
	for _, u := range snap.Units {
		if u.ID == id {
			s.writeJSON(w, u)
			return
		}
	}
	http.Error(w, fmt.Sprintf("unit %s not found", id), http.StatusNotFound)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Printf("WARNING: failed to encode debug response: %v", err)
	}
}
