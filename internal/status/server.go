// Status HTTP server exposing the live frame and telemetry as JSON
package status

import (
	"context"
	"encoding/json"
	"net/http"

	"rocketviz/internal/viz"
)

// FrameProvider is what the server needs from the visualizer.
type FrameProvider interface {
	LatestFrame() (viz.Frame, bool)
	SessionID() string
}

// Server serves read-only visualizer state over HTTP.
type Server struct {
	Viz FrameProvider
}

// NewServer creates a status server for the given visualizer.
func NewServer(v FrameProvider) *Server {
	return &Server{Viz: v}
}

// Handler returns the route mux, exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/frame", s.handleFrame)
	mux.HandleFunc("/telemetry", s.handleTelemetry)
	return mux
}

// Start serves until the context is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"session": s.Viz.SessionID(),
	})
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	frame, ok := s.Viz.LatestFrame()
	if !ok {
		http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame)
}

func (s *Server) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	frame, ok := s.Viz.LatestFrame()
	if !ok {
		http.Error(w, "no telemetry observed yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame.Sample)
}
