package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/voie/internal/logging"
	"github.com/aretw0/voie/pkg/domain"
	"github.com/aretw0/voie/pkg/pathmatch"
)

// Engine defines the subset of the voie engine exposed over HTTP.
type Engine interface {
	Go(ctx context.Context, target domain.Target) error
	Current() *domain.Context
	States() []*domain.State
	Match(loc domain.Location) (*domain.State, domain.Params, bool)
	Href(name string, params domain.Params) (string, error)
	Subscribe(fn func(*domain.Context)) (unsubscribe func())
}

// Option configures a Server.
type Option func(*Server)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Server exposes navigation and introspection endpoints and streams context
// diffs to SSE clients.
type Server struct {
	engine  Engine
	streams *StreamManager
	logger  *slog.Logger

	mu          sync.Mutex
	last        *domain.Context
	unsubscribe func()
}

// StateView is the JSON representation of a registered state.
type StateView struct {
	Name      string        `json:"name"`
	Parent    string        `json:"parent,omitempty"`
	Path      string        `json:"path"`
	FullPath  string        `json:"full_path"`
	Params    domain.Params `json:"params,omitempty"`
	Redirect  string        `json:"redirect,omitempty"`
	Component any           `json:"component,omitempty"`
}

// NavigateResponse is returned by POST /navigate.
type NavigateResponse struct {
	Context domain.Snapshot `json:"context"`
	Diff    *domain.Diff    `json:"diff,omitempty"`
}

// MatchResponse is returned by GET /match.
type MatchResponse struct {
	State  string        `json:"state"`
	Params domain.Params `json:"params"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a server bound to engine. Call Close to stop broadcasting.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:  engine,
		streams: NewStreamManager(),
		logger:  logging.NewNop(),
		last:    engine.Current(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.streams.logger = s.logger
	s.unsubscribe = engine.Subscribe(s.broadcast)
	return s
}

// Handler returns the chi router serving all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/states", s.GetStates)
	r.Get("/context", s.GetContext)
	r.Post("/navigate", s.Navigate)
	r.Get("/match", s.GetMatch)
	r.Get("/href/{name}", s.GetHref)
	r.Get("/events", s.SubscribeEvents)
	return enableCORS(r)
}

// Close detaches the server from the engine.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetStates handles the GET /states request.
func (s *Server) GetStates(w http.ResponseWriter, r *http.Request) {
	states := s.engine.States()
	views := make([]StateView, len(states))
	for i, st := range states {
		views[i] = NewStateView(st)
	}
	s.writeJSON(w, http.StatusOK, views)
}

// NewStateView converts a state for transport.
func NewStateView(st *domain.State) StateView {
	v := StateView{
		Name:      st.Name(),
		Path:      st.Path(),
		FullPath:  st.FullPath(),
		Params:    st.ParamsSpec(),
		Redirect:  st.Redirect().String(),
		Component: st.Component(),
	}
	if p := st.Parent(); p != nil {
		v.Parent = p.Name()
	}
	return v
}

// GetContext handles the GET /context request.
func (s *Server) GetContext(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Current().Snapshot())
}

// Navigate handles the POST /navigate request.
func (s *Server) Navigate(w http.ResponseWriter, r *http.Request) {
	var target domain.Target
	if err := json.NewDecoder(r.Body).Decode(&target); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if target.Name == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("target name is required"))
		return
	}

	before := s.engine.Current()
	if err := s.engine.Go(r.Context(), target); err != nil {
		s.logger.Warn("Navigate failed", "target", target.Name, "error", err)
		s.writeError(w, statusFor(err), err)
		return
	}

	after := s.engine.Current()
	s.writeJSON(w, http.StatusOK, NavigateResponse{
		Context: after.Snapshot(),
		Diff:    domain.DiffContexts(before, after),
	})
}

// GetMatch handles the GET /match?url=... request.
func (s *Server) GetMatch(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("url query parameter is required"))
		return
	}

	state, params, ok := s.engine.Match(domain.ParseLocation(raw))
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Errorf("no state matches %q", raw))
		return
	}
	s.writeJSON(w, http.StatusOK, MatchResponse{State: state.Name(), Params: params})
}

// GetHref handles the GET /href/{name} request; the query holds the params.
func (s *Server) GetHref(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	params, err := pathmatch.ParseQuery(r.URL.RawQuery)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	href, err := s.engine.Href(name, params)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"href": href})
}

// SubscribeEvents handles the GET /events request (SSE of context diffs).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// broadcast publishes the diff between the last seen context and c.
func (s *Server) broadcast(c *domain.Context) {
	s.mu.Lock()
	diff := domain.DiffContexts(s.last, c)
	s.last = c
	s.mu.Unlock()

	if diff == nil || diff.IsEmpty() {
		return
	}
	bytes, err := json.Marshal(diff)
	if err != nil {
		s.logger.Error("Diff encode failed", "error", err)
		return
	}
	s.streams.Broadcast(string(bytes))
}

func statusFor(err error) int {
	var notFound *domain.StateNotFoundError
	var missing *pathmatch.MissingParamError
	var loop *domain.RedirectLoopError
	switch {
	case errors.Is(err, domain.ErrTransitionInProgress):
		return http.StatusConflict
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &missing):
		return http.StatusBadRequest
	case errors.As(err, &loop):
		return http.StatusLoopDetected
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
