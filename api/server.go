// Package api - Thin, deterministic HTTP layer
// The API is ONLY responsible for: input decoding, engine calls, output serialization.
// The API NEVER performs geometry or pricing logic.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shadowcost/core/catalog"
	"shadowcost/core/diff"
	"shadowcost/core/engine"
	"shadowcost/core/explanation"
	"shadowcost/core/types"
	"shadowcost/internal/errors"
)

type ctxKey struct{}

// Server is the API server
type Server struct {
	engine   *engine.Engine
	router   chi.Router
	logger   *zap.Logger
	version  string
	defaults types.BuildingParameters
}

// NewServer creates a new API server. defaults fill fields a request omits.
func NewServer(eng *engine.Engine, logger *zap.Logger, version string, defaults types.BuildingParameters) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:   eng,
		router:   chi.NewRouter(),
		logger:   logger,
		version:  version,
		defaults: defaults,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.Use(s.requestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)

	s.router.Post("/evaluate", s.handleEvaluate)
	s.router.Post("/compare", s.handleCompare)
	s.router.Get("/materials", s.handleMaterials)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)
}

// handleEvaluate handles POST /evaluate
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeParams(w, r)
	if !ok {
		return
	}

	result, err := s.engine.Evaluate(r.Context(), params)
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}

	resp := toResponse(requestIDFrom(r.Context()), result)
	if r.URL.Query().Get("include") == "geometry" {
		resp.Building = result.Building
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	params, ok := s.decodeParams(w, r)
	if !ok {
		return
	}

	results, err := s.engine.Compare(r.Context(), params)
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}

	id := requestIDFrom(r.Context())
	resp := CompareResponse{RequestID: id, Status: "ok"}
	for _, res := range results {
		resp.Results = append(resp.Results, *toResponse(id, res))
	}
	resp.Deltas = diff.NewDiffer(0).AgainstBaseline(results)
	for _, d := range resp.Deltas {
		resp.Narratives = append(resp.Narratives, explanation.Narrate(d))
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleMaterials handles GET /materials
func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	var out []MaterialInfo
	for _, sys := range catalog.Systems() {
		a, err := catalog.Assign(sys)
		if err != nil {
			s.writeEngineError(w, r, err)
			return
		}
		out = append(out, MaterialInfo{
			Name:       sys.String(),
			Slab:       a.Slab.Name(),
			Column:     a.Column.Name(),
			Core:       a.Core.Name(),
			ColumnSpan: a.ColumnSpan,
		})
	}
	s.writeJSON(w, map[string]interface{}{
		"materials": out,
		"limits":    types.Limits,
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "shadowcost",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) decodeParams(w http.ResponseWriter, r *http.Request) (types.BuildingParameters, bool) {
	params := s.defaults
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, ErrorDetail{Code: "INVALID_JSON", Message: err.Error()}, http.StatusBadRequest)
		return params, false
	}
	return params, true
}

func toResponse(requestID string, res *engine.Result) *EvaluateResponse {
	return &EvaluateResponse{
		RequestID:  requestID,
		Status:     "ok",
		Parameters: res.Parameters,
		InputHash:  res.InputHash.Hex(),
		Prices:     res.Prices.Categories(),
		Units:      res.Prices.Units,
		Summary: Summary{
			Slabs:          len(res.Building.Slabs),
			Columns:        len(res.Building.Columns),
			ColumnsPerAxis: res.Building.Grid,
			Assignment:     res.Building.Assignment,
			SlabAreaM2:     res.Prices.SlabArea.String(),
		},
		Explanations: explanation.Explain(res.Prices),
		DurationMs:   res.Duration.Milliseconds(),
	}
}

// writeEngineError maps domain errors to status codes. Invalid input is
// the user's to fix and its message is passed through unchanged.
func (s *Server) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.IsType(err, errors.TypeInvalidInput):
		detail := ErrorDetail{Code: string(errors.TypeInvalidInput), Message: errors.Message(err)}
		if e, ok := errors.As(err); ok {
			detail.Context = e.Context
		}
		s.writeError(w, r, detail, http.StatusBadRequest)
	case err == context.Canceled || err == context.DeadlineExceeded:
		s.writeError(w, r, ErrorDetail{Code: "CANCELLED", Message: err.Error()}, http.StatusServiceUnavailable)
	default:
		s.logger.Error("evaluation failed", zap.String("request_id", requestIDFrom(r.Context())), zap.Error(err))
		s.writeError(w, r, ErrorDetail{Code: string(errors.TypeInternal), Message: err.Error()}, http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, detail ErrorDetail, status int) {
	s.writeJSON(w, ErrorResponse{
		RequestID: requestIDFrom(r.Context()),
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     detail,
	}, status)
}

// requestID assigns every request an ID, honoring one sent by the client
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}
