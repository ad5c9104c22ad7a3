package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/copyleftdev/benchfn/benchmark"
	"github.com/copyleftdev/benchfn/internal/config"
	errs "github.com/copyleftdev/benchfn/internal/errors"
	"github.com/copyleftdev/benchfn/internal/logging"
)

const maxBodyBytes = 1 << 20

// errBadRequest marks request bodies or parameters that could not be decoded.
var errBadRequest = errors.New("malformed request")

// Logger defines the logging interface used by the server
// This allows us to be flexible with our logging implementation
type Logger interface {
	Debug(msg string, fields ...map[string]interface{})
	Info(msg string, fields ...map[string]interface{})
	Warn(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	WithFields(fields map[string]interface{}) *logging.Logger
}

// cacheKey identifies a constructed function. dimSet distinguishes an
// explicit dimensionality from the function's default.
type cacheKey struct {
	key    string
	dim    int
	dimSet bool
}

// Server exposes the benchmark registry over HTTP and JSON-RPC 2.0.
// Constructed functions are immutable, so they are cached and shared between
// concurrent requests.
type Server struct {
	cfg     *config.Config
	logger  Logger
	metrics *Metrics

	functions   map[cacheKey]benchmark.Function
	functionsMu sync.RWMutex // Protects the functions map
}

// NewServer creates a new server instance with the given config, logger and
// metrics. A nil metrics value creates unregistered collectors.
func NewServer(cfg *config.Config, logger Logger, metrics *Metrics) *Server {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Server{
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics,
		functions: make(map[cacheKey]benchmark.Function),
	}
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/functions", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.handleDescribe)
			r.Get("/minimum", s.handleMinimum)
			r.Post("/evaluate", s.handleEvaluate)
			r.Post("/check", s.handleCheck)
		})
	})

	// JSON-RPC 2.0 endpoint
	r.Post("/rpc", s.handleJSONRPC)
}

// Close drops every cached function.
func (s *Server) Close() error {
	s.functionsMu.Lock()
	defer s.functionsMu.Unlock()

	s.functions = make(map[cacheKey]benchmark.Function)
	s.metrics.CachedFunctions.Set(0)
	return nil
}

type listing struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Dimensionality int    `json:"dimensionality"`
	Fixed          bool   `json:"fixed"`
}

type minimumResult struct {
	Value    float64   `json:"value"`
	Location []float64 `json:"location"`
}

type description struct {
	Key            string         `json:"key"`
	Name           string         `json:"name"`
	Dimensionality int            `json:"dimensionality"`
	Fixed          bool           `json:"fixed"`
	Bounds         [][2]float64   `json:"bounds"`
	Display        string         `json:"display"`
	Detail         string         `json:"detail"`
	Minimum        *minimumResult `json:"minimum,omitempty"`
}

// pointRequest is the body of evaluate and check requests.
type pointRequest struct {
	Dim   *int      `json:"dim,omitempty"`
	Point []float64 `json:"point"`
}

// function returns the function registered under name with the requested
// dimensionality, constructing and caching it on first use.
func (s *Server) function(name string, dim *int) (benchmark.Entry, benchmark.Function, error) {
	entry, err := benchmark.Lookup(name)
	if err != nil {
		return benchmark.Entry{}, nil, err
	}

	key := cacheKey{key: entry.Key}
	var opts []benchmark.Option
	if dim != nil {
		if *dim > s.cfg.Benchmark.MaxDimensionality {
			return entry, nil, errs.Wrapf(benchmark.ErrConfiguration,
				"dimensionality %d exceeds the limit of %d", *dim, s.cfg.Benchmark.MaxDimensionality).
				WithComponent("server").WithOperation("function")
		}
		key.dim, key.dimSet = *dim, true
		opts = append(opts, benchmark.WithDimensionality(*dim))
	}

	s.functionsMu.RLock()
	fn, ok := s.functions[key]
	s.functionsMu.RUnlock()
	if ok {
		return entry, fn, nil
	}

	fn, err = entry.New(opts...)
	if err != nil {
		return entry, nil, err
	}

	s.functionsMu.Lock()
	defer s.functionsMu.Unlock()
	if cached, ok := s.functions[key]; ok {
		return entry, cached, nil
	}
	if len(s.functions) < s.cfg.Benchmark.CacheSize {
		s.functions[key] = fn
		s.metrics.CachedFunctions.Set(float64(len(s.functions)))
	}
	return entry, fn, nil
}

func (s *Server) list() ([]listing, error) {
	entries := benchmark.Entries()
	out := make([]listing, 0, len(entries))
	for _, e := range entries {
		_, fn, err := s.function(e.Key, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, listing{
			Key:            e.Key,
			Name:           fn.Name(),
			Dimensionality: fn.Dimensionality(),
			Fixed:          e.Fixed,
		})
	}
	return out, nil
}

func (s *Server) describe(name string, dim *int) (*description, error) {
	entry, fn, err := s.function(name, dim)
	if err != nil {
		s.countError(entry.Key, err)
		return nil, err
	}

	d := &description{
		Key:            entry.Key,
		Name:           fn.Name(),
		Dimensionality: fn.Dimensionality(),
		Fixed:          entry.Fixed,
		Bounds:         benchmark.BoundsPairs(fn),
		Display:        fn.String(),
		Detail:         fn.GoString(),
	}
	if m, err := fn.GlobalMinimum(); err == nil {
		d.Minimum = &minimumResult{Value: m.Value, Location: m.Location}
	}
	return d, nil
}

func (s *Server) evaluate(name string, dim *int, point []float64) (float64, error) {
	entry, fn, err := s.function(name, dim)
	if err != nil {
		s.countError(entry.Key, err)
		return 0, err
	}

	start := time.Now()
	v, err := fn.Evaluate(point)
	if err != nil {
		s.countError(entry.Key, err)
		return 0, err
	}
	s.metrics.Duration.WithLabelValues(entry.Key).Observe(time.Since(start).Seconds())
	s.metrics.Evaluations.WithLabelValues(entry.Key).Inc()
	return v, nil
}

func (s *Server) checkBounds(name string, dim *int, point []float64) (bool, error) {
	entry, fn, err := s.function(name, dim)
	if err != nil {
		s.countError(entry.Key, err)
		return false, err
	}

	ok, err := fn.CheckBounds(point)
	if err != nil {
		s.countError(entry.Key, err)
		return false, err
	}
	return ok, nil
}

func (s *Server) globalMinimum(name string, dim *int) (*minimumResult, error) {
	entry, fn, err := s.function(name, dim)
	if err != nil {
		s.countError(entry.Key, err)
		return nil, err
	}

	m, err := fn.GlobalMinimum()
	if err != nil {
		s.countError(entry.Key, err)
		return nil, err
	}
	return &minimumResult{Value: m.Value, Location: m.Location}, nil
}

func (s *Server) countError(key string, err error) {
	if key == "" {
		key = "unknown"
	}
	s.metrics.Errors.WithLabelValues(key, errorKind(err)).Inc()
}

// errorKind labels err for responses and metrics.
func errorKind(err error) string {
	if errs.Is(err, errBadRequest) {
		return "bad_request"
	}
	return benchmark.Kind(err)
}

// httpStatus maps an error kind to a response status.
func httpStatus(err error) int {
	switch {
	case errs.Is(err, errBadRequest),
		errs.Is(err, benchmark.ErrConfiguration),
		errs.Is(err, benchmark.ErrShape):
		return http.StatusBadRequest
	case errs.Is(err, benchmark.ErrDomain):
		return http.StatusUnprocessableEntity
	case errs.Is(err, benchmark.ErrUnknownFunction):
		return http.StatusNotFound
	case errs.Is(err, benchmark.ErrNotSupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// queryDim reads the optional dim query parameter.
func queryDim(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("dim")
	if raw == "" {
		return nil, nil
	}
	dim, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errs.Wrapf(errBadRequest, "dim must be an integer, got %q", raw)
	}
	return &dim, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.Wrapf(errBadRequest, "invalid request body: %v", err)
	}
	return nil
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		l := logging.FromContext(r.Context()).WithError(err).WithField("kind", errorKind(err))
		l.Error("Request failed")

		var e *errs.Error
		if l.Enabled(logging.DebugLevel) && errs.As(err, &e) {
			l.Debug("Error stack", map[string]interface{}{"stack": e.StackTrace()})
		}
	}
	s.respondJSON(w, status, map[string]interface{}{
		"error": err.Error(),
		"kind":  errorKind(err),
	})
}

// handleList handles GET /api/v1/functions
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	out, err := s.list()
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, out)
}

// handleDescribe handles GET /api/v1/functions/{name}
func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	dim, err := queryDim(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	d, err := s.describe(chi.URLParam(r, "name"), dim)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, d)
}

// handleMinimum handles GET /api/v1/functions/{name}/minimum
func (s *Server) handleMinimum(w http.ResponseWriter, r *http.Request) {
	dim, err := queryDim(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	m, err := s.globalMinimum(chi.URLParam(r, "name"), dim)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, m)
}

// handleEvaluate handles POST /api/v1/functions/{name}/evaluate
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req pointRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	v, err := s.evaluate(chi.URLParam(r, "name"), req.Dim, req.Point)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"value": v})
}

// handleCheck handles POST /api/v1/functions/{name}/check
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req pointRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	ok, err := s.checkBounds(chi.URLParam(r, "name"), req.Dim, req.Point)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"within": ok})
}
