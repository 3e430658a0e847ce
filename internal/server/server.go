package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/rpgo/buyout-calculator/internal/calculation"
	"github.com/rpgo/buyout-calculator/internal/domain"
)

const (
	// DefaultMaxIterations caps the trial count of a single request.
	DefaultMaxIterations = 200000
	// DefaultTimeout bounds the simulation time of a single request.
	DefaultTimeout = 30 * time.Second
)

// Runner executes a Monte Carlo run. *calculation.MonteCarloEngine satisfies it.
type Runner interface {
	Run(ctx context.Context, params domain.ParameterSet) (*domain.SimulationResult, error)
}

// EngineFactory builds a Runner for the requested trial count and seed.
type EngineFactory func(iterations int, seed int64) Runner

// NewEngineFactory returns a factory producing engines with a fixed worker count.
func NewEngineFactory(workers int, logger calculation.Logger) EngineFactory {
	return func(iterations int, seed int64) Runner {
		return calculation.NewMonteCarloEngine(calculation.MonteCarloConfig{
			NumSimulations: iterations,
			Seed:           seed,
			Workers:        workers,
			Logger:         logger,
		})
	}
}

// SimulateRequest is the body of POST /api/simulate. Parameters wins over Inputs.
type SimulateRequest struct {
	Parameters *domain.ParameterSet `json:"parameters,omitempty"`
	Inputs     *domain.Inputs       `json:"inputs,omitempty"`
	Iterations int                  `json:"iterations"`
	Seed       int64                `json:"seed"`
	Bins       int                  `json:"bins"`
}

// ErrorResponse is written for every non-2xx status.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server exposes the simulation engine over HTTP for an external display layer.
type Server struct {
	newEngine     EngineFactory
	logger        calculation.Logger
	baseCtx       context.Context
	MaxIterations int
	Timeout       time.Duration
}

// New creates a Server. A nil logger disables logging.
func New(newEngine EngineFactory, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		newEngine:     newEngine,
		logger:        logger,
		baseCtx:       context.Background(),
		MaxIterations: DefaultMaxIterations,
		Timeout:       DefaultTimeout,
	}
}

// Handler routes requests. It is a fasthttp.RequestHandler.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/simulate":
		if !ctx.IsPost() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		s.handleSimulate(ctx)
	case "/healthz":
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx) {
	var req SimulateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var params domain.ParameterSet
	switch {
	case req.Parameters != nil:
		params = *req.Parameters
	case req.Inputs != nil:
		params = req.Inputs.ParameterSet()
	default:
		writeError(ctx, fasthttp.StatusBadRequest, "Either parameters or inputs is required")
		return
	}
	if req.Iterations < 0 || req.Iterations > s.MaxIterations {
		writeError(ctx, fasthttp.StatusBadRequest, fmt.Sprintf("iterations must be between 0 and %d", s.MaxIterations))
		return
	}
	if req.Bins < 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "bins cannot be negative")
		return
	}
	if req.Bins == 0 {
		req.Bins = calculation.DefaultHistogramBins
	}

	runCtx, cancel := context.WithTimeout(s.baseCtx, s.Timeout)
	defer cancel()

	engine := s.newEngine(req.Iterations, req.Seed)
	result, err := engine.Run(runCtx, params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConfiguration):
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			writeError(ctx, fasthttp.StatusServiceUnavailable, "simulation timed out")
		default:
			s.logger.Errorf("simulation failed: %v", err)
			writeError(ctx, fasthttp.StatusInternalServerError, "simulation failed")
		}
		return
	}

	report := &domain.Report{
		Parameters: params,
		Iterations: result.NumIterations,
		Seed:       result.Seed,
		Summary:    calculation.Analyze(result, req.Bins),
	}
	if ctx.QueryArgs().GetBool("timelines") {
		report.Result = result
	}
	s.logger.Debugf("served %d trials (seed %d)", result.NumIterations, result.Seed)
	writeJSON(ctx, fasthttp.StatusOK, report)
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.baseCtx = ctx
	srv := &fasthttp.Server{
		Handler:      s.Handler,
		Name:         "buyout-calculator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.Timeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe(addr) }()
	s.logger.Infof("listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Infof("shutting down")
		return srv.Shutdown()
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		status = fasthttp.StatusInternalServerError
		body = []byte(`{"status":500,"message":"encoding failed"}`)
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
