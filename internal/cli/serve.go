package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/runpath"
)

// maxRequestBytes bounds POST /v1/cost bodies.
const maxRequestBytes = 1 << 20

// ServerConfig bounds the work one request may cause.
type ServerConfig struct {
	MaxExpansions  int           // per-search settled-state budget; 0 = unlimited
	RequestTimeout time.Duration // per-request deadline; 0 = none
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		cfg  ServerConfig
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search over HTTP (POST /v1/cost)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.MaxExpansions < 0 {
				return fmt.Errorf("--max-expansions must be non-negative")
			}
			return listenAndServe(cmd.Context(), addr, NewRouter(loggerFromContext(cmd.Context()), cfg))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&cfg.MaxExpansions, "max-expansions", 5_000_000, "per-request settled-state budget (0 = unlimited)")
	cmd.Flags().DurationVar(&cfg.RequestTimeout, "timeout", 30*time.Second, "per-request deadline")

	return cmd
}

// listenAndServe runs srv until ctx is canceled, then shuts down gracefully.
func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// NewRouter builds the HTTP API.
//
//	GET  /healthz  → 200 "ok"
//	POST /v1/cost  → costResponse
func NewRouter(logger *log.Logger, cfg ServerConfig) http.Handler {
	s := &server{logger: logger, cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/v1/cost", s.handleCost)

	return r
}

type server struct {
	logger *log.Logger
	cfg    ServerConfig
}

type requestIDKey struct{}

// requestID tags every request with a UUID, echoed in X-Request-Id.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type pointJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// costRequest carries the grid either as digit lines or as integer rows.
type costRequest struct {
	Grid     []string   `json:"grid,omitempty"`
	Rows     [][]int    `json:"rows,omitempty"`
	Start    *pointJSON `json:"start,omitempty"`
	Goal     *pointJSON `json:"goal,omitempty"`
	MinRun   int        `json:"min_run"`
	MaxRun   int        `json:"max_run"`
	Path     bool       `json:"path,omitempty"`
	Frontier string     `json:"frontier,omitempty"`
	AllSeeds bool       `json:"all_seeds,omitempty"`
}

type costResponse struct {
	ID       string `json:"id"`
	Found    bool   `json:"found"`
	Cost     int64  `json:"cost"`
	Moves    string `json:"moves,omitempty"`
	Expanded int    `json:"expanded"`
	Micros   int64  `json:"elapsed_us"`
}

type errorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *server) handleCost(w http.ResponseWriter, r *http.Request) {
	id := requestIDFrom(r.Context())
	logger := s.logger.With("id", id)

	var req costRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: "bad request body: " + err.Error()})
		return
	}

	g, err := req.grid()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: err.Error(), Field: "grid"})
		return
	}
	kind, err := runpath.ParseFrontierKind(req.Frontier)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: err.Error(), Field: "frontier"})
		return
	}

	start := gridgraph.Point{}
	goal := gridgraph.Point{X: g.Width() - 1, Y: g.Height() - 1}
	if req.Start != nil {
		start = gridgraph.Point{X: req.Start.X, Y: req.Start.Y}
	}
	if req.Goal != nil {
		goal = gridgraph.Point{X: req.Goal.X, Y: req.Goal.Y}
	}

	opts := []runpath.Option{runpath.WithContext(r.Context()), runpath.WithFrontier(kind)}
	if s.cfg.MaxExpansions > 0 {
		opts = append(opts, runpath.WithMaxExpansions(s.cfg.MaxExpansions))
	}
	if req.Path {
		opts = append(opts, runpath.WithReturnPath())
	}
	if req.AllSeeds {
		opts = append(opts, runpath.WithSeedHeadings(runpath.AllSeeds...))
	}

	began := time.Now()
	res, err := runpath.Search(g, start, goal, req.MinRun, req.MaxRun, opts...)
	elapsed := time.Since(began)

	var cfgErr *runpath.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{ID: id, Error: cfgErr.Error(), Field: cfgErr.Field})
		return
	case errors.Is(err, runpath.ErrBudgetExceeded):
		logger.Warn("budget exceeded", "width", g.Width(), "height", g.Height())
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{ID: id, Error: err.Error()})
		return
	case err != nil:
		logger.Warn("search aborted", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{ID: id, Error: err.Error()})
		return
	}

	logger.Info("cost", "found", res.Found, "cost", res.Cost, "expanded", res.Expanded, "elapsed", elapsed)
	writeJSON(w, http.StatusOK, costResponse{
		ID:       id,
		Found:    res.Found,
		Cost:     res.Cost,
		Moves:    res.Moves(),
		Expanded: res.Expanded,
		Micros:   elapsed.Microseconds(),
	})
}

// grid builds the request grid from whichever form was supplied.
func (req *costRequest) grid() (*gridgraph.CostGrid, error) {
	switch {
	case len(req.Grid) > 0 && len(req.Rows) > 0:
		return nil, errors.New("send either grid or rows, not both")
	case len(req.Grid) > 0:
		return gridgraph.ParseDigitLines(req.Grid)
	default:
		return gridgraph.NewCostGrid(req.Rows)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
