// Package runpath defines core types and configuration options for the
// run-constrained shortest-path search.
//
// A search travels a gridgraph.CostGrid from a start cell to a goal cell.
// Each move enters one orthogonal neighbor and pays its cost. A path must
// keep its heading for at least MinRun cells before turning 90°, may not
// keep it for more than MaxRun cells, and never reverses.
//
// Options:
//
//	– ReturnPath:    reconstruct the optimal sequence of states.
//	– Frontier:      FrontierHeap (default) or FrontierBucket.
//	– MaxExpansions: budget of settled states (0 = unlimited).
//	– Ctx:           cancellation, polled every 1024 expansions.
//	– Seeds:         headings of the run-0 pseudo-states at the start.
//
// Errors (sentinel):
//
//	– ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrBadMinRun,
//	  ErrBadRunRange, ErrNoSeeds, ErrBadHeading, ErrStateSpaceTooLarge:
//	  caller contract violations, always wrapped in *ConfigError.
//	– ErrBudgetExceeded: MaxExpansions settled states without reaching the goal.
package runpath

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrStartOutOfBounds indicates that the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("runpath: start is outside the grid")

	// ErrGoalOutOfBounds indicates that the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("runpath: goal is outside the grid")

	// ErrBadMinRun indicates minRun < 1.
	ErrBadMinRun = errors.New("runpath: minRun must be at least 1")

	// ErrBadRunRange indicates maxRun < minRun.
	ErrBadRunRange = errors.New("runpath: maxRun must not be less than minRun")

	// ErrNoSeeds indicates an empty seed heading set.
	ErrNoSeeds = errors.New("runpath: at least one seed heading is required")

	// ErrBadHeading indicates a seed heading outside East..North.
	ErrBadHeading = errors.New("runpath: invalid heading")

	// ErrStateSpaceTooLarge indicates the dense cost table cannot be addressed.
	ErrStateSpaceTooLarge = errors.New("runpath: state space too large")

	// ErrBudgetExceeded indicates the search settled MaxExpansions states
	// without proving the goal reachable or unreachable.
	ErrBudgetExceeded = errors.New("runpath: expansion budget exceeded")
)

// ConfigError reports a caller contract violation detected before the
// search starts. It is never returned for an unreachable goal.
type ConfigError struct {
	Field string // grid, start, goal, minRun, maxRun or seeds
	Err   error  // wraps one of the sentinel errors above or a gridgraph error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying sentinel.
func (e *ConfigError) Unwrap() error { return e.Err }

func configErrorf(field string, sentinel error, format string, args ...any) error {
	return &ConfigError{Field: field, Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}

// FrontierKind selects the priority structure ordering unexpanded states.
type FrontierKind int

const (
	// FrontierHeap is a binary min-heap with lazy decrease-key.
	FrontierHeap FrontierKind = iota

	// FrontierBucket is Dial's bucket queue: one bucket per cost modulo
	// MaxCost()+1. Falls back to FrontierHeap when that span exceeds MaxBucketSpan.
	FrontierBucket
)

// MaxBucketSpan caps the number of buckets FrontierBucket may allocate.
const MaxBucketSpan = 1 << 16

func (k FrontierKind) String() string {
	switch k {
	case FrontierHeap:
		return "heap"
	case FrontierBucket:
		return "bucket"
	default:
		return fmt.Sprintf("FrontierKind(%d)", int(k))
	}
}

// ParseFrontierKind maps "heap" or "bucket" to a FrontierKind.
func ParseFrontierKind(s string) (FrontierKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "heap":
		return FrontierHeap, nil
	case "bucket", "dial":
		return FrontierBucket, nil
	default:
		return FrontierHeap, fmt.Errorf("runpath: unknown frontier %q", s)
	}
}

// Options configures the behavior of the search.
type Options struct {
	ReturnPath    bool            // Whether to reconstruct Result.Path
	Frontier      FrontierKind    // Heap or bucket ordering
	MaxExpansions int             // Settled-state budget; 0 means unlimited
	Ctx           context.Context // Optional cancellation
	Seeds         []Heading       // Headings of the run-0 start states
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithReturnPath enables reconstruction of the optimal path in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithFrontier selects the frontier implementation.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithMaxExpansions bounds the number of settled states.
// Exceeding it makes the search fail with ErrBudgetExceeded.
// Must pass a non-negative value; zero disables the budget.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("runpath: MaxExpansions must be non-negative")
		}
		o.MaxExpansions = n
	}
}

// WithContext makes the search observe ctx cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithSeedHeadings replaces the headings of the run-0 pseudo-states placed
// at the start. A run-0 state can only continue straight, so the seeds are
// exactly the headings the first move may take.
func WithSeedHeadings(hs ...Heading) Option {
	return func(o *Options) {
		o.Seeds = append([]Heading(nil), hs...)
	}
}

// DefaultSeeds are East and South: the two perpendicular headings pointing
// into the grid from its top-left corner.
var DefaultSeeds = []Heading{East, South}

// AllSeeds lets the first move take any heading; useful for interior starts.
var AllSeeds = []Heading{East, South, West, North}

// DefaultOptions returns an Options struct initialized with defaults:
//   - ReturnPath:    false
//   - Frontier:      FrontierHeap
//   - MaxExpansions: 0 (unlimited)
//   - Ctx:           nil (no cancellation)
//   - Seeds:         DefaultSeeds
func DefaultOptions() Options {
	return Options{
		Frontier: FrontierHeap,
		Seeds:    DefaultSeeds,
	}
}

// State is one node of the augmented search graph: a cell, the heading of
// the move that entered it, and how many consecutive cells were entered on
// that heading. Run is 0 only for the pseudo-states seeded at the start.
type State struct {
	X, Y    int
	Heading Heading
	Run     int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d %s×%d)", s.X, s.Y, s.Heading, s.Run)
}

// Result is the outcome of one search.
type Result struct {
	Found    bool    // false means the goal is unreachable under the run bounds
	Cost     int64   // sum of entered-cell costs; meaningful only when Found
	Goal     State   // the settled goal state; zero unless Found
	Path     []State // states after the start, ending at Goal; nil unless ReturnPath
	Expanded int     // states settled, the goal included
	Pushed   int     // frontier insertions, seeds included
	States   int     // size of the dense cost table
}

// Moves renders Path as compass letters, one per move (e.g. "EESS").
func (r *Result) Moves() string {
	b := make([]byte, len(r.Path))
	for i, s := range r.Path {
		b[i] = s.Heading.Letter()
	}

	return string(b)
}
