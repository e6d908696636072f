// Package runpath implements a run-constrained variant of Dijkstra's
// algorithm on cost grids.
//
// The search runs over augmented states (x, y, heading, run) instead of
// plain cells. Every move has a non-negative cost (the entered cell), so
// expanding states in non-decreasing cost order settles each state at its
// optimum, exactly as in plain Dijkstra; the first goal state popped with
// run ≥ minRun is therefore globally optimal.
//
// Complexity:
//
//   - States: S ≤ W×H×4×(maxRun+1); maxRun is clamped to max(W,H)-1,
//     the longest straight run that fits in the grid.
//   - Time:  O(S log S) with FrontierHeap, O(S + C) with FrontierBucket
//     where C is the optimal cost.
//   - Space: O(S) for the dense cost table (plus O(S) predecessors when
//     ReturnPath is set) and O(S) for the frontier under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - All preconditions are checked before any allocation; violations are
//     *ConfigError, never an unreachable result.
//   - The cost table is a flat []int64 arena indexed by
//     ((y*W+x)*4+heading)*(maxRun+1)+run; -1 marks unreached states.
//   - Successors are pushed only on strict improvement; popped entries whose
//     cost exceeds the recorded best are stale and skipped.
package runpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// unreached marks a cost-table slot no path has reached yet.
const unreached = -1

// noPrev marks a predecessor slot of a seed state.
const noPrev = -1

// ctxPollInterval is how many expansions pass between context checks.
const ctxPollInterval = 1024

// MinimalCost returns the minimum total entry cost of a legal path from
// start to goal on g, where every straight run between turns has length in
// [minRun, maxRun] and the final run is at least minRun.
//
// Returns:
//
//   - cost, true, nil:  the optimal cost.
//   - 0, false, nil:    the goal is unreachable under the run bounds.
//   - 0, false, err:    *ConfigError for contract violations, or the
//     ErrBudgetExceeded / context error if the search was cut short.
func MinimalCost(g *gridgraph.CostGrid, start, goal gridgraph.Point, minRun, maxRun int, opts ...Option) (int64, bool, error) {
	res, err := Search(g, start, goal, minRun, maxRun, opts...)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}

// FromRows is MinimalCost over a raw rows[y][x] matrix. Grid construction
// errors (empty, ragged, negative) are reported as *ConfigError.
func FromRows(rows [][]int, start, goal gridgraph.Point, minRun, maxRun int, opts ...Option) (int64, bool, error) {
	g, err := gridgraph.NewCostGrid(rows)
	if err != nil {
		return 0, false, &ConfigError{Field: "grid", Err: err}
	}

	return MinimalCost(g, start, goal, minRun, maxRun, opts...)
}

// Search runs the run-constrained search and returns the full Result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must lie in g (ErrStartOutOfBounds, ErrGoalOutOfBounds).
//  3. minRun ≥ 1 (ErrBadMinRun) and maxRun ≥ minRun (ErrBadRunRange).
//  4. at least one valid seed heading (ErrNoSeeds, ErrBadHeading).
//  5. the dense state table must be addressable by int32 (ErrStateSpaceTooLarge).
//
// start == goal is not special: the seeds have run 0 and never satisfy the
// goal test, so the answer is the cheapest legal loop back to start.
func Search(g *gridgraph.CostGrid, start, goal gridgraph.Point, minRun, maxRun int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if err := validate(g, start, goal, minRun, maxRun, cfg); err != nil {
		return nil, err
	}

	// 3) Clamp maxRun: a straight run can never exceed max(W,H)-1 cells.
	effMax := maxRun
	if limit := max(g.Width(), g.Height()) - 1; effMax > limit {
		effMax = limit
	}
	runs := effMax + 1
	states := int64(g.Len()) * numHeadings * int64(runs)
	if states > math.MaxInt32 {
		return nil, configErrorf("maxRun", ErrStateSpaceTooLarge, "%d states", states)
	}

	if cfg.Ctx != nil {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("runpath: search canceled: %w", err)
		}
	}

	// 4) Allocate the arena and run.
	r := &runner{
		g:       g,
		options: cfg,
		goal:    goal,
		minRun:  minRun,
		maxRun:  effMax,
		runs:    runs,
		best:    make([]int64, states),
		fr:      newFrontier(cfg.Frontier, g.MaxCost(), g.Len()*numHeadings),
	}
	for i := range r.best {
		r.best[i] = unreached
	}
	if cfg.ReturnPath {
		r.prev = make([]int32, states)
	}

	r.init(start)
	goalIdx, err := r.process()
	if err != nil {
		return nil, err
	}

	res := &Result{
		Expanded: r.expanded,
		Pushed:   r.pushed,
		States:   int(states),
	}
	if goalIdx == noPrev {
		return res, nil
	}
	res.Found = true
	res.Cost = r.best[goalIdx]
	res.Goal = r.decode(goalIdx)
	if cfg.ReturnPath {
		res.Path = r.path(goalIdx)
	}

	return res, nil
}

func validate(g *gridgraph.CostGrid, start, goal gridgraph.Point, minRun, maxRun int, cfg Options) error {
	if g == nil {
		return &ConfigError{Field: "grid", Err: ErrNilGrid}
	}
	if !g.Contains(start) {
		return configErrorf("start", ErrStartOutOfBounds, "%v not in %dx%d grid", start, g.Width(), g.Height())
	}
	if !g.Contains(goal) {
		return configErrorf("goal", ErrGoalOutOfBounds, "%v not in %dx%d grid", goal, g.Width(), g.Height())
	}
	if minRun < 1 {
		return configErrorf("minRun", ErrBadMinRun, "got %d", minRun)
	}
	if maxRun < minRun {
		return configErrorf("maxRun", ErrBadRunRange, "maxRun=%d, minRun=%d", maxRun, minRun)
	}
	if len(cfg.Seeds) == 0 {
		return &ConfigError{Field: "seeds", Err: ErrNoSeeds}
	}
	for _, h := range cfg.Seeds {
		if !h.Valid() {
			return configErrorf("seeds", ErrBadHeading, "%d", h)
		}
	}

	return nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *gridgraph.CostGrid // The input grid; read-only.
	options  Options             // Configuration options.
	goal     gridgraph.Point     // Target cell.
	minRun   int                 // Cells required before a turn or at the goal.
	maxRun   int                 // Clamped upper bound on a straight run.
	runs     int                 // maxRun+1: run slots per (cell, heading).
	best     []int64             // State index → best known cost, or unreached.
	prev     []int32             // State index → predecessor state index; nil unless ReturnPath.
	fr       frontier            // Pending (cost, state) pairs.
	expanded int
	pushed   int
}

// index flattens (x, y, heading, run) into the arena.
func (r *runner) index(x, y int, h Heading, run int) int32 {
	return int32((r.g.Index(x, y)*numHeadings+int(h))*r.runs + run)
}

// decode is the inverse of index.
func (r *runner) decode(idx int32) State {
	i := int(idx)
	run := i % r.runs
	i /= r.runs
	h := Heading(i % numHeadings)
	x, y := r.g.Coordinate(i / numHeadings)

	return State{X: x, Y: y, Heading: h, Run: run}
}

// init seeds one run-0 state per seed heading at start with cost 0.
func (r *runner) init(start gridgraph.Point) {
	for _, h := range r.options.Seeds {
		idx := r.index(start.X, start.Y, h, 0)
		if r.best[idx] == 0 {
			continue // duplicate seed heading
		}
		r.best[idx] = 0
		if r.prev != nil {
			r.prev[idx] = noPrev
		}
		r.fr.push(0, idx)
		r.pushed++
	}
}

// process is the core loop. It pops states in non-decreasing cost order and
// relaxes their successors until a goal state with run ≥ minRun is popped
// (returning its index) or the frontier drains (returning noPrev).
func (r *runner) process() (int32, error) {
	budget := r.options.MaxExpansions
	ctx := r.options.Ctx
	for {
		// 1) Pop the least-cost pending state.
		cost, idx, ok := r.fr.pop()
		if !ok {
			return noPrev, nil
		}

		// 2) Skip stale entries: a cheaper route was recorded after this push.
		if cost > r.best[idx] {
			continue
		}

		// 3) Goal test on the settled state, ahead of the budget check.
		r.expanded++
		s := r.decode(idx)
		if s.X == r.goal.X && s.Y == r.goal.Y && s.Run >= r.minRun {
			return idx, nil
		}

		// 4) Enforce the budget and poll for cancellation.
		if budget > 0 && r.expanded > budget {
			return noPrev, fmt.Errorf("%w: %d states settled", ErrBudgetExceeded, budget)
		}
		if ctx != nil && r.expanded%ctxPollInterval == 0 {
			if err := ctx.Err(); err != nil {
				return noPrev, fmt.Errorf("runpath: search canceled: %w", err)
			}
		}

		// 5) Relax successors.
		r.relax(s, cost, idx)
	}
}

// relax generates the legal successors of s: straight while run < maxRun,
// and both 90° turns once run ≥ minRun.
func (r *runner) relax(s State, cost int64, from int32) {
	if s.Run < r.maxRun {
		r.try(s, s.Heading, s.Run+1, cost, from)
	}
	if s.Run >= r.minRun {
		r.try(s, s.Heading.CW(), 1, cost, from)
		r.try(s, s.Heading.CCW(), 1, cost, from)
	}
}

// try moves one cell from s along h with the given new run length and
// records the successor if it improves on the table.
func (r *runner) try(s State, h Heading, run int, cost int64, from int32) {
	nx, ny := h.Step(s.X, s.Y)
	if !r.g.InBounds(nx, ny) {
		return
	}
	newCost := cost + r.g.CostAt(nx, ny)
	idx := r.index(nx, ny, h, run)

	// Strict improvement only, so equal-cost routes are not queued twice.
	if old := r.best[idx]; old != unreached && newCost >= old {
		return
	}
	r.best[idx] = newCost
	if r.prev != nil {
		r.prev[idx] = from
	}
	r.fr.push(newCost, idx)
	r.pushed++
}

// path walks predecessors back from the goal state to the seed and returns
// the states in travel order, excluding the seed.
func (r *runner) path(goalIdx int32) []State {
	var rev []State
	for idx := goalIdx; idx != noPrev; idx = r.prev[idx] {
		s := r.decode(idx)
		if s.Run == 0 {
			break
		}
		rev = append(rev, s)
	}
	out := make([]State, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return out
}
