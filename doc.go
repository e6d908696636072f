// Package crucible finds the cheapest path across a weighted grid when
// movement is constrained by straight-run limits.
//
// 🚀 What is crucible?
//
//	A small, zero-cgo toolkit built around one search:
//		• gridgraph: dense cost grids, digit-grid parsing, points
//		• runpath:   Dijkstra over (cell, heading, run) states with
//		             heap or bucket-queue frontiers
//		• cmd/crucible: solve / cost / serve commands over the engine
//
// ✨ The rules
//
//   - a mover starts at a cell and pays the cost of every cell it enters
//   - it may go straight or turn 90°, never reverse
//   - every straight run is between minRun and maxRun cells long
//   - the goal counts only once the final run reached minRun
//
// Quick ASCII example (minRun=1, maxRun=3):
//
//	S 1 1
//	1 9 1
//	1 1 G     → cost 4, moves EESS
//
// Under the hood, packages are organized as:
//
//	gridgraph/     — CostGrid, Point, ParseDigits
//	runpath/       — MinimalCost, Search, Heading, frontiers
//	internal/cli/  — cobra commands, TOML profiles, chi HTTP API
//	cmd/crucible/  — the binary
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible
