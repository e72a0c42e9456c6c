// Package traplanner is an anytime, tree-restoring weighted-A* path
// planner for Go.
//
// 🚀 What is traplanner?
//
//	A planner that plans once and keeps refining: it finds a bounded-
//	suboptimal path fast, then spends any remaining budget shrinking
//	the bound toward optimal, and can rewind its own search tree to an
//	earlier checkpoint instead of replanning from scratch when the goal
//	(and with it the heuristic) changes; a new start replans from scratch.
//
// ✨ Why choose traplanner?
//
//   - Anytime       — improve_path keeps tightening epsilon across iterations
//   - Restorable    — rewind the search tree to any prior expansion step
//   - Reconciling   — a goal/heuristic change triggers a bounded partial
//     rewind instead of a full restart
//   - Pluggable     — bring your own Graph and Heuristic; grid and
//     generic-graph adapters ship in gridenv and graphenv
//
// Under the hood, everything is organized under four subpackages:
//
//	planner/  — the TRA* search core: state pool, open heap, incons set,
//	            expansion history, anytime loop, tree restorer, reconciler
//	gridenv/  — a 2D blocked-cell grid Graph/Heuristic adapter
//	graphenv/ — a generic weighted-graph Graph/Heuristic adapter
//	metrics/  — a Prometheus-backed planner.Recorder
//
// Quick ASCII example, a 3×3 grid with one blocked cell:
//
//	    S . .
//	    . # .
//	    . . G
//
//	planner finds cost=4, routing around the block, and can keep
//	improving the bound if more budget remains.
//
// See cmd/traplanner for a runnable CLI driving a grid scenario end to end.
package traplanner
