// Package gridenv adapts a 2D grid of blocked/open cells into a
// planner.Graph and planner.Heuristic pair, so the TRA* planner (package
// planner) can be exercised and benchmarked without a real robotics
// environment. It is adapted from the teacher's gridgraph package: the
// same rectangular-grid validation, precomputed neighbor-offset table,
// and row-major index/coordinate helpers, repurposed to emit
// (planner.StateID, cost) successor pairs and a Manhattan/Chebyshev
// distance heuristic instead of a generic adjacency-list graph.
package gridenv
