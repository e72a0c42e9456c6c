// Package graphenv adapts a thread-safe, weighted adjacency-list Graph
// (string vertex IDs) into a planner.Graph over planner.StateID, for
// domains that are not naturally grid-shaped — arbitrary weighted graphs
// built with NewGraph/AddVertex/AddEdge.
//
// Vertex IDs are assigned dense, stable planner.StateIDs in lex-sorted
// order; Heuristic adapts any caller-supplied distance function (e.g.
// Euclidean on vertex coordinates kept alongside the graph) into a
// planner.Heuristic.
package graphenv
