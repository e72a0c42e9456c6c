// Package planner implements TRA*, an anytime weighted-A* search planner
// with search-tree restoration at historical expansion checkpoints.
//
// Overview:
//
//   - The planner shrinks a suboptimality bound (epsilon) across successive
//     iterations, keeping every state it has ever touched so that a prior
//     iteration's re-opened states (INCONS) feed the next iteration's OPEN.
//   - Every state records, in creation order, the sequence of (parent, g)
//     pairs that improved its path cost, tagged with the logical expansion
//     step at which the improvement happened. This is enough to rewind the
//     whole search tree to its state as of any earlier expansion step.
//   - When the goal changes (and therefore the heuristic), the Reconciler
//     walks the closed states for the earliest one whose freshly recomputed
//     f-value exceeds the current OPEN front, and restores the tree to just
//     before that state was expanded, repeating until no such state remains.
//
// Collaborators:
//
//   - Graph supplies successors and edge costs for a state.
//   - Heuristic supplies an admissible, consistent estimate to the goal.
//
// Neither is implemented by this package; see gridenv and graphenv for two
// concrete adapters.
//
// Concurrency: Planner is single-threaded and synchronous. Replan runs to
// completion or to its time/expansion budget; there is no cancellation
// surface besides that budget, and no operation yields mid-step.
package planner
