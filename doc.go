// Package routesearch finds shortest paths over small, static, weighted graphs of
// named locations.
//
// It exposes three entry points:
//
//   - AStar: informed best-first search guided by a Heuristic, returning a Result.
//   - BFS: uninformed level-order search that ignores edge weights, for comparison.
//   - Stepper: iterate an A* search one settled node at a time to drive traces or tools.
//
// Searches are single-threaded and keep all of their state local to one call, so a
// read-only Graph can be shared by any number of sequential searches. Progress is
// reported through an optional Observer instead of printing from the search loop.
package routesearch
