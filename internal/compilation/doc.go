// Package compilation drives one build of the module graph.
//
// A build runs in two phases separated by a barrier:
//
//  1. Build (discovery). Starting from the configured entries, each file is
//     read, typed through the module rules and the registry, asked for its
//     dependencies exactly once and inserted into the graph. Discovery is
//     single-owner: one goroutine touches a module while it is discovered.
//     The graph is sealed when discovery ends.
//  2. Render (read). A fixed pool of workers renders every node for every
//     source type it declares. Nothing is mutated; render failures are
//     collected as diagnostics and never retried.
//
// The Compilation value is the read-only context handed to module kinds.
package compilation
