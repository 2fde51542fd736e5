// Package graph provides the module graph: the arena that owns every
// module node and answers "which node does this dependency resolve to".
//
// # Why the graph owns the nodes
//
// Module nodes never reference each other. Each node keeps its dependency
// records as plain values and the graph keeps a resolution index from
// record to uri. Traversal is a sequence of lookups, so cycles
// (A imports B, B imports A) are representable without either node owning
// the other and without recursion in the data model.
//
// # Lifecycle
//
//  1. **Created** by the compilation, empty.
//  2. **Populated** during discovery: AddModule for each node, AddDependency
//     for each record that resolved.
//  3. **Sealed** once discovery has finished. After Seal every write
//     returns ErrSealed.
//  4. **Queried** concurrently by render workers and reporting.
//  5. **Discarded** with the compilation; there is no incremental mutation.
//
// # Thread-Safety
//
// All methods are safe for concurrent use. Reads take a shared lock and
// never block each other. The seal turns the single-writer/many-reader
// discipline that the compilation follows into an enforced one.
package graph
