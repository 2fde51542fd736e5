// Package module defines the node of the module graph and the capability
// every module kind implements.
//
// # Nodes and edges
//
// A GraphModule owns exactly one Module, its identity (id and uri) and the
// ordered list of dependency records discovered when the module was parsed.
// Nodes never hold pointers to other nodes. Neighbours are found by asking
// a Lookup (the graph) which node a record resolves to, so cyclic imports
// are ordinary data.
//
// DependedModules and DynamicDependedModules partition the resolvable
// records by resolve kind. Both keep source order, skip records that do not
// resolve and recompute on every call.
//
// # Module kinds
//
// The set of kinds is open. Graph-level code only talks to the Module
// interface and never switches over concrete kinds; new kinds are added by
// implementing Module and registering a factory with the registry package.
//
// # Phases
//
// Dependencies is called once, by a single owner, while the module is being
// discovered. After the graph is sealed, SourceTypes, Render and both
// traversal methods are read-only and safe to call from many goroutines.
package module
