// Package registry provides the central "glue" for the open set of module
// kinds.
//
// The Registry maps a module type (e.g. "css") to the factory that turns a
// loaded file into a module.Module, and maps file extensions to the type
// used when no module rule overrides it. Module kinds live in their own
// packages and add themselves through the Module interface, so nothing in
// the graph or compilation packages switches over concrete kinds.
//
// During application startup the registry is populated and then validated
// to make sure every type reachable from the extension table has a factory.
package registry
