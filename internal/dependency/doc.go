// Package dependency defines the edge records produced while a module's
// content is parsed.
//
// A record never points at a module directly. It carries the specifier as
// written in the source and a resolve kind; the module graph answers which
// module, if any, a record resolves to. Keeping edges as plain values is
// what lets two modules import each other without either owning the other.
package dependency
