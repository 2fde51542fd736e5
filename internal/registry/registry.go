package registry

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/modgraph/internal/module"
)

// Factory creates a module of one type from a loaded file.
type Factory func(uri string, content []byte) (module.Module, error)

// Module is the interface that every module kind package implements to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the factories and extension mappings for a single
// application instance.
type Registry struct {
	factories  map[module.ModuleType]Factory
	extensions map[string]module.ModuleType
}

// New creates a Registry and registers the given kinds.
func New(kinds ...Module) *Registry {
	r := &Registry{
		factories:  make(map[module.ModuleType]Factory),
		extensions: make(map[string]module.ModuleType),
	}
	for _, k := range kinds {
		k.Register(r)
	}
	return r
}

// RegisterFactory registers the factory for a module type.
func (r *Registry) RegisterFactory(typ module.ModuleType, f Factory) {
	if _, exists := r.factories[typ]; exists {
		panic(fmt.Sprintf("factory for module type '%s' already registered", typ))
	}
	slog.Debug("Registering module factory.", "type", typ)
	r.factories[typ] = f
}

// RegisterExtension maps a file extension (with its leading dot) to the
// type used when no rule sets one.
func (r *Registry) RegisterExtension(ext string, typ module.ModuleType) {
	ext = strings.ToLower(ext)
	if existing, exists := r.extensions[ext]; exists {
		panic(fmt.Sprintf("extension '%s' already mapped to module type '%s'", ext, existing))
	}
	slog.Debug("Registering extension.", "extension", ext, "type", typ)
	r.extensions[ext] = typ
}

// TypeForPath returns the type registered for path's extension.
func (r *Registry) TypeForPath(path string) (module.ModuleType, bool) {
	typ, ok := r.extensions[strings.ToLower(filepath.Ext(path))]
	return typ, ok
}

// Create builds a module of the given type.
func (r *Registry) Create(typ module.ModuleType, uri string, content []byte) (module.Module, error) {
	f, ok := r.factories[typ]
	if !ok {
		return nil, fmt.Errorf("no factory registered for module type '%s'", typ)
	}
	return f(uri, content)
}

// Types returns the registered module types, sorted.
func (r *Registry) Types() []module.ModuleType {
	types := make([]module.ModuleType, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
