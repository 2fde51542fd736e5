package dependency

import "fmt"

// Span is a half-open byte range in the importing module's source.
type Span struct {
	Start int
	End   int
}

// ModuleDependency is one edge discovered while parsing a module.
type ModuleDependency struct {
	Specifier string
	Kind      ResolveKind
	Span      Span
}

// String renders the edge for logs, e.g. `import "./a.js"`.
func (d ModuleDependency) String() string {
	return fmt.Sprintf("%s %q", d.Kind, d.Specifier)
}

// Dependency is a ModuleDependency bound to the module that declared it.
// It is comparable and is the key of the graph's resolution index.
type Dependency struct {
	// Importer is the uri of the declaring module; empty for entries.
	Importer string
	Detail   ModuleDependency
}

// New binds detail to the module at importer.
func New(importer string, detail ModuleDependency) Dependency {
	return Dependency{Importer: importer, Detail: detail}
}

// Entry builds the record used to reach a user-declared entry point.
func Entry(specifier string) Dependency {
	return Dependency{Detail: ModuleDependency{Specifier: specifier, Kind: Import}}
}

// IsDynamic is shorthand for d.Detail.Kind.IsDynamic().
func (d Dependency) IsDynamic() bool {
	return d.Detail.Kind.IsDynamic()
}
