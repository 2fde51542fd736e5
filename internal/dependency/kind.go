package dependency

import "fmt"

// ResolveKind tags the import semantics of a dependency record.
type ResolveKind int

const (
	// Import is a static ES import or re-export.
	Import ResolveKind = iota
	// Require is a CommonJS require call.
	Require
	// DynamicImport is an `import()` expression and marks a code-split boundary.
	DynamicImport
	// AtImport is a CSS `@import` rule.
	AtImport
	// URLToken is a CSS `url(...)` reference.
	URLToken
	// ModuleHotAccept is a `module.hot.accept` reference.
	ModuleHotAccept
)

var kindNames = map[ResolveKind]string{
	Import:          "import",
	Require:         "require",
	DynamicImport:   "dynamic-import",
	AtImport:        "at-import",
	URLToken:        "url-token",
	ModuleHotAccept: "module-hot-accept",
}

// String returns the canonical name of the kind.
func (k ResolveKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ResolveKind(%d)", int(k))
}

// IsDynamic reports whether the edge may be placed in a separately loaded unit.
func (k ResolveKind) IsDynamic() bool {
	return k == DynamicImport
}
