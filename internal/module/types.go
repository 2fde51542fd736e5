package module

import "fmt"

// ModuleType is the declared kind of a module.
type ModuleType string

const (
	TypeJS            ModuleType = "js"
	TypeJSX           ModuleType = "jsx"
	TypeTS            ModuleType = "ts"
	TypeTSX           ModuleType = "tsx"
	TypeCSS           ModuleType = "css"
	TypeJSON          ModuleType = "json"
	TypeAsset         ModuleType = "asset"
	TypeAssetInline   ModuleType = "asset/inline"
	TypeAssetResource ModuleType = "asset/resource"
	TypeAssetSource   ModuleType = "asset/source"
)

var knownTypes = []ModuleType{
	TypeJS, TypeJSX, TypeTS, TypeTSX, TypeCSS, TypeJSON,
	TypeAsset, TypeAssetInline, TypeAssetResource, TypeAssetSource,
}

// ParseModuleType validates a type name from configuration.
func ParseModuleType(s string) (ModuleType, error) {
	for _, t := range knownTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown module type %q", s)
}

func (t ModuleType) String() string { return string(t) }

// IsJSLike reports whether the type is a script dialect.
func (t ModuleType) IsJSLike() bool {
	switch t {
	case TypeJS, TypeJSX, TypeTS, TypeTSX:
		return true
	}
	return false
}

// SourceType is an output kind a module can render to.
type SourceType int

const (
	SourceJavaScript SourceType = iota
	SourceCSS
	SourceAsset
)

func (s SourceType) String() string {
	switch s {
	case SourceJavaScript:
		return "javascript"
	case SourceCSS:
		return "css"
	case SourceAsset:
		return "asset"
	}
	return fmt.Sprintf("SourceType(%d)", int(s))
}

// ContainsSourceType reports whether st is in types.
func ContainsSourceType(types []SourceType, st SourceType) bool {
	for _, t := range types {
		if t == st {
			return true
		}
	}
	return false
}
