package config

import "regexp"

// DefaultDataURLMaxSize is the size, in bytes, at or below which an
// automatically typed asset is inlined as a data URL.
const DefaultDataURLMaxSize = 8096

// DefaultExtensions are tried in order when a specifier omits its extension.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".json", ".css"}

// Options is the unified representation of a project's bundling configuration.
type Options struct {
	// Context is the absolute project root. Module ids are relative to it.
	Context string
	Entries []*Entry
	Module  ModuleOptions
	Resolve ResolveOptions
	CSS     CSSOptions
}

// Entry is a user-declared entry point.
type Entry struct {
	Name   string
	Import string
}

// ModuleOptions groups the per-module settings.
type ModuleOptions struct {
	Rules  Rules
	Parser ParserOptions
}

// ModuleRule selects modules by path and query and overrides how they are
// typed and loaded. Every condition that is set must match.
type ModuleRule struct {
	Test          *regexp.Regexp
	Resource      *regexp.Regexp
	ResourceQuery *regexp.Regexp
	// Type overrides the module type inferred from the file extension.
	Type string
	// Uses lists loaders in declared order. A chain applies them last to
	// first; see LoaderChain.
	Uses []RuleUse
}

// RuleUse names one builtin loader and its options.
type RuleUse struct {
	BuiltinLoader string
	// Options is the JSON encoding of the configured options, or empty.
	Options string
}

// ParserOptions holds settings consumed while modules are parsed and rendered.
type ParserOptions struct {
	DataURLCondition DataURLCondition
}

// DataURLCondition decides when an automatically typed asset is inlined.
type DataURLCondition struct {
	// MaxSize is nil when unset. An explicit 0 inlines only empty assets.
	MaxSize *int
}

// Limit returns the configured size limit, or DefaultDataURLMaxSize when
// none is set.
func (d DataURLCondition) Limit() int {
	if d.MaxSize == nil {
		return DefaultDataURLMaxSize
	}
	return *d.MaxSize
}

// SizeLimit returns a pointer to n, for setting DataURLCondition.MaxSize.
func SizeLimit(n int) *int { return &n }

// ResolveOptions configures specifier resolution.
type ResolveOptions struct {
	Extensions []string
}

// CSSOptions configures stylesheet output.
type CSSOptions struct {
	// EmitJSStub makes stylesheet modules also render a script companion.
	EmitJSStub bool
}

// Defaults returns an Options with every default applied.
func Defaults() *Options {
	o := &Options{}
	o.ApplyDefaults()
	return o
}

// ApplyDefaults fills in unset settings.
func (o *Options) ApplyDefaults() {
	if o.Module.Parser.DataURLCondition.MaxSize == nil {
		o.Module.Parser.DataURLCondition.MaxSize = SizeLimit(DefaultDataURLMaxSize)
	}
	if len(o.Resolve.Extensions) == 0 {
		o.Resolve.Extensions = append([]string(nil), DefaultExtensions...)
	}
}

// Merge overlays src onto o. Entries and rules are appended; every other
// setting in src replaces o's when it is set.
func (o *Options) Merge(src *Options) {
	if src.Context != "" {
		o.Context = src.Context
	}
	o.Entries = append(o.Entries, src.Entries...)
	o.Module.Rules = append(o.Module.Rules, src.Module.Rules...)
	if size := src.Module.Parser.DataURLCondition.MaxSize; size != nil {
		o.Module.Parser.DataURLCondition.MaxSize = SizeLimit(*size)
	}
	if len(src.Resolve.Extensions) > 0 {
		o.Resolve.Extensions = append([]string(nil), src.Resolve.Extensions...)
	}
	if src.CSS.EmitJSStub {
		o.CSS.EmitJSStub = true
	}
}
