package hcl_adapter

import "github.com/zclconf/go-cty/cty"

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Context *string         `hcl:"context,optional"`
	Entries []*EntryBlock   `hcl:"entry,block"`
	Modules []*ModuleBlock  `hcl:"module,block"`
	Resolve []*ResolveBlock `hcl:"resolve,block"`
	CSS     []*CSSBlock     `hcl:"css,block"`
}

// EntryBlock is an `entry "<name>"` block.
type EntryBlock struct {
	Name   string `hcl:"name,label"`
	Import string `hcl:"import"`
}

// ModuleBlock holds module rules and parser settings.
type ModuleBlock struct {
	Rules  []*RuleBlock `hcl:"rule,block"`
	Parser *ParserBlock `hcl:"parser,block"`
}

// RuleBlock is one module rule. Conditions are regular expressions.
type RuleBlock struct {
	Test          string      `hcl:"test,optional"`
	Resource      string      `hcl:"resource,optional"`
	ResourceQuery string      `hcl:"resource_query,optional"`
	Type          string      `hcl:"type,optional"`
	Uses          []*UseBlock `hcl:"use,block"`
}

// UseBlock is a `use "<loader>"` block with free-form options.
type UseBlock struct {
	Loader  string    `hcl:"loader,label"`
	Options cty.Value `hcl:"options,optional"`
}

type ParserBlock struct {
	DataURLCondition *DataURLConditionBlock `hcl:"data_url_condition,block"`
}

type DataURLConditionBlock struct {
	MaxSize int `hcl:"max_size"`
}

type ResolveBlock struct {
	Extensions []string `hcl:"extensions,optional"`
}

type CSSBlock struct {
	EmitJSStub bool `hcl:"emit_js_stub,optional"`
}
