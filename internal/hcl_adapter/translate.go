package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// translate converts the decoded blocks of one file into a partial
// config.Options ready to be merged.
func (l *Loader) translate(ctx context.Context, file string, root *fileRoot) (*config.Options, error) {
	logger := ctxlog.FromContext(ctx).With("file", file)
	opts := &config.Options{}

	if root.Context != nil {
		c := *root.Context
		if !filepath.IsAbs(c) {
			c = filepath.Join(filepath.Dir(absPath(file)), c)
		}
		opts.Context = filepath.Clean(c)
	}

	for _, e := range root.Entries {
		opts.Entries = append(opts.Entries, &config.Entry{Name: e.Name, Import: e.Import})
	}

	var raw []config.RawRule
	for _, m := range root.Modules {
		for _, r := range m.Rules {
			rule, err := translateRule(r)
			if err != nil {
				return nil, err
			}
			raw = append(raw, rule)
		}
		if m.Parser != nil && m.Parser.DataURLCondition != nil {
			size := m.Parser.DataURLCondition.MaxSize
			if size < 0 {
				return nil, fmt.Errorf("data_url_condition: max_size %d is negative", size)
			}
			opts.Module.Parser.DataURLCondition.MaxSize = config.SizeLimit(size)
		}
	}
	rules, err := config.CompileRules(raw)
	if err != nil {
		return nil, err
	}
	opts.Module.Rules = rules

	for _, r := range root.Resolve {
		if len(r.Extensions) > 0 {
			opts.Resolve.Extensions = r.Extensions
		}
	}
	for _, c := range root.CSS {
		opts.CSS.EmitJSStub = opts.CSS.EmitJSStub || c.EmitJSStub
	}

	logger.Debug("Translated HCL file.", "entries", len(opts.Entries), "rules", len(opts.Module.Rules))
	return opts, nil
}

func translateRule(r *RuleBlock) (config.RawRule, error) {
	rule := config.RawRule{
		Test:          r.Test,
		Resource:      r.Resource,
		ResourceQuery: r.ResourceQuery,
		Type:          r.Type,
	}
	for _, u := range r.Uses {
		encoded, err := encodeOptions(u.Options)
		if err != nil {
			return config.RawRule{}, fmt.Errorf("use %q: %w", u.Loader, err)
		}
		rule.Uses = append(rule.Uses, config.RuleUse{BuiltinLoader: u.Loader, Options: encoded})
	}
	return rule, nil
}

// encodeOptions serializes a loader's options as JSON. Absent options
// encode as the empty string.
func encodeOptions(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	if !v.IsWhollyKnown() {
		return "", fmt.Errorf("options must be known when the configuration is loaded")
	}
	b, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return "", fmt.Errorf("failed to encode options: %w", err)
	}
	return string(b), nil
}
