package yaml_adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/ctxlog"
	"github.com/specialistvlad/modgraph/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// ErrNoConfigFiles is returned when none of the given paths holds a YAML file.
var ErrNoConfigFiles = errors.New("no .yaml configuration files found")

// Extensions are the file extensions this loader reads.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load decodes every YAML file under paths, merges them and applies defaults.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Options, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindConfigFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoConfigFiles, paths)
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	opts := &config.Options{}
	for _, file := range files {
		root, err := decodeFile(file)
		if err != nil {
			return nil, err
		}
		partial, err := translate(file, root)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration in %s: %w", file, err)
		}
		opts.Merge(partial)
	}

	if opts.Context == "" {
		opts.Context = filepath.Dir(absPath(files[0]))
	}
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("YAML loading complete.", "context", opts.Context, "entries", len(opts.Entries), "rules", len(opts.Module.Rules))
	return opts, nil
}

func decodeFile(file string) (*fileRoot, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var root fileRoot
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}
	return &root, nil
}

func translate(file string, root *fileRoot) (*config.Options, error) {
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

	if root.Module != nil {
		raw := make([]config.RawRule, 0, len(root.Module.Rules))
		for _, r := range root.Module.Rules {
			rule := config.RawRule{Test: r.Test, Resource: r.Resource, ResourceQuery: r.ResourceQuery, Type: r.Type}
			for _, u := range r.Use {
				if u.Loader == "" {
					return nil, errors.New("use: loader is required")
				}
				encoded, err := encodeOptions(u.Options)
				if err != nil {
					return nil, fmt.Errorf("use %q: %w", u.Loader, err)
				}
				rule.Uses = append(rule.Uses, config.RuleUse{BuiltinLoader: u.Loader, Options: encoded})
			}
			raw = append(raw, rule)
		}
		rules, err := config.CompileRules(raw)
		if err != nil {
			return nil, err
		}
		opts.Module.Rules = rules

		if p := root.Module.Parser; p != nil && p.DataURLCondition != nil && p.DataURLCondition.MaxSize != nil {
			size := *p.DataURLCondition.MaxSize
			if size < 0 {
				return nil, fmt.Errorf("dataUrlCondition: maxSize %d is negative", size)
			}
			opts.Module.Parser.DataURLCondition.MaxSize = config.SizeLimit(size)
		}
	}
	if root.Resolve != nil {
		opts.Resolve.Extensions = root.Resolve.Extensions
	}
	if root.CSS != nil {
		opts.CSS.EmitJSStub = root.CSS.EmitJSStub
	}
	return opts, nil
}

func encodeOptions(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode options: %w", err)
	}
	return string(b), nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
