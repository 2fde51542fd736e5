// Package asset implements the binary and text asset module kinds.
//
// An asset never has dependencies. How it is emitted depends on its type:
//
//   - asset/resource: the bytes are emitted unchanged and the script side
//     exports their public file name.
//   - asset/inline: the script side exports a base64 data URL.
//   - asset/source: the script side exports the content as a string.
//   - asset: inline when the content is at or below the compilation's
//     data URL size limit, resource otherwise.
package asset

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/specialistvlad/modgraph/internal/config"
	"github.com/specialistvlad/modgraph/internal/module"
	"github.com/specialistvlad/modgraph/internal/moduleid"
	"github.com/specialistvlad/modgraph/internal/registry"
)

// Kind implements the registry.Module interface for this package.
type Kind struct{}

// Register registers every asset type and the extensions that default to
// the automatic asset type.
func (Kind) Register(r *registry.Registry) {
	for _, typ := range []module.ModuleType{module.TypeAsset, module.TypeAssetInline, module.TypeAssetResource, module.TypeAssetSource} {
		typ := typ
		r.RegisterFactory(typ, func(uri string, content []byte) (module.Module, error) {
			return New(typ, uri, content), nil
		})
	}
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".woff", ".woff2", ".ttf", ".eot"} {
		r.RegisterExtension(ext, module.TypeAsset)
	}
	r.RegisterExtension(".txt", module.TypeAssetSource)
}

// Module is an asset. Its content is never modified.
type Module struct {
	module.NoDependencies
	typ  module.ModuleType
	uri  string
	data []byte
}

// New creates an asset module. data is retained, not copied.
func New(typ module.ModuleType, uri string, data []byte) *Module {
	return &Module{typ: typ, uri: uri, data: data}
}

func (m *Module) ModuleType() module.ModuleType { return m.typ }

// SourceTypes depends on the effective type; for the automatic type it
// reads the data URL condition from the compilation.
func (m *Module) SourceTypes(_ *module.GraphModule, c module.Compilation) []module.SourceType {
	if m.effectiveType(c) == module.TypeAssetResource {
		return []module.SourceType{module.SourceJavaScript, module.SourceAsset}
	}
	return []module.SourceType{module.SourceJavaScript}
}

func (m *Module) Render(requested module.SourceType, node *module.GraphModule, c module.Compilation) (*module.RenderResult, error) {
	typ := m.effectiveType(c)
	switch {
	case requested == module.SourceAsset && typ == module.TypeAssetResource:
		return module.AssetResult(m.data), nil
	case requested != module.SourceJavaScript:
		return nil, nil
	}

	var export string
	switch typ {
	case module.TypeAssetResource:
		export = FileName(node.ID(), m.data)
	case module.TypeAssetInline:
		export = DataURL(m.uri, m.data)
	case module.TypeAssetSource:
		export = string(m.data)
	default:
		return nil, fmt.Errorf("%w: unexpected asset type %q", module.ErrInvariant, typ)
	}
	quoted, err := json.Marshal(export)
	if err != nil {
		return nil, err
	}
	return module.JavaScriptResult(fmt.Sprintf(
		"// %s\n__modgraph_define__(%q, function (module, exports, require) {\nmodule.exports = %s;\n});\n",
		node.ID(), node.ID(), quoted)), nil
}

// effectiveType resolves the automatic type against the size limit.
func (m *Module) effectiveType(c module.Compilation) module.ModuleType {
	if m.typ != module.TypeAsset {
		return m.typ
	}
	maxSize := config.DefaultDataURLMaxSize
	if c != nil && c.Options() != nil {
		maxSize = c.Options().Module.Parser.DataURLCondition.Limit()
	}
	if len(m.data) <= maxSize {
		return module.TypeAssetInline
	}
	return module.TypeAssetResource
}

// FileName is the content-addressed output name of a resource asset, e.g.
// `3b5d5c37.png`.
func FileName(id string, data []byte) string {
	sum := sha256.Sum256(data)
	path, _ := moduleid.SplitQuery(id)
	return hex.EncodeToString(sum[:4]) + filepath.Ext(path)
}

// DataURL encodes data as a base64 data URL typed by uri's extension.
func DataURL(uri string, data []byte) string {
	path, _ := moduleid.SplitQuery(uri)
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
