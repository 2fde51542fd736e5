package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderResult_TagsDoNotCoerce(t *testing.T) {
	js := JavaScriptResult("export {}")
	css := CSSResult("a{}")
	asset := AssetResult([]byte{0x89, 'P', 'N', 'G'})

	assert.Equal(t, SourceJavaScript, js.Kind())
	assert.Equal(t, SourceCSS, css.Kind())
	assert.Equal(t, SourceAsset, asset.Kind())

	_, ok := js.CSS()
	assert.False(t, ok)
	_, ok = js.Asset()
	assert.False(t, ok)
	_, ok = css.JavaScript()
	assert.False(t, ok)
	_, ok = asset.JavaScript()
	assert.False(t, ok)

	b, ok := asset.Asset()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, b)
	assert.Equal(t, 4, asset.Size())
	assert.Equal(t, 3, css.Size())
}

func TestParseModuleType(t *testing.T) {
	for _, typ := range knownTypes {
		parsed, err := ParseModuleType(typ.String())
		assert.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	_, err := ParseModuleType("wasm")
	assert.Error(t, err)

	assert.True(t, TypeTSX.IsJSLike())
	assert.False(t, TypeJSON.IsJSLike())
}

func TestSourceType_String(t *testing.T) {
	assert.Equal(t, "javascript", SourceJavaScript.String())
	assert.Equal(t, "css", SourceCSS.String())
	assert.Equal(t, "asset", SourceAsset.String())
	assert.Equal(t, "SourceType(9)", SourceType(9).String())
}
