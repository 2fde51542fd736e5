package module

// RenderResult is the rendered output of one module for one source type.
//
// It is a closed union of exactly three representations. The tag is fixed
// at construction and the accessors never convert between tags.
type RenderResult struct {
	kind  SourceType
	text  string
	bytes []byte
}

// JavaScriptResult wraps rendered script text.
func JavaScriptResult(code string) *RenderResult {
	return &RenderResult{kind: SourceJavaScript, text: code}
}

// CSSResult wraps rendered stylesheet text.
func CSSResult(code string) *RenderResult {
	return &RenderResult{kind: SourceCSS, text: code}
}

// AssetResult wraps raw bytes. The slice is not copied.
func AssetResult(b []byte) *RenderResult {
	return &RenderResult{kind: SourceAsset, bytes: b}
}

// Kind returns the tag.
func (r *RenderResult) Kind() SourceType { return r.kind }

// JavaScript returns the script text if the tag is SourceJavaScript.
func (r *RenderResult) JavaScript() (string, bool) {
	if r.kind != SourceJavaScript {
		return "", false
	}
	return r.text, true
}

// CSS returns the stylesheet text if the tag is SourceCSS.
func (r *RenderResult) CSS() (string, bool) {
	if r.kind != SourceCSS {
		return "", false
	}
	return r.text, true
}

// Asset returns the raw bytes if the tag is SourceAsset.
func (r *RenderResult) Asset() ([]byte, bool) {
	if r.kind != SourceAsset {
		return nil, false
	}
	return r.bytes, true
}

// Size is the length of the payload in bytes.
func (r *RenderResult) Size() int {
	if r.kind == SourceAsset {
		return len(r.bytes)
	}
	return len(r.text)
}
