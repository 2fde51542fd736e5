package css

import (
	"strings"

	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type token struct {
	tt    css.TokenType
	text  string
	start int
}

// tokenize lexes src and drops whitespace and comments.
func tokenize(src string) []token {
	l := css.NewLexer(parse.NewInputString(src))
	var toks []token
	offset := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return toks
		}
		start := offset
		offset += len(data)
		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}
		toks = append(toks, token{tt: tt, text: string(data), start: start})
	}
}

// scan returns the @import and url() references of src in source order.
// References that can never be modules (data URIs, fragments, absolute
// URLs) are skipped.
func scan(src string) []dependency.ModuleDependency {
	toks := tokenize(src)
	var deps []dependency.ModuleDependency

	for i := 0; i < len(toks); i++ {
		t := toks[i]
		kind := dependency.URLToken
		if t.tt == css.AtKeywordToken {
			if !strings.EqualFold(t.text, "@import") || i+1 == len(toks) {
				continue
			}
			kind = dependency.AtImport
			i++
			t = toks[i]
			if t.tt == css.StringToken {
				if spec, ok := unquote(t.text); ok {
					deps = appendRef(deps, t.start+1, spec, kind)
				}
				continue
			}
		}

		switch {
		case t.tt == css.URLToken:
			if start, spec, ok := urlArgument(t); ok {
				deps = appendRef(deps, start, spec, kind)
			}
		case t.tt == css.FunctionToken && strings.EqualFold(t.text, "url(") &&
			i+1 < len(toks) && toks[i+1].tt == css.StringToken:
			i++
			if spec, ok := unquote(toks[i].text); ok {
				deps = appendRef(deps, toks[i].start+1, spec, kind)
			}
		}
	}
	return deps
}

// urlArgument extracts the reference inside a `url(...)` token, with or
// without quotes, and its offset in the source.
func urlArgument(t token) (int, string, bool) {
	open := strings.IndexByte(t.text, '(')
	if open < 0 || !strings.HasSuffix(t.text, ")") {
		return 0, "", false
	}
	inner := t.text[open+1 : len(t.text)-1]
	start := t.start + open + 1
	trimmed := strings.TrimLeft(inner, " \t\r\n\f")
	start += len(inner) - len(trimmed)
	inner = strings.TrimRight(trimmed, " \t\r\n\f")
	if spec, ok := unquote(inner); ok {
		return start + 1, spec, true
	}
	return start, inner, true
}

// unquote strips matching quotes from a string token.
func unquote(s string) (string, bool) {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func appendRef(deps []dependency.ModuleDependency, start int, spec string, kind dependency.ResolveKind) []dependency.ModuleDependency {
	if spec == "" || isExternal(spec) || strings.ContainsAny(spec, "\\\n") {
		return deps
	}
	return append(deps, dependency.ModuleDependency{
		Specifier: spec,
		Kind:      kind,
		Span:      dependency.Span{Start: start, End: start + len(spec)},
	})
}

func isExternal(spec string) bool {
	lower := strings.ToLower(spec)
	return strings.HasPrefix(lower, "data:") ||
		strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "//") ||
		strings.Contains(lower, "://")
}
