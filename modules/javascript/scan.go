package javascript

import (
	"bytes"
	"strings"

	"github.com/specialistvlad/modgraph/internal/dependency"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// token is a significant lexer token with its byte range in the source.
type token struct {
	tt    js.TokenType
	text  string
	start int
	end   int
}

func (t token) is(text string) bool { return t.tt != js.StringToken && t.text == text }

// operandKeywords may precede a regular expression even though they look
// like identifiers.
var operandKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

// tokenize lexes src and drops whitespace and comments. Lexing stops at the
// end of input or the first error; the tokens read so far are kept.
func tokenize(src string) []token {
	l := js.NewLexer(parse.NewInputString(src))
	var toks []token
	offset := 0
	for {
		tt, data := l.Next()
		if tt == js.ErrorToken {
			return toks
		}
		start := offset
		if (tt == js.DivToken || tt == js.DivEqToken) && regexpAllowed(toks) {
			tt, data = l.RegExp()
			if tt == js.ErrorToken {
				return toks
			}
		}
		offset = start + len(data)
		if isTrivia(data) {
			continue
		}
		toks = append(toks, token{tt: tt, text: string(data), start: start, end: offset})
	}
}

func isTrivia(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0 || bytes.HasPrefix(data, []byte("//")) || bytes.HasPrefix(data, []byte("/*"))
}

// regexpAllowed reports whether a '/' after toks starts a regular
// expression rather than a division.
func regexpAllowed(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	prev := toks[len(toks)-1]
	switch prev.text {
	case ")", "]":
		return false
	}
	if prev.tt == js.StringToken || strings.HasSuffix(prev.text, "`") {
		return false
	}
	c := prev.text[0]
	operand := c == '_' || c == '$' || c == '#' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
	return !operand || operandKeywords[prev.text]
}

// scan returns the dependencies of src in source order. Spans cover the
// specifier text only, so a renderer can replace it in place.
func scan(src string) []dependency.ModuleDependency {
	toks := tokenize(src)
	at := func(i int) token {
		if i < len(toks) {
			return toks[i]
		}
		return token{tt: js.ErrorToken}
	}

	var deps []dependency.ModuleDependency
	add := func(t token, kind dependency.ResolveKind) {
		if d, ok := specifier(t, kind); ok {
			deps = append(deps, d)
		}
	}

	// inModuleDecl is set between an import or export keyword and the
	// specifier of its `from` clause.
	inModuleDecl := false
	for i, t := range toks {
		prev := token{}
		if i > 0 {
			prev = toks[i-1]
		}
		if prev.is(".") {
			continue
		}
		switch {
		case t.is("import") && at(i+1).is("("):
			if at(i+2).tt == js.StringToken && (at(i+3).is(")") || at(i+3).is(",")) {
				add(at(i+2), dependency.DynamicImport)
			}
		case t.is("import") && at(i+1).tt == js.StringToken:
			add(at(i+1), dependency.Import)
		case t.is("import") && !at(i+1).is("."):
			inModuleDecl = true
		case t.is("export"):
			inModuleDecl = true
		case t.is("from") && inModuleDecl && at(i+1).tt == js.StringToken:
			add(at(i+1), dependency.Import)
			inModuleDecl = false
		case t.is(";") || t.is("=") || t.is("("):
			inModuleDecl = false
		case t.is("require") && at(i+1).is("(") && at(i+2).tt == js.StringToken && at(i+3).is(")"):
			add(at(i+2), dependency.Require)
		case t.is("module") && at(i+1).is(".") && at(i+2).is("hot") && at(i+3).is(".") &&
			at(i+4).is("accept") && at(i+5).is("(") && at(i+6).tt == js.StringToken:
			add(at(i+6), dependency.ModuleHotAccept)
		}
	}
	return deps
}

// specifier turns a string literal token into a record. Literals with
// escapes are skipped: their source text is not the specifier.
func specifier(t token, kind dependency.ResolveKind) (dependency.ModuleDependency, bool) {
	if len(t.text) < 2 {
		return dependency.ModuleDependency{}, false
	}
	inner := t.text[1 : len(t.text)-1]
	if inner == "" || strings.ContainsAny(inner, "\\\n") {
		return dependency.ModuleDependency{}, false
	}
	return dependency.ModuleDependency{
		Specifier: inner,
		Kind:      kind,
		Span:      dependency.Span{Start: t.start + 1, End: t.end - 1},
	}, true
}
