// Package sdlparse implements the SDL lexer and recursive-descent
// parser that produces the raw ast.Declaration tree described in the
// external-interfaces contract: config/model/enum declarations, field
// type references, and unresolved attribute invocations with spans
// attached to every node.
package sdlparse

import (
	"fmt"

	"github.com/contourhq/contour/pkg/ast"
)

// Parse parses SDL source (file is used only for span attribution) into
// an ordered slice of declarations, preserving source order.
func Parse(file, src string) ([]ast.Declaration, error) {
	lx := newLexer(file, src)
	toks, err := lx.lexAll()
	if err != nil {
		return nil, err
	}
	p := &parser{file: file, toks: toks}
	return p.parseDeclarations()
}

type parser struct {
	file string
	toks []token
	pos  int
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) at(k tokenKind) bool { return p.peek().kind == k }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if !p.at(k) {
		t := p.peek()
		return token{}, &ParseError{File: p.file, Line: t.line, Col: t.col, Msg: fmt.Sprintf("expected %s, got %q", what, t.text)}
	}
	return p.next(), nil
}

func (p *parser) parseDeclarations() ([]ast.Declaration, error) {
	var decls []ast.Declaration
	for !p.at(tokEOF) {
		kw, err := p.expect(tokIdent, "declaration keyword")
		if err != nil {
			return nil, err
		}
		switch kw.text {
		case "config":
			d, err := p.parseConfig(kw)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d)
		case "model":
			d, err := p.parseModel(kw)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d)
		case "enum":
			d, err := p.parseEnum(kw)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d)
		default:
			return nil, &ParseError{File: p.file, Line: kw.line, Col: kw.col, Msg: fmt.Sprintf("unknown top-level declaration %q", kw.text)}
		}
	}
	return decls, nil
}

func (p *parser) parseConfig(kw token) (*ast.Config, error) {
	name, err := p.expect(tokIdent, "config name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	cfg := &ast.Config{Name: name.text, Sp: spanAt(p.file, kw)}
	for !p.at(tokRBrace) {
		key, err := p.expect(tokIdent, "config key")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokEquals, "'='"); err != nil {
			return nil, err
		}
		val, err := p.expect(tokString, "string literal")
		if err != nil {
			return nil, err
		}
		if key.text == "provider" {
			cfg.Provider = val.lit.(string)
		}
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (p *parser) parseModel(kw token) (*ast.Model, error) {
	name, err := p.expect(tokIdent, "model name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	m := &ast.Model{Name: name.text, Sp: spanAt(p.file, kw)}
	for !p.at(tokRBrace) {
		f, err := p.parseField()
		if err != nil {
			return nil, err
		}
		m.Fields = append(m.Fields, f)
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *parser) parseEnum(kw token) (*ast.Enum, error) {
	name, err := p.expect(tokIdent, "enum name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLBrace, "'{'"); err != nil {
		return nil, err
	}
	e := &ast.Enum{Name: name.text, Sp: spanAt(p.file, kw)}
	for !p.at(tokRBrace) {
		v, err := p.expect(tokIdent, "enum variant")
		if err != nil {
			return nil, err
		}
		e.Variants = append(e.Variants, ast.EnumVariant{Name: v.text, Sp: spanAt(p.file, v)})
	}
	if _, err := p.expect(tokRBrace, "'}'"); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *parser) parseField() (*ast.Field, error) {
	name, err := p.expect(tokIdent, "field name")
	if err != nil {
		return nil, err
	}
	typeName, err := p.expect(tokIdent, "field type")
	if err != nil {
		return nil, err
	}
	tr := ast.TypeRef{Name: typeName.text, Sp: spanAt(p.file, typeName)}
	switch {
	case p.at(tokQuestion):
		p.next()
		tr.Optional = true
	case p.at(tokLBracket):
		p.next()
		if _, err := p.expect(tokRBracket, "']'"); err != nil {
			return nil, err
		}
		tr.Array = true
	}
	f := &ast.Field{Name: name.text, Type: tr, Sp: spanAt(p.file, name)}
	for p.at(tokAt) {
		at := p.next()
		call, err := p.parseAttrCall(at)
		if err != nil {
			return nil, err
		}
		f.Attrs = append(f.Attrs, call)
	}
	return f, nil
}

func (p *parser) parseAttrCall(at token) (ast.AttrCall, error) {
	name, err := p.expect(tokIdent, "attribute name")
	if err != nil {
		return ast.AttrCall{}, err
	}
	call := ast.AttrCall{Name: name.text, Sp: spanAt(p.file, at)}
	if !p.at(tokLParen) {
		return call, nil
	}
	p.next()
	for !p.at(tokRParen) {
		arg, err := p.parseArg()
		if err != nil {
			return ast.AttrCall{}, err
		}
		call.Args = append(call.Args, arg)
		if p.at(tokComma) {
			p.next()
		}
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return ast.AttrCall{}, err
	}
	return call, nil
}

// parseArg parses one positional or `key: value` / bareword argument,
// and handles nested `ident(...)` calls (e.g. `auto()`, `now()`).
func (p *parser) parseArg() (ast.Arg, error) {
	t := p.peek()
	switch t.kind {
	case tokString:
		p.next()
		return ast.Arg{Kind: ast.ArgLiteral, Literal: t.lit, Sp: spanAt(p.file, t)}, nil
	case tokInt:
		p.next()
		return ast.Arg{Kind: ast.ArgLiteral, Literal: t.lit, Sp: spanAt(p.file, t)}, nil
	case tokFloat:
		p.next()
		return ast.Arg{Kind: ast.ArgLiteral, Literal: t.lit, Sp: spanAt(p.file, t)}, nil
	case tokIdent:
		p.next()
		// key: value
		if p.at(tokColon) {
			p.next()
			val, err := p.parseArg()
			if err != nil {
				return ast.Arg{}, err
			}
			return ast.Arg{Kind: ast.ArgKeyValue, Key: t.text, Value: &val, Sp: spanAt(p.file, t)}, nil
		}
		// call: ident '(' args ')'
		if p.at(tokLParen) {
			p.next()
			call := ast.Arg{Kind: ast.ArgCall, CallName: t.text, Sp: spanAt(p.file, t)}
			for !p.at(tokRParen) {
				a, err := p.parseArg()
				if err != nil {
					return ast.Arg{}, err
				}
				call.CallArgs = append(call.CallArgs, a)
				if p.at(tokComma) {
					p.next()
				}
			}
			if _, err := p.expect(tokRParen, "')'"); err != nil {
				return ast.Arg{}, err
			}
			return call, nil
		}
		if t.text == "true" || t.text == "false" {
			return ast.Arg{Kind: ast.ArgLiteral, Literal: t.text == "true", Sp: spanAt(p.file, t)}, nil
		}
		return ast.Arg{Kind: ast.ArgIdent, Ident: t.text, Sp: spanAt(p.file, t)}, nil
	default:
		return ast.Arg{}, &ParseError{File: p.file, Line: t.line, Col: t.col, Msg: fmt.Sprintf("unexpected token %q in attribute argument", t.text)}
	}
}
