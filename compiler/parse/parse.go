package parse

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/lex"
	"github.com/LunaStev/whale-c/compiler/token"
)

type (
	// Parser is a recursive descent parser over a complete token slice.
	// It is single use.
	Parser struct {
		toks []token.Token
		pos  []token.Pos // parallel to toks, optional

		i int
	}

	// Error is a parse failure. Error text is the message only,
	// Pos is the offending token position if it's known.
	Error struct {
		Msg string
		Pos token.Pos

		err error
	}
)

func ParseFile(ctx context.Context, name string) (*ast.Program, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return ParseText(ctx, text)
}

// ParseText tokenizes and parses text.
// Lexical errors are reported as Error with the lexer error text.
func ParseText(ctx context.Context, text []byte) (*ast.Program, error) {
	toks, pos, err := lex.Scan(ctx, text)
	if err != nil {
		var lerr lex.Error
		if errors.As(err, &lerr) {
			return nil, Error{Msg: lerr.Error(), Pos: lerr.Pos(), err: err}
		}

		return nil, Error{Msg: err.Error(), err: err}
	}

	return New(toks, pos).Parse(ctx)
}

// Parse parses tokens as produced by lex.Tokenize.
func Parse(ctx context.Context, toks []token.Token) (*ast.Program, error) {
	return New(toks, nil).Parse(ctx)
}

// New creates a Parser. pos may be nil, otherwise it must be parallel to toks.
func New(toks []token.Token, pos []token.Pos) *Parser {
	return &Parser{
		toks: toks,
		pos:  pos,
	}
}

func (p *Parser) Parse(ctx context.Context) (prog *ast.Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse", "tokens", len(p.toks))
	defer tr.Finish("err", &err)

	prog = &ast.Program{}

	for !p.eof() {
		if p.peekIs(token.KwConst) {
			g, err := p.parseGlobalConst(ctx)
			if err != nil {
				return nil, err
			}

			prog.Globals = append(prog.Globals, g)

			continue
		}

		f, err := p.parseFunction(ctx)
		if err != nil {
			return nil, err
		}

		prog.Functions = append(prog.Functions, f)
	}

	if tr.If("ast") {
		tr.Printw("program", "globals", len(prog.Globals), "functions", len(prog.Functions), "prog", prog)
	}

	return prog, nil
}

func (p *Parser) parseFunction(ctx context.Context) (f *ast.Function, err error) {
	ret, err := p.parseType(ctx)
	if err != nil {
		return nil, err
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	err = p.expect(token.LParen)
	if err != nil {
		return nil, err
	}

	var params []ast.Param

	if !p.peekIs(token.RParen) {
		for {
			typ, err := p.parseType(ctx)
			if err != nil {
				return nil, err
			}

			pname, err := p.expectIdent()
			if err != nil {
				return nil, err
			}

			params = append(params, ast.Param{Name: pname, Type: typ})

			if !p.peekIs(token.Comma) {
				break
			}

			p.bump()
		}
	}

	err = p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock(ctx)
	if err != nil {
		return nil, err
	}

	f = &ast.Function{
		Name:   name,
		Params: params,
		Ret:    ret,
		Body:   body,
	}

	if tr := tlog.SpanFromContext(ctx); tr.If("parse") {
		tr.Printw("func", "name", name, "type", f.Type(), "stmts", len(body))
	}

	return f, nil
}

func (e Error) Error() string {
	return e.Msg
}

func (e Error) Unwrap() error {
	return e.err
}
