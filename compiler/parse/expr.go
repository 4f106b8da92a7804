package parse

import (
	"context"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/token"
)

func (p *Parser) parseExpr(ctx context.Context) (ast.Expr, error) {
	return p.parseCmp(ctx)
}

// parseCmp parses Add (CmpOp Add)?. Comparisons do not chain.
func (p *Parser) parseCmp(ctx context.Context) (ast.Expr, error) {
	l, err := p.parseAdd(ctx)
	if err != nil {
		return nil, err
	}

	op, ok := cmpOps[p.peek().Kind]
	if !ok {
		return l, nil
	}

	p.bump()

	r, err := p.parseAdd(ctx)
	if err != nil {
		return nil, err
	}

	return &ast.Cmp{Left: l, Op: op, Right: r}, nil
}

func (p *Parser) parseAdd(ctx context.Context) (ast.Expr, error) {
	return p.leftToRight(ctx, addOps, p.parseMul)
}

func (p *Parser) parseMul(ctx context.Context) (ast.Expr, error) {
	return p.leftToRight(ctx, mulOps, p.parsePrimary)
}

func (p *Parser) parsePrimary(ctx context.Context) (ast.Expr, error) {
	switch t := p.bump(); t.Kind {
	case token.IntLit:
		return &ast.IntLit{Bits: 32, Signed: true, Value: t.Value}, nil
	case token.Ident:
		return &ast.Var{Name: t.Text}, nil
	case token.KwTrue:
		return &ast.BoolLit{Value: true}, nil
	case token.KwFalse:
		return &ast.BoolLit{Value: false}, nil
	case token.LParen:
		x, err := p.parseExpr(ctx)
		if err != nil {
			return nil, err
		}

		err = p.expect(token.RParen)
		if err != nil {
			return nil, err
		}

		return x, nil
	default:
		return nil, p.errorf(p.i-1, "expected primary, got %v", t)
	}
}
