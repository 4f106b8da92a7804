package parse

import (
	"context"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/token"
)

type (
	binOps map[token.Kind]ast.BinOp
)

var (
	addOps = binOps{
		token.Plus:  ast.Add,
		token.Minus: ast.Sub,
	}

	mulOps = binOps{
		token.Star: ast.Mul,
	}

	cmpOps = map[token.Kind]ast.CmpOp{
		token.EqEq:  ast.Eq,
		token.NotEq: ast.Ne,
		token.Lt:    ast.Lt,
		token.Le:    ast.Le,
		token.Gt:    ast.Gt,
		token.Ge:    ast.Ge,
	}
)

// leftToRight parses arg (op arg)* folding to the left: a - b - c is (a - b) - c.
func (p *Parser) leftToRight(ctx context.Context, ops binOps, arg func(context.Context) (ast.Expr, error)) (x ast.Expr, err error) {
	x, err = arg(ctx)
	if err != nil {
		return nil, err
	}

	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			return x, nil
		}

		p.bump()

		r, err := arg(ctx)
		if err != nil {
			return nil, err
		}

		x = &ast.Binary{Left: x, Op: op, Right: r}
	}
}
