package parse

import (
	"context"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/token"
)

// parseBlock parses '{' Stmt* '}' into a flat statement list.
func (p *Parser) parseBlock(ctx context.Context) (out []ast.Stmt, err error) {
	err = p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	for !p.peekIs(token.RBrace) {
		part, err := p.parseStmt(ctx)
		if err != nil {
			return nil, err
		}

		out = append(out, part...)
	}

	err = p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (p *Parser) parseStmtOrBlock(ctx context.Context) ([]ast.Stmt, error) {
	if p.peekIs(token.LBrace) {
		return p.parseBlock(ctx)
	}

	return p.parseStmt(ctx)
}

// parseStmt returns a list since a nested block contributes all its statements.
func (p *Parser) parseStmt(ctx context.Context) ([]ast.Stmt, error) {
	var (
		x   ast.Stmt
		err error
	)

	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock(ctx)
	case token.KwReturn:
		x, err = p.parseReturn(ctx)
	case token.KwConst:
		x, err = p.parseConstDecl(ctx)
	case token.KwInt, token.KwUnsigned:
		x, err = p.parseVarDecl(ctx)
	case token.KwIf:
		x, err = p.parseIf(ctx)
	case token.KwWhile:
		x, err = p.parseWhile(ctx)
	case token.KwBreak:
		p.bump()
		x, err = &ast.Break{}, p.expect(token.Semi)
	case token.KwContinue:
		p.bump()
		x, err = &ast.Continue{}, p.expect(token.Semi)
	case token.Ident:
		if p.peek2().Kind == token.Assign {
			x, err = p.parseAssignment(ctx)
			break
		}

		x, err = p.parseExprStmt(ctx)
	default:
		x, err = p.parseExprStmt(ctx)
	}

	if err != nil {
		return nil, err
	}

	return []ast.Stmt{x}, nil
}

func (p *Parser) parseReturn(ctx context.Context) (*ast.Return, error) {
	err := p.expect(token.KwReturn)
	if err != nil {
		return nil, err
	}

	if p.peekIs(token.Semi) {
		p.bump()

		return &ast.Return{}, nil
	}

	val, err := p.parseExpr(ctx)
	if err != nil {
		return nil, err
	}

	err = p.expect(token.Semi)
	if err != nil {
		return nil, err
	}

	return &ast.Return{Value: val}, nil
}

func (p *Parser) parseIf(ctx context.Context) (*ast.If, error) {
	cond, err := p.parseCond(ctx, token.KwIf)
	if err != nil {
		return nil, err
	}

	then, err := p.parseStmtOrBlock(ctx)
	if err != nil {
		return nil, err
	}

	var els []ast.Stmt

	if p.peekIs(token.KwElse) {
		p.bump()

		els, err = p.parseStmtOrBlock(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &ast.If{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) parseWhile(ctx context.Context) (*ast.While, error) {
	cond, err := p.parseCond(ctx, token.KwWhile)
	if err != nil {
		return nil, err
	}

	body, err := p.parseStmtOrBlock(ctx)
	if err != nil {
		return nil, err
	}

	return &ast.While{Cond: cond, Body: body}, nil
}

// parseCond parses kw '(' Expr ')' and coerces the condition to a boolean.
func (p *Parser) parseCond(ctx context.Context, kw token.Kind) (ast.Expr, error) {
	err := p.expect(kw)
	if err != nil {
		return nil, err
	}

	err = p.expect(token.LParen)
	if err != nil {
		return nil, err
	}

	x, err := p.parseExpr(ctx)
	if err != nil {
		return nil, err
	}

	err = p.expect(token.RParen)
	if err != nil {
		return nil, err
	}

	return ensureBool(x), nil
}

func (p *Parser) parseExprStmt(ctx context.Context) (*ast.ExprStmt, error) {
	x, err := p.parseExpr(ctx)
	if err != nil {
		return nil, err
	}

	err = p.expect(token.Semi)
	if err != nil {
		return nil, err
	}

	return &ast.ExprStmt{X: x}, nil
}

// ensureBool turns a non-boolean expression e into e != 0.
func ensureBool(x ast.Expr) ast.Expr {
	switch x.(type) {
	case *ast.Cmp, *ast.BoolLit:
		return x
	}

	return &ast.Cmp{Left: x, Op: ast.Ne, Right: ast.Int32(0)}
}
