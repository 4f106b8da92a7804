package parse

import (
	"context"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/token"
	"github.com/LunaStev/whale-c/compiler/tp"
)

func (p *Parser) parseGlobalConst(ctx context.Context) (*ast.GlobalConst, error) {
	name, typ, init, err := p.parseConst(ctx)
	if err != nil {
		return nil, err
	}

	return &ast.GlobalConst{Name: name, Type: typ, Init: init}, nil
}

func (p *Parser) parseConstDecl(ctx context.Context) (*ast.ConstDecl, error) {
	name, typ, init, err := p.parseConst(ctx)
	if err != nil {
		return nil, err
	}

	return &ast.ConstDecl{Name: name, Type: typ, Init: init}, nil
}

// parseConst parses 'const' Type Ident '=' Expr ';'.
func (p *Parser) parseConst(ctx context.Context) (name string, typ tp.Type, init ast.Expr, err error) {
	err = p.expect(token.KwConst)
	if err != nil {
		return
	}

	typ, err = p.parseType(ctx)
	if err != nil {
		return
	}

	name, err = p.expectIdent()
	if err != nil {
		return
	}

	err = p.expect(token.Assign)
	if err != nil {
		return
	}

	init, err = p.parseExpr(ctx)
	if err != nil {
		return
	}

	err = p.expect(token.Semi)

	return
}

// parseVarDecl parses Type Ident ('=' Expr)? ';'.
func (p *Parser) parseVarDecl(ctx context.Context) (*ast.VarDecl, error) {
	typ, err := p.parseType(ctx)
	if err != nil {
		return nil, err
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	var init ast.Expr

	if p.peekIs(token.Assign) {
		p.bump()

		init, err = p.parseExpr(ctx)
		if err != nil {
			return nil, err
		}
	}

	err = p.expect(token.Semi)
	if err != nil {
		return nil, err
	}

	return &ast.VarDecl{Name: name, Type: typ, Init: init}, nil
}

// parseAssignment parses Ident '=' Expr ';'.
func (p *Parser) parseAssignment(ctx context.Context) (*ast.Assign, error) {
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	err = p.expect(token.Assign)
	if err != nil {
		return nil, err
	}

	val, err := p.parseExpr(ctx)
	if err != nil {
		return nil, err
	}

	err = p.expect(token.Semi)
	if err != nil {
		return nil, err
	}

	return &ast.Assign{Name: name, Value: val}, nil
}
