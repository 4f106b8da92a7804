package format

import (
	"context"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/tp"
)

// Format appends p as source text to b.
// Nested binary and comparison operands are parenthesized,
// so that the text parses back into the same tree.
func Format(ctx context.Context, b []byte, p *ast.Program) (_ []byte, err error) {
	for i, g := range p.Globals {
		b = app(b, 0, "const %v %s = ", g.Type, g.Name)

		b, err = formatExpr(ctx, b, g.Init)
		if err != nil {
			return nil, errors.Wrap(err, "global %v", g.Name)
		}

		b = append(b, ";\n"...)

		if i+1 == len(p.Globals) && len(p.Functions) != 0 {
			b = append(b, '\n')
		}
	}

	for i, f := range p.Functions {
		if i != 0 {
			b = append(b, '\n')
		}

		b, err = formatFunc(ctx, b, f, 0)
		if err != nil {
			return nil, errors.Wrap(err, "func %v", f.Name)
		}
	}

	return b, nil
}

func formatFunc(ctx context.Context, b []byte, x *ast.Function, d int) ([]byte, error) {
	b = app(b, d, "%v %s(", x.Ret, x.Name)

	for i, a := range x.Params {
		if i != 0 {
			b = append(b, ", "...)
		}

		b = app(b, 0, "%v %s", a.Type, a.Name)
	}

	b = append(b, ") {\n"...)

	b, err := formatBlock(ctx, b, x.Body, d+1)
	if err != nil {
		return nil, errors.Wrap(err, "body")
	}

	b = app(b, d, "}\n")

	return b, nil
}

func formatBlock(ctx context.Context, b []byte, l []ast.Stmt, d int) (_ []byte, err error) {
	for _, s := range l {
		b, err = formatStmt(ctx, b, s, d)
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

func formatStmt(ctx context.Context, b []byte, s ast.Stmt, d int) (_ []byte, err error) {
	switch s := s.(type) {
	case *ast.VarDecl:
		// a statement starting with void is an expression
		if _, ok := s.Type.(tp.Void); ok {
			b = app(b, d, "unsigned ")
			d = 0
		}

		b = app(b, d, "%v %s", s.Type, s.Name)

		if s.Init != nil {
			b = append(b, " = "...)

			b, err = formatExpr(ctx, b, s.Init)
			if err != nil {
				return nil, errors.Wrap(err, "init")
			}
		}

		b = append(b, ";\n"...)
	case *ast.ConstDecl:
		b = app(b, d, "const %v %s = ", s.Type, s.Name)

		b, err = formatExpr(ctx, b, s.Init)
		if err != nil {
			return nil, errors.Wrap(err, "init")
		}

		b = append(b, ";\n"...)
	case *ast.Assign:
		b = app(b, d, "%s = ", s.Name)

		b, err = formatExpr(ctx, b, s.Value)
		if err != nil {
			return nil, errors.Wrap(err, "rhs")
		}

		b = append(b, ";\n"...)
	case *ast.ExprStmt:
		b = app(b, d, "")

		b, err = formatExpr(ctx, b, s.X)
		if err != nil {
			return nil, errors.Wrap(err, "expr")
		}

		b = append(b, ";\n"...)
	case *ast.Return:
		if s.Value == nil {
			b = app(b, d, "return;\n")
			break
		}

		b = app(b, d, "return ")

		b, err = formatExpr(ctx, b, s.Value)
		if err != nil {
			return nil, errors.Wrap(err, "expr")
		}

		b = append(b, ";\n"...)
	case *ast.If:
		b = app(b, d, "if (")

		b, err = formatExpr(ctx, b, s.Cond)
		if err != nil {
			return nil, errors.Wrap(err, "cond")
		}

		b = append(b, ") {\n"...)

		b, err = formatBlock(ctx, b, s.Then, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "then block")
		}

		if len(s.Else) != 0 {
			b = app(b, d, "} else {\n")

			b, err = formatBlock(ctx, b, s.Else, d+1)
			if err != nil {
				return nil, errors.Wrap(err, "else block")
			}
		}

		b = app(b, d, "}\n")
	case *ast.While:
		b = app(b, d, "while (")

		b, err = formatExpr(ctx, b, s.Cond)
		if err != nil {
			return nil, errors.Wrap(err, "cond")
		}

		b = append(b, ") {\n"...)

		b, err = formatBlock(ctx, b, s.Body, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "body")
		}

		b = app(b, d, "}\n")
	case *ast.Break:
		b = app(b, d, "break;\n")
	case *ast.Continue:
		b = app(b, d, "continue;\n")
	default:
		return nil, errors.New("unsupported stmt: %T", s)
	}

	return b, nil
}

func formatExpr(ctx context.Context, b []byte, x ast.Expr) (_ []byte, err error) {
	switch x := x.(type) {
	case *ast.IntLit:
		if x.Value.Sign() < 0 {
			return nil, errors.New("negative literal: %v", x.Value)
		}

		b = append(b, x.Value.String()...)
	case *ast.BoolLit:
		b = hfmt.Appendf(b, "%v", x.Value)
	case *ast.Var:
		b = append(b, x.Name...)
	case *ast.Binary:
		return formatBinary(ctx, b, x.Left, x.Op.String(), x.Right)
	case *ast.Cmp:
		return formatBinary(ctx, b, x.Left, x.Op.String(), x.Right)
	default:
		return nil, errors.New("unsupported expr: %T", x)
	}

	return b, nil
}

func formatBinary(ctx context.Context, b []byte, l ast.Expr, op string, r ast.Expr) (_ []byte, err error) {
	b, err = formatOperand(ctx, b, l)
	if err != nil {
		return nil, errors.Wrap(err, "left")
	}

	b = hfmt.Appendf(b, " %s ", op)

	b, err = formatOperand(ctx, b, r)
	if err != nil {
		return nil, errors.Wrap(err, "right")
	}

	return b, nil
}

func formatOperand(ctx context.Context, b []byte, x ast.Expr) (_ []byte, err error) {
	switch x.(type) {
	case *ast.Binary, *ast.Cmp:
	default:
		return formatExpr(ctx, b, x)
	}

	b = append(b, '(')

	b, err = formatExpr(ctx, b, x)
	if err != nil {
		return nil, err
	}

	b = append(b, ')')

	return b, nil
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"

	for d > len(tabs) {
		b = append(b, tabs...)
		d -= len(tabs)
	}

	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)

	return b
}
