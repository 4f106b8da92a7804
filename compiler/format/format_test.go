package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/parse"
	"github.com/LunaStev/whale-c/compiler/token"
	"github.com/LunaStev/whale-c/compiler/tp"
)

const src = `const int N = 10;
const unsigned int M = (N * 2) + 1;

int add(int a, unsigned int b) {
	return a + b;
}

void loop(int n) {
	int i = 0;
	int j;
	const int k = 3;
	while (i < n) {
		i = i + 1;
		if (i == k) {
			continue;
		} else {
			j = (i - 1) - (2 * k);
		}
		if (i > 100) {
			break;
		}
		i;
	}
	if (true) {
		return;
	}
}
`

func TestFormat(t *testing.T) {
	ctx := context.Background()

	prog, err := parse.ParseText(ctx, []byte(src))
	require.NoError(t, err)

	b, err := Format(ctx, nil, prog)
	require.NoError(t, err)

	assert.Equal(t, src, string(b))
}

func TestFormatRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, in := range []string{
		"int f() { return 1 + 2 * 3 - 4; }",
		"int f(int x) { if (x) return 1; else if (x < 0) return 2; return 3; }",
		"void f() { { int a = 1; { a = a * (a + 1); } } while (a) { a = a - 1; } }",
		"const int X = 1; const int Y = X - (X - 1); int g() { return (X) == (Y); }",
		"int f() { if ((1 < 2) == true) {} return 170141183460469231731687303715884105727; }",
		"int f() { unsigned void x; const void y = 1; }",
	} {
		prog, err := parse.ParseText(ctx, []byte(in))
		require.NoError(t, err, in)

		b, err := Format(ctx, nil, prog)
		require.NoError(t, err, in)

		again, err := parse.ParseText(ctx, b)
		require.NoError(t, err, "%s", b)

		assert.Equal(t, prog, again, "%s", b)
	}
}

func TestFormatCoercedCondition(t *testing.T) {
	ctx := context.Background()

	prog, err := parse.ParseText(ctx, []byte("void f() { while (n) n = n - 1; }"))
	require.NoError(t, err)

	b, err := Format(ctx, nil, prog)
	require.NoError(t, err)

	assert.Equal(t, "void f() {\n\twhile (n != 0) {\n\t\tn = n - 1;\n\t}\n}\n", string(b))
}

func TestFormatVoidLocal(t *testing.T) {
	ctx := context.Background()

	prog, err := parse.ParseText(ctx, []byte("void f(unsigned void a) { unsigned void x; }"))
	require.NoError(t, err)

	b, err := Format(ctx, nil, prog)
	require.NoError(t, err)

	assert.Equal(t, "void f(void a) {\n\tunsigned void x;\n}\n", string(b))
}

func TestFormatAppends(t *testing.T) {
	p := &ast.Program{
		Functions: []*ast.Function{{Name: "f", Ret: tp.Void{}}},
	}

	b, err := Format(context.Background(), []byte("// header\n"), p)
	require.NoError(t, err)

	assert.Equal(t, "// header\nvoid f() {\n}\n", string(b))
}

func TestFormatErrors(t *testing.T) {
	p := &ast.Program{
		Functions: []*ast.Function{{
			Name: "f",
			Ret:  tp.Int32,
			Body: []ast.Stmt{
				&ast.Return{Value: &ast.IntLit{Bits: 32, Signed: true, Value: token.Int128FromInt64(-1)}},
			},
		}},
	}

	_, err := Format(context.Background(), nil, p)
	assert.EqualError(t, err, "func f: body: expr: negative literal: -1")

	p.Functions[0].Body = []ast.Stmt{&ast.ExprStmt{X: nil}}

	_, err = Format(context.Background(), nil, p)
	assert.EqualError(t, err, "func f: body: expr: unsupported expr: <nil>")
}
