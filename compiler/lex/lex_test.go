package lex

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"

	"github.com/LunaStev/whale-c/compiler/token"
)

func kinds(ks ...token.Kind) []token.Token {
	r := make([]token.Token, len(ks))

	for i, k := range ks {
		r[i] = token.Of(k)
	}

	return r
}

func ident(s string) token.Token { return token.NewIdent(s) }

func num(v int64) token.Token { return token.NewInt(token.Int128FromInt64(v)) }

func eof() token.Token { return token.Of(token.EOF) }

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		exp  []token.Token
	}{
		{name: "Empty", in: "", exp: kinds(token.EOF)},
		{name: "OnlySpaces", in: " \t\r\n ", exp: kinds(token.EOF)},
		{
			name: "Punct",
			in:   "( ) { } ; ,",
			exp:  kinds(token.LParen, token.RParen, token.LBrace, token.RBrace, token.Semi, token.Comma, token.EOF),
		},
		{
			name: "Operators",
			in:   "= == != < <= > >= + - *",
			exp: kinds(token.Assign, token.EqEq, token.NotEq, token.Lt, token.Le, token.Gt, token.Ge,
				token.Plus, token.Minus, token.Star, token.EOF),
		},
		{name: "MaximalMunchLe", in: "<=", exp: kinds(token.Le, token.EOF)},
		{name: "MaximalMunchEq", in: "==", exp: kinds(token.EqEq, token.EOF)},
		{name: "MaximalMunchNe", in: "!=", exp: kinds(token.NotEq, token.EOF)},
		{name: "MaximalMunchGe", in: ">=", exp: kinds(token.Ge, token.EOF)},
		{name: "TripleEq", in: "===", exp: kinds(token.EqEq, token.Assign, token.EOF)},
		{name: "SplitLe", in: "< =", exp: kinds(token.Lt, token.Assign, token.EOF)},
		{
			name: "Keywords",
			in:   "int unsigned void const return if else while break continue true false",
			exp: kinds(token.KwInt, token.KwUnsigned, token.KwVoid, token.KwConst, token.KwReturn, token.KwIf,
				token.KwElse, token.KwWhile, token.KwBreak, token.KwContinue, token.KwTrue, token.KwFalse, token.EOF),
		},
		{
			name: "Identifiers",
			in:   "x _y integer int2 Int a_1",
			exp:  []token.Token{ident("x"), ident("_y"), ident("integer"), ident("int2"), ident("Int"), ident("a_1"), eof()},
		},
		{
			name: "Numbers",
			in:   "0 7 42 007",
			exp:  []token.Token{num(0), num(7), num(42), num(7), eof()},
		},
		{
			name: "NumberThenIdent",
			in:   "12ab",
			exp:  []token.Token{num(12), ident("ab"), eof()},
		},
		{
			name: "NoSpaces",
			in:   "x=a+1;",
			exp:  []token.Token{ident("x"), token.Of(token.Assign), ident("a"), token.Of(token.Plus), num(1), token.Of(token.Semi), eof()},
		},
		{name: "LineComment", in: "a//c\nb", exp: []token.Token{ident("a"), ident("b"), eof()}},
		{name: "LineCommentAtEnd", in: "a // c", exp: []token.Token{ident("a"), eof()}},
		{name: "BlockComment", in: "a/* x\n y */b", exp: []token.Token{ident("a"), ident("b"), eof()}},
		{name: "BlockCommentNotNested", in: "/* /* */ a", exp: []token.Token{ident("a"), eof()}},
		{name: "CommentsInARow", in: "// a\n/* b */ // c\n/**/x", exp: []token.Token{ident("x"), eof()}},
		{name: "DivLikeStar", in: "a */", exp: nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(context.Background(), []byte(tc.in))
			if tc.exp == nil {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.exp, toks)
		})
	}
}

func TestCommentTransparency(t *testing.T) {
	ctx := context.Background()

	a, err := Tokenize(ctx, []byte("a//c\nb"))
	require.NoError(t, err)

	b, err := Tokenize(ctx, []byte("a\nb"))
	require.NoError(t, err)

	assert.Equal(t, b, a)
}

func TestSingleEOF(t *testing.T) {
	toks, err := Tokenize(context.Background(), []byte("int main() { return 0; } // end"))
	require.NoError(t, err)

	for i, tk := range toks {
		if i+1 == len(toks) {
			assert.Equal(t, token.EOF, tk.Kind)
		} else {
			assert.NotEqual(t, token.EOF, tk.Kind, "token %d", i)
		}
	}
}

func TestWideIntegers(t *testing.T) {
	for _, s := range []string{
		"2147483647",
		"4294967296",
		"18446744073709551615",
		"99999999999999999999999999",
		"170141183460469231731687303715884105727",
	} {
		toks, err := Tokenize(context.Background(), []byte(s))
		require.NoError(t, err)
		require.Len(t, toks, 2)

		want, _ := new(big.Int).SetString(s, 10)

		assert.Equal(t, token.IntLit, toks[0].Kind)
		assert.Equal(t, 0, want.Cmp(toks[0].Value.Big()), s)
	}
}

func TestPositions(t *testing.T) {
	toks, pos, err := Scan(context.Background(), []byte("a\n  b /* c\n */ ==\n"))
	require.NoError(t, err)

	assert.Equal(t, []token.Token{ident("a"), ident("b"), token.Of(token.EqEq), eof()}, toks)
	assert.Equal(t, []token.Pos{{Line: 1, Col: 1}, {Line: 2, Col: 3}, {Line: 3, Col: 5}, {Line: 4, Col: 1}}, pos)
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		exp  Error
		text string
	}{
		{
			name: "UnterminatedBlockComment",
			in:   "/* x",
			exp:  Error{Msg: "unterminated block comment", Line: 1, Col: 5},
			text: "unterminated block comment (1:5)",
		},
		{
			name: "UnterminatedAfterNewline",
			in:   "a /*\nb",
			exp:  Error{Msg: "unterminated block comment", Line: 2, Col: 2},
		},
		{
			name: "StarSlashOnly",
			in:   "/*/",
			exp:  Error{Msg: "unterminated block comment", Line: 1, Col: 4},
		},
		{
			name: "UnexpectedChar",
			in:   "a $ b",
			exp:  Error{Msg: "unexpected char: '$'", Line: 1, Col: 3},
			text: "unexpected char: '$' (1:3)",
		},
		{
			name: "LoneBang",
			in:   "x\n  !y",
			exp:  Error{Msg: "unexpected char: '!'", Line: 2, Col: 3},
		},
		{
			name: "Slash",
			in:   "a / b",
			exp:  Error{Msg: "unexpected char: '/'", Line: 1, Col: 3},
		},
		{
			name: "ControlByte",
			in:   "a\x01",
			exp:  Error{Msg: `unexpected char: '\u{1}'`, Line: 1, Col: 2},
		},
		{
			name: "NulByte",
			in:   "\x00",
			exp:  Error{Msg: `unexpected char: '\0'`, Line: 1, Col: 1},
		},
		{
			name: "HighControlByte",
			in:   "\x80",
			exp:  Error{Msg: `unexpected char: '\u{80}'`, Line: 1, Col: 1},
		},
		{
			name: "Latin1Letter",
			in:   "\xe9",
			exp:  Error{Msg: "unexpected char: '\u00e9'", Line: 1, Col: 1},
		},
		{
			name: "Quote",
			in:   "'",
			exp:  Error{Msg: `unexpected char: '\''`, Line: 1, Col: 1},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(context.Background(), []byte(tc.in))
			require.Error(t, err)
			assert.Nil(t, toks)

			var lerr Error
			require.True(t, errors.As(err, &lerr), "%T", err)

			assert.Equal(t, tc.exp, lerr)
			assert.Equal(t, token.Pos{Line: tc.exp.Line, Col: tc.exp.Col}, lerr.Pos())

			if tc.text != "" {
				assert.EqualError(t, err, tc.text)
			}
		})
	}
}

func TestNextAfterEOF(t *testing.T) {
	ctx := context.Background()
	l := New([]byte("x"))

	tk, _, err := l.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, ident("x"), tk)

	for i := 0; i < 2; i++ {
		tk, p, err := l.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, eof(), tk)
		assert.Equal(t, token.Pos{Line: 1, Col: 2}, p)
	}
}

func TestSpaces(t *testing.T) {
	for _, c := range []byte(" \t\r\n") {
		assert.True(t, SpaceAll.Has(c), "%q", c)
	}

	for _, c := range []byte("a/\v\x00\xff") {
		assert.False(t, SpaceAll.Has(c), "%q", c)
	}

	assert.Panics(t, func() { NewSpaces('a') })
}
