package lex

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/LunaStev/whale-c/compiler/token"
)

type (
	// Lexer scans a source text one token at a time.
	// Line and column are 1-based, the column counts bytes.
	Lexer struct {
		b []byte
		i int

		line int
		col  int
	}

	Error struct {
		Msg  string
		Line int
		Col  int
	}
)

var ops2 = []struct {
	s string
	k token.Kind
}{
	{"==", token.EqEq},
	{"!=", token.NotEq},
	{"<=", token.Le},
	{">=", token.Ge},
}

// Tokenize converts the whole text into tokens terminated by exactly one EOF token.
func Tokenize(ctx context.Context, text []byte) ([]token.Token, error) {
	toks, _, err := Scan(ctx, text)

	return toks, err
}

// Scan is Tokenize which also returns the position of each token's first byte.
func Scan(ctx context.Context, text []byte) (toks []token.Token, pos []token.Pos, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "lex", "size", len(text))
	defer tr.Finish("err", &err)

	l := New(text)

	for {
		tk, p, err := l.Next(ctx)
		if err != nil {
			return nil, nil, err
		}

		toks = append(toks, tk)
		pos = append(pos, p)

		if tk.Kind == token.EOF {
			break
		}
	}

	tr.Printw("tokens", "count", len(toks))

	return toks, pos, nil
}

func New(text []byte) *Lexer {
	return &Lexer{
		b:    text,
		line: 1,
		col:  1,
	}
}

func (l *Lexer) Pos() token.Pos {
	return token.Pos{Line: l.line, Col: l.col}
}

// Next returns the next token and its position.
// After the end of input it keeps returning EOF.
func (l *Lexer) Next(ctx context.Context) (tk token.Token, p token.Pos, err error) {
	if tr := tlog.SpanFromContext(ctx); tr.If("tokens") {
		defer func() {
			tr.Printw("next token", "tk", tk, "pos", p, "err", err, "from", loc.Callers(1, 3))
		}()
	}

	err = l.skipSpacesAndComments()
	if err != nil {
		return
	}

	p = l.Pos()

	if l.i == len(l.b) {
		return token.Of(token.EOF), p, nil
	}

	for _, op := range ops2 {
		if l.hasPrefix(op.s) {
			l.bump()
			l.bump()

			return token.Of(op.k), p, nil
		}
	}

	c := l.b[l.i]

	switch c {
	case '(':
		tk = token.Of(token.LParen)
	case ')':
		tk = token.Of(token.RParen)
	case '{':
		tk = token.Of(token.LBrace)
	case '}':
		tk = token.Of(token.RBrace)
	case ';':
		tk = token.Of(token.Semi)
	case ',':
		tk = token.Of(token.Comma)
	case '=':
		tk = token.Of(token.Assign)
	case '<':
		tk = token.Of(token.Lt)
	case '>':
		tk = token.Of(token.Gt)
	case '+':
		tk = token.Of(token.Plus)
	case '-':
		tk = token.Of(token.Minus)
	case '*':
		tk = token.Of(token.Star)
	}

	if tk.Kind != token.Illegal {
		l.bump()

		return tk, p, nil
	}

	switch {
	case isDigit(c):
		var v token.Int128

		for l.i < len(l.b) && isDigit(l.b[l.i]) {
			v = v.MulAdd(10, uint64(l.bump()-'0'))
		}

		return token.NewInt(v), p, nil
	case isIdentStart(c):
		st := l.i

		for l.i < len(l.b) && isIdentChar(l.b[l.i]) {
			l.bump()
		}

		text := string(l.b[st:l.i])

		if k := token.Lookup(text); k.IsKeyword() {
			return token.Of(k), p, nil
		}

		return token.NewIdent(text), p, nil
	}

	return tk, p, l.errorf("unexpected char: %s", quoteChar(c))
}

func (l *Lexer) skipSpacesAndComments() error {
	for {
		for l.i < len(l.b) && SpaceAll.Has(l.b[l.i]) {
			l.bump()
		}

		switch {
		case l.hasPrefix("//"):
			for l.i < len(l.b) && l.bump() != '\n' {
			}
		case l.hasPrefix("/*"):
			l.bump()
			l.bump()

			for l.i < len(l.b) && !l.hasPrefix("*/") {
				l.bump()
			}

			if l.i == len(l.b) {
				return l.errorf("unterminated block comment")
			}

			l.bump()
			l.bump()
		default:
			return nil
		}
	}
}

func (l *Lexer) bump() byte {
	c := l.b[l.i]
	l.i++

	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return c
}

func (l *Lexer) hasPrefix(p string) bool {
	return bytes.HasPrefix(l.b[l.i:], []byte(p))
}

func (l *Lexer) errorf(f string, args ...any) Error {
	return Error{
		Msg:  fmt.Sprintf(f, args...),
		Line: l.line,
		Col:  l.col,
	}
}

func (e Error) Pos() token.Pos {
	return token.Pos{Line: e.Line, Col: e.Col}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Msg, e.Line, e.Col)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// quoteChar quotes c as a Latin-1 character.
// Non-printable ones are written as '\u{hex}'.
func quoteChar(c byte) string {
	r := rune(c)

	switch {
	case r == 0:
		return `'\0'`
	case r == '\t', r == '\n', r == '\r', strconv.IsPrint(r):
		return strconv.QuoteRune(r)
	default:
		return fmt.Sprintf(`'\u{%x}'`, r)
	}
}
