package parse

import (
	"fmt"

	"github.com/LunaStev/whale-c/compiler/token"
)

// Reads past the end of the slice see EOF.

func (p *Parser) eof() bool {
	return p.peekIs(token.EOF)
}

func (p *Parser) peek() token.Token {
	return p.at(p.i)
}

func (p *Parser) peek2() token.Token {
	return p.at(p.i + 1)
}

func (p *Parser) peekIs(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) bump() token.Token {
	t := p.peek()
	p.i++

	return t
}

func (p *Parser) at(i int) token.Token {
	if i < len(p.toks) {
		return p.toks[i]
	}

	return token.Of(token.EOF)
}

func (p *Parser) expect(want token.Kind) error {
	got := p.bump()
	if got.Kind == want {
		return nil
	}

	return p.errorf(p.i-1, "expected %v, got %v", want, got)
}

func (p *Parser) expectIdent() (string, error) {
	got := p.bump()
	if got.Kind == token.Ident {
		return got.Text, nil
	}

	return "", p.errorf(p.i-1, "expected identifier, got %v", got)
}

// errorf reports an error at token i.
func (p *Parser) errorf(i int, f string, args ...any) Error {
	return Error{
		Msg: fmt.Sprintf(f, args...),
		Pos: p.posAt(i),
	}
}

func (p *Parser) posAt(i int) token.Pos {
	switch {
	case len(p.pos) == 0:
		return token.Pos{}
	case i < len(p.pos):
		return p.pos[i]
	default:
		return p.pos[len(p.pos)-1]
	}
}
