package parse

import (
	"context"

	"github.com/LunaStev/whale-c/compiler/token"
	"github.com/LunaStev/whale-c/compiler/tp"
)

// parseType parses 'unsigned'? ('int' | 'void').
func (p *Parser) parseType(ctx context.Context) (tp.Type, error) {
	signed := true

	if p.peekIs(token.KwUnsigned) {
		p.bump()
		signed = false
	}

	switch t := p.bump(); t.Kind {
	case token.KwInt:
		return tp.Int{Bits: 32, Signed: signed}, nil
	case token.KwVoid:
		return tp.Void{}, nil
	default:
		return nil, p.errorf(p.i-1, "expected type, got %v", t)
	}
}
