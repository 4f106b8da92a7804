package token

import (
	"fmt"
	"strconv"

	"tlog.app/go/tlog/tlwire"
)

type (
	Kind uint8

	// Token is a lexed token. It carries no source position,
	// positions are kept by the lexer alongside the token slice.
	Token struct {
		Kind Kind

		Text  string // Ident
		Value Int128 // IntLit
	}

	Pos struct {
		Line int
		Col  int
	}
)

const (
	Illegal Kind = iota

	KwInt
	KwUnsigned
	KwVoid
	KwConst
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwBreak
	KwContinue
	KwTrue
	KwFalse

	Ident
	IntLit

	LParen
	RParen
	LBrace
	RBrace
	Semi
	Comma

	Assign // =
	EqEq   // ==
	NotEq  // !=
	Lt     // <
	Le     // <=
	Gt     // >
	Ge     // >=

	Plus  // +
	Minus // -
	Star  // *

	EOF

	numKinds
)

var names = [numKinds]string{
	Illegal: "Illegal",

	KwInt:      "Int",
	KwUnsigned: "Unsigned",
	KwVoid:     "Void",
	KwConst:    "Const",
	KwReturn:   "Return",
	KwIf:       "If",
	KwElse:     "Else",
	KwWhile:    "While",
	KwBreak:    "Break",
	KwContinue: "Continue",
	KwTrue:     "True",
	KwFalse:    "False",

	Ident:  "Ident",
	IntLit: "IntLit",

	LParen: "LParen",
	RParen: "RParen",
	LBrace: "LBrace",
	RBrace: "RBrace",
	Semi:   "Semi",
	Comma:  "Comma",

	Assign: "Assign",
	EqEq:   "EqEq",
	NotEq:  "NotEq",
	Lt:     "Lt",
	Le:     "Le",
	Gt:     "Gt",
	Ge:     "Ge",

	Plus:  "Plus",
	Minus: "Minus",
	Star:  "Star",

	EOF: "Eof",
}

var keywords = map[string]Kind{
	"int":      KwInt,
	"unsigned": KwUnsigned,
	"void":     KwVoid,
	"const":    KwConst,
	"return":   KwReturn,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"break":    KwBreak,
	"continue": KwContinue,
	"true":     KwTrue,
	"false":    KwFalse,
}

// Lookup maps an identifier to its keyword kind, or Ident if it's not a keyword.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}

	return Ident
}

func (k Kind) IsKeyword() bool {
	return k >= KwInt && k <= KwFalse
}

func (k Kind) String() string {
	if k < numKinds {
		return names[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func Of(k Kind) Token {
	return Token{Kind: k}
}

func NewIdent(name string) Token {
	return Token{Kind: Ident, Text: name}
}

func NewInt(v Int128) Token {
	return Token{Kind: IntLit, Value: v}
}

// String returns the token as it is named in error messages: Semi, Ident("x"), IntLit(10).
func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("Ident(%q)", t.Text)
	case IntLit:
		return "IntLit(" + t.Value.String() + ")"
	default:
		return t.Kind.String()
	}
}

func (t Token) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendString(b, t.String())
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

func (p Pos) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendString(b, p.String())
}
