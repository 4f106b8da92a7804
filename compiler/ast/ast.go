package ast

import (
	"github.com/LunaStev/whale-c/compiler/token"
	"github.com/LunaStev/whale-c/compiler/tp"
)

type (
	Program struct {
		Globals   []*GlobalConst
		Functions []*Function
	}

	GlobalConst struct {
		Name string
		Type tp.Type
		Init Expr
	}

	// Function body is flat: braces of a nested block do not produce a node,
	// only If and While own nested statement lists.
	Function struct {
		Name   string
		Params []Param
		Ret    tp.Type
		Body   []Stmt
	}

	Param struct {
		Name string
		Type tp.Type
	}

	Stmt interface {
		stmt()
	}

	Expr interface {
		expr()
	}

	// VarDecl with nil Init declares a variable without a value yet.
	VarDecl struct {
		Name string
		Type tp.Type
		Init Expr
	}

	ConstDecl struct {
		Name string
		Type tp.Type
		Init Expr
	}

	Assign struct {
		Name  string
		Value Expr
	}

	ExprStmt struct {
		X Expr
	}

	// Return with nil Value is a bare return.
	Return struct {
		Value Expr
	}

	If struct {
		Cond Expr
		Then []Stmt
		Else []Stmt
	}

	While struct {
		Cond Expr
		Body []Stmt
	}

	Break struct{}

	Continue struct{}

	IntLit struct {
		Bits   int16
		Signed bool
		Value  token.Int128
	}

	BoolLit struct {
		Value bool
	}

	Var struct {
		Name string
	}

	Binary struct {
		Left  Expr
		Op    BinOp
		Right Expr
	}

	Cmp struct {
		Left  Expr
		Op    CmpOp
		Right Expr
	}

	BinOp uint8
	CmpOp uint8
)

const (
	Add BinOp = iota
	Sub
	Mul
)

const (
	Eq CmpOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (*VarDecl) stmt()   {}
func (*ConstDecl) stmt() {}
func (*Assign) stmt()    {}
func (*ExprStmt) stmt()  {}
func (*Return) stmt()    {}
func (*If) stmt()        {}
func (*While) stmt()     {}
func (*Break) stmt()     {}
func (*Continue) stmt()  {}

func (*IntLit) expr()  {}
func (*BoolLit) expr() {}
func (*Var) expr()     {}
func (*Binary) expr()  {}
func (*Cmp) expr()     {}

// Int32 is a signed 32-bit integer literal, the only kind the parser produces.
func Int32(v int64) *IntLit {
	return &IntLit{Bits: 32, Signed: true, Value: token.Int128FromInt64(v)}
}

func (f *Function) Type() tp.Func {
	in := make([]tp.Type, len(f.Params))

	for i, p := range f.Params {
		in[i] = p.Type
	}

	return tp.Func{In: in, Out: f.Ret}
}

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	default:
		return "?"
	}
}

func (op CmpOp) String() string {
	switch op {
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}
