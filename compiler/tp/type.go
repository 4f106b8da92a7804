package tp

import "strings"

type (
	Type interface {
		Size() int
		String() string
	}

	Int struct {
		Bits   int16
		Signed bool
	}

	Void struct{}

	Func struct {
		In  []Type
		Out Type
	}
)

var (
	Int32  = Int{Bits: 32, Signed: true}
	Uint32 = Int{Bits: 32, Signed: false}
)

func (x Int) Size() int {
	return int(x.Bits) / 8
}

func (x Int) String() string {
	if x.Signed {
		return "int"
	}

	return "unsigned int"
}

func (Void) Size() int { return 0 }

func (Void) String() string { return "void" }

func (x Func) Size() int {
	return 8
}

func (x Func) String() string {
	var b strings.Builder

	b.WriteString(x.Out.String())
	b.WriteString("(")

	for i, t := range x.In {
		if i != 0 {
			b.WriteString(", ")
		}

		b.WriteString(t.String())
	}

	b.WriteString(")")

	return b.String()
}
