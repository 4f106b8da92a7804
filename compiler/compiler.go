package compiler

import (
	"context"
	"fmt"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/LunaStev/whale-c/compiler/ast"
	"github.com/LunaStev/whale-c/compiler/format"
	"github.com/LunaStev/whale-c/compiler/parse"
)

type (
	// Lowerer turns a program into a target module.
	Lowerer interface {
		Lower(ctx context.Context, p *ast.Program, t Target) (Module, error)
	}

	Module interface {
		fmt.Stringer
	}

	Target struct {
		Triple string
		Layout DataLayout
	}

	DataLayout struct {
		PointerBits  int
		LittleEndian bool
	}

	// Dump is a Lowerer which renders the program back as source text.
	Dump struct{}

	dumpModule string
)

const DefaultTriple = "x86_64-whale-linux"

func DefaultDataLayout64LE() DataLayout {
	return DataLayout{
		PointerBits:  64,
		LittleEndian: true,
	}
}

func DefaultTarget() Target {
	return Target{
		Triple: DefaultTriple,
		Layout: DefaultDataLayout64LE(),
	}
}

func CompileFile(ctx context.Context, name string, l Lowerer, t Target) (Module, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Compile(ctx, name, text, l, t)
}

func Compile(ctx context.Context, name string, text []byte, l Lowerer, t Target) (m Module, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compile", "name", name, "target", t.Triple)
	defer tr.Finish("err", &err)

	prog, err := parse.ParseText(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	tr.Printw("parsed", "globals", len(prog.Globals), "functions", len(prog.Functions))

	m, err = l.Lower(ctx, prog, t)
	if err != nil {
		return nil, errors.Wrap(err, "lower")
	}

	return m, nil
}

func (Dump) Lower(ctx context.Context, p *ast.Program, t Target) (Module, error) {
	b := []byte("// target: " + t.Triple + "\n")

	b, err := format.Format(ctx, b, p)
	if err != nil {
		return nil, errors.Wrap(err, "format")
	}

	return dumpModule(b), nil
}

func (m dumpModule) String() string { return string(m) }
