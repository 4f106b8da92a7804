package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/LunaStev/whale-c/compiler"
	"github.com/LunaStev/whale-c/compiler/format"
	"github.com/LunaStev/whale-c/compiler/lex"
	"github.com/LunaStev/whale-c/compiler/parse"
)

type (
	exitError struct {
		code int
		err  error
	}
)

var logFile *os.File

func main() {
	compileCmd := &cli.Command{
		Name:        "compile",
		Description: "parse a file and print the lowered module",
		Action:      compileAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("target", compiler.DefaultTriple, "target triple"),
		},
	}

	fmtCmd := &cli.Command{
		Name:        "fmt",
		Description: "parse a file and print it in canonical form",
		Action:      fmtAct,
		Args:        cli.Args{},
	}

	tokensCmd := &cli.Command{
		Name:        "tokens",
		Description: "print file tokens with positions",
		Action:      tokensAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "whalec",
		Description: "whalec is a compiler front end for a small C subset",
		Before:      before,
		Flags: []*cli.Flag{
			cli.NewFlag("log", "stderr", "log output file (or stderr)"),
			cli.NewFlag("verbosity,v", "", "logger verbosity topics (tokens, parse, ast)"),
		},
		Commands: []*cli.Command{
			compileCmd,
			fmtCmd,
			tokensCmd,
		},
	}

	err := cli.Run(app, os.Args, os.Environ())

	if logFile != nil {
		_ = logFile.Close()
	}

	if err != nil {
		msg, code := exitStatus(err)

		fmt.Fprintf(os.Stderr, "%v\n", msg)
		os.Exit(code)
	}
}

func before(c *cli.Command) error {
	var w io.Writer = os.Stderr

	if name := c.String("log"); name != "" && name != "stderr" {
		f, err := os.Create(name)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}

		w = f
		logFile = f
	}

	tlog.DefaultLogger = tlog.New(tlog.NewConsoleWriter(w, tlog.LstdFlags))

	tlog.SetVerbosity(c.String("verbosity"))

	return nil
}

func compileAct(c *cli.Command) (err error) {
	name, text, err := readArg(c, "compile")
	if err != nil {
		return err
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	t := compiler.DefaultTarget()
	t.Triple = c.String("target")

	m, err := compiler.Compile(ctx, name, text, compiler.Dump{}, t)
	if err != nil {
		return report(err)
	}

	fmt.Print(m)

	return nil
}

func fmtAct(c *cli.Command) (err error) {
	_, text, err := readArg(c, "fmt")
	if err != nil {
		return err
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	prog, err := parse.ParseText(ctx, text)
	if err != nil {
		return report(err)
	}

	b, err := format.Format(ctx, nil, prog)
	if err != nil {
		return report(err)
	}

	_, err = os.Stdout.Write(b)

	return err
}

func tokensAct(c *cli.Command) (err error) {
	_, text, err := readArg(c, "tokens")
	if err != nil {
		return err
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	toks, pos, err := lex.Scan(ctx, text)
	if err != nil {
		return report(err)
	}

	for i, tk := range toks {
		fmt.Printf("%v\t%v\n", pos[i], tk)
	}

	return nil
}

func readArg(c *cli.Command, cmd string) (name string, text []byte, err error) {
	if len(c.Args) != 1 {
		return "", nil, exitError{code: 2, err: errors.New("usage: whalec %v <file.c>", cmd)}
	}

	name = c.Args[0]

	text, err = os.ReadFile(name)
	if err != nil {
		return "", nil, exitError{code: 2, err: errors.Wrap(err, "failed to read %v", name)}
	}

	return name, text, nil
}

func report(err error) error {
	var perr parse.Error
	var lerr lex.Error

	switch {
	case errors.As(err, &perr):
		if perr.Pos.IsValid() {
			tlog.Printw("parse error", "pos", perr.Pos, "msg", perr.Msg)
		}

		err = errors.New("parse error: %v", perr.Msg)
	case errors.As(err, &lerr):
		err = errors.New("parse error: %v", lerr)
	default:
		err = errors.Wrap(err, "error")
	}

	return exitError{code: 1, err: err}
}

// exitStatus returns the message to print and the process exit code.
// Command name prefixes added on the way up are dropped for exitErrors.
func exitStatus(err error) (string, int) {
	var e exitError
	if errors.As(err, &e) {
		return e.err.Error(), e.code
	}

	return err.Error(), 1
}

func (e exitError) Error() string { return e.err.Error() }

func (e exitError) Unwrap() error { return e.err }
