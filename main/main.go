package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dball/irange/core"
	"github.com/dball/irange/printer"
	"github.com/dball/irange/reader"
	"github.com/dball/irange/types"
	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// demoForms walk through the documented range examples
var demoForms = []string{
	"(def! r (range 10))",
	"(seq r)",
	"(sum r)",
	"(def! neg (range 5 -20 -3))",
	"neg",
	"(count neg)",
	"(contains? neg -4)",
	"(nth neg 5)",
	"(drop 5 neg)",
	"(def! big (range -567656 234543234 27))",
	"(index-of big 397378)",
	"(describe big)",
	"(def! none (range 3 3 1))",
	"(count none)",
	"(sum none)",
	"(seq none)",
	"(nth none 0)",
	"(range 0 10 0)",
	"(def! backwards (range 0 10 -1))",
	"(count backwards)",
	"(seq backwards)",
}

func evalAst(env *types.Env, form types.Value) (types.Value, error) {
	switch value := form.(type) {
	case types.Symbol:
		return env.Get(value.Name)
	case types.List:
		items := make([]types.Value, value.Imm.Len())
		itr := value.Imm.Iterator()
		for !itr.Done() {
			i, v := itr.Next()
			item, err := EVAL(env, v)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return types.NewList(items...), nil
	default:
		return value, nil
	}
}

// READ reads
func READ(s string) (types.Value, error) {
	return reader.ReadStr(s)
}

// EVAL evaluates a form in an env
func EVAL(env *types.Env, form types.Value) (types.Value, error) {
	list, valid := form.(types.List)
	if !valid {
		return evalAst(env, form)
	}
	if list.Imm.Len() == 0 {
		return list, nil
	}
	items := list.Items()
	if symbol, valid := items[0].(types.Symbol); valid {
		switch symbol.Name {
		case "def!":
			if len(items) != 3 {
				return nil, errors.New("def! requires a name and a value")
			}
			name, valid := items[1].(types.Symbol)
			if !valid {
				return nil, errors.New("def! requires a symbol name")
			}
			value, err := EVAL(env, items[2])
			if err != nil {
				return nil, errors.Wrapf(err, "failed to define %s", name.Name)
			}
			env.Set(name.Name, value)
			return value, nil
		case "let*":
			if len(items) != 3 {
				return nil, errors.New("let* requires bindings and a body")
			}
			bindings, valid := items[1].(types.List)
			if !valid || bindings.Imm.Len()%2 != 0 {
				return nil, errors.New("let* requires an even list of bindings")
			}
			letEnv := types.DeriveEnv(env)
			binds := bindings.Items()
			for i := 0; i < len(binds); i += 2 {
				name, valid := binds[i].(types.Symbol)
				if !valid {
					return nil, errors.New("let* binds must be symbols")
				}
				value, err := EVAL(letEnv, binds[i+1])
				if err != nil {
					return nil, errors.Wrapf(err, "failed to bind %s", name.Name)
				}
				letEnv.Set(name.Name, value)
			}
			return EVAL(letEnv, items[2])
		case "do":
			var result types.Value = types.Nil{}
			for _, item := range items[1:] {
				value, err := EVAL(env, item)
				if err != nil {
					return nil, err
				}
				result = value
			}
			return result, nil
		}
	}
	evaluated, err := evalAst(env, form)
	if err != nil {
		return nil, err
	}
	args := evaluated.(types.List).Items()
	f, valid := args[0].(types.Function)
	if !valid {
		return nil, errors.Errorf("%v is not a function", args[0])
	}
	return f.Fn(args[1:]...)
}

// PRINT prints
func PRINT(config printer.Config, value types.Value) string {
	return printer.PrintStr(config, value)
}

func rep(env *types.Env, config printer.Config, s string) (string, error) {
	form, err := READ(s)
	if err != nil {
		return "", err
	}
	slog.Debug("Evaluating", "form", PRINT(config, form))
	value, err := EVAL(env, form)
	if err != nil {
		return "", err
	}
	return PRINT(config, value), nil
}

func runDemo(w io.Writer, config printer.Config) error {
	env := core.BuildEnv(config)
	for _, form := range demoForms {
		out, err := rep(env, config, form)
		if err != nil {
			out = "#ERROR: " + err.Error()
		}
		if _, err := fmt.Fprintf(w, "%s => %s\n", form, out); err != nil {
			return errors.Wrapf(err, "failed to write demo output")
		}
	}
	return nil
}

func interactiveRepl(env *types.Env, config printer.Config, historyFile string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	if f, err := os.Open(historyFile); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			slog.Debug("Ignoring unreadable history", "file", historyFile, "err", err)
		}
		f.Close()
	}
	failed := color.New(color.FgRed).SprintFunc()
	for {
		text, err := line.Prompt("range> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return errors.Wrapf(err, "failed to read line")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		line.AppendHistory(text)
		out, err := rep(env, config, text)
		if err != nil {
			fmt.Fprintln(os.Stdout, failed("#ERROR: "+err.Error()))
		} else {
			fmt.Fprintln(os.Stdout, out)
		}
	}
	f, err := os.Create(historyFile)
	if err != nil {
		return errors.Wrapf(err, "failed to save history")
	}
	defer f.Close()
	_, err = line.WriteHistory(f)
	return errors.Wrapf(err, "failed to save history")
}

func setupLogger(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logW := os.Stderr
	slog.SetDefault(slog.New(tint.NewHandler(logW, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.StampMilli,
		NoColor:    !isatty.IsTerminal(logW.Fd()),
	})))
}

func main() {
	var verbose bool
	var preview int
	var historyFile string
	config := func() printer.Config {
		return printer.Config{Readably: true, MaxSeqLength: preview}
	}

	app := &cli.App{
		Name:  "irange",
		Usage: "integer ranges with constant-time queries",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "verbose output (includes debug)",
				Destination: &verbose,
			},
			&cli.IntFlag{
				Name:        "preview",
				Aliases:     []string{"p"},
				Usage:       "number of leading elements shown when printing a range",
				Value:       printer.DefaultMaxSeqLength,
				Destination: &preview,
			},
		},
		Before: func(_ *cli.Context) error {
			setupLogger(verbose)
			return nil
		},
		Action: func(_ *cli.Context) error {
			return runDemo(os.Stdout, config())
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "walk through example ranges",
				Action: func(_ *cli.Context) error {
					return runDemo(os.Stdout, config())
				},
			},
			{
				Name:      "eval",
				Usage:     "evaluate expressions and print their results",
				ArgsUsage: "EXPR...",
				Action: func(c *cli.Context) error {
					env := core.BuildEnv(config())
					for _, expr := range c.Args().Slice() {
						out, err := rep(env, config(), expr)
						if err != nil {
							return errors.Wrapf(err, "failed to evaluate %s", expr)
						}
						fmt.Fprintln(os.Stdout, out)
					}
					return nil
				},
			},
			{
				Name:  "repl",
				Usage: "read, evaluate and print interactively",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "history",
						Usage:       "history file",
						Value:       filepath.Join(os.TempDir(), ".irange-history"),
						Destination: &historyFile,
					},
				},
				Action: func(_ *cli.Context) error {
					return interactiveRepl(core.BuildEnv(config()), config(), historyFile)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed", "err", err.Error())
		os.Exit(1)
	}
}
