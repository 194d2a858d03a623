package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dball/irange/printer"
	"github.com/dball/irange/runtime"
	"github.com/dball/irange/types"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

func intList(items []types.Value) ([]int64, error) {
	ints := make([]int64, 0, len(items))
	for _, item := range items {
		i, valid := item.(types.Integer)
		if !valid {
			return ints, errors.Errorf("non-integer found: %v", item)
		}
		ints = append(ints, int64(i))
	}
	return ints, nil
}

func arity(name string, args []types.Value, n int) error {
	if len(args) != n {
		return errors.Errorf("%s requires %d arg(s), got %d", name, n, len(args))
	}
	return nil
}

func rangeArg(name string, value types.Value) (types.Range, error) {
	r, valid := value.(types.Range)
	if !valid {
		return r, errors.Errorf("%s requires a range, got %v", name, value)
	}
	return r, nil
}

// rangeAndInt unpacks the (op range integer) calling shape
func rangeAndInt(name string, args []types.Value) (types.Range, int64, error) {
	if err := arity(name, args, 2); err != nil {
		return types.Range{}, 0, err
	}
	r, err := rangeArg(name, args[0])
	if err != nil {
		return r, 0, err
	}
	n, valid := args[1].(types.Integer)
	if !valid {
		return r, 0, errors.Errorf("%s requires an integer, got %v", name, args[1])
	}
	return r, int64(n), nil
}

// Describe summarizes a range with grouped digits
func Describe(r types.Range) string {
	count := r.Count()
	if count == 0 {
		return fmt.Sprintf("%v: empty", r)
	}
	last, _ := r.Last()
	return fmt.Sprintf("%v: %s elements from %s to %s, sum %s", r,
		humanize.Comma(count), humanize.Comma(r.Start()), humanize.Comma(last), humanize.Comma(r.Sum()))
}

func fn(env *types.Env, name string, f func(...types.Value) (types.Value, error)) {
	env.Set(name, types.Function{Name: name, Fn: f})
}

// BuildEnv builds and returns a new environment with core vars
func BuildEnv(config printer.Config) *types.Env {
	env := types.BuildEnv()
	fn(env, "+", func(args ...types.Value) (types.Value, error) {
		ints, err := intList(args)
		if err != nil {
			return nil, err
		}
		var sum int64
		for _, i := range ints {
			sum += i
		}
		return types.Integer(sum), nil
	})
	fn(env, "-", func(args ...types.Value) (types.Value, error) {
		ints, err := intList(args)
		if err != nil {
			return nil, err
		}
		if len(ints) == 0 {
			return nil, errors.New("- requires at least 1 arg")
		}
		if len(ints) == 1 {
			return types.Integer(-ints[0]), nil
		}
		sum := ints[0]
		for _, i := range ints[1:] {
			sum -= i
		}
		return types.Integer(sum), nil
	})
	fn(env, "range", func(args ...types.Value) (types.Value, error) {
		ints, err := intList(args)
		if err != nil {
			return nil, err
		}
		return runtime.Range(ints...)
	})
	fn(env, "count", func(args ...types.Value) (types.Value, error) {
		if err := arity("count", args, 1); err != nil {
			return nil, err
		}
		coll, valid := args[0].(types.Counted)
		if !valid {
			return nil, errors.New("count requires a countable collection")
		}
		return types.Integer(coll.Count()), nil
	})
	fn(env, "sum", func(args ...types.Value) (types.Value, error) {
		if err := arity("sum", args, 1); err != nil {
			return nil, err
		}
		r, err := rangeArg("sum", args[0])
		if err != nil {
			return nil, err
		}
		return types.Integer(r.Sum()), nil
	})
	fn(env, "contains?", func(args ...types.Value) (types.Value, error) {
		r, n, err := rangeAndInt("contains?", args)
		if err != nil {
			return nil, err
		}
		return types.Boolean(r.Contains(n)), nil
	})
	fn(env, "index-of", func(args ...types.Value) (types.Value, error) {
		r, n, err := rangeAndInt("index-of", args)
		if err != nil {
			return nil, err
		}
		return types.Integer(r.IndexOf(n)), nil
	})
	fn(env, "nth", func(args ...types.Value) (types.Value, error) {
		r, n, err := rangeAndInt("nth", args)
		if err != nil {
			return nil, err
		}
		return runtime.Nth(r, n)
	})
	fn(env, "last", func(args ...types.Value) (types.Value, error) {
		if err := arity("last", args, 1); err != nil {
			return nil, err
		}
		r, err := rangeArg("last", args[0])
		if err != nil {
			return nil, err
		}
		return runtime.Last(r)
	})
	fn(env, "empty?", func(args ...types.Value) (types.Value, error) {
		if err := arity("empty?", args, 1); err != nil {
			return nil, err
		}
		coll, valid := args[0].(types.Counted)
		if !valid {
			return nil, errors.New("empty? requires a countable collection")
		}
		return types.Boolean(coll.Count() == 0), nil
	})
	fn(env, "take", func(args ...types.Value) (types.Value, error) {
		if err := arity("take", args, 2); err != nil {
			return nil, err
		}
		n, valid := args[0].(types.Integer)
		if !valid {
			return nil, errors.New("take requires an integer count")
		}
		r, err := rangeArg("take", args[1])
		if err != nil {
			return nil, err
		}
		ints, err := runtime.Take(r.Iterate(), int64(n))
		if err != nil {
			return nil, err
		}
		items := make([]types.Value, len(ints))
		for i, item := range ints {
			items[i] = types.Integer(item)
		}
		return types.NewList(items...), nil
	})
	fn(env, "drop", func(args ...types.Value) (types.Value, error) {
		if err := arity("drop", args, 2); err != nil {
			return nil, err
		}
		n, valid := args[0].(types.Integer)
		if !valid {
			return nil, errors.New("drop requires an integer count")
		}
		coll, valid := args[1].(types.Seqable)
		if !valid {
			return nil, errors.Errorf("drop requires a seqable collection, got %v", args[1])
		}
		return runtime.Drop(coll, int64(n))
	})
	fn(env, "names", func(args ...types.Value) (types.Value, error) {
		if err := arity("names", args, 0); err != nil {
			return nil, err
		}
		names := env.Names()
		sort.Strings(names)
		symbols := make([]types.Value, len(names))
		for i, name := range names {
			symbols[i] = types.NewSymbol(name)
		}
		return types.NewList(symbols...), nil
	})
	fn(env, "seq", func(args ...types.Value) (types.Value, error) {
		if err := arity("seq", args, 1); err != nil {
			return nil, err
		}
		r, err := rangeArg("seq", args[0])
		if err != nil {
			return nil, err
		}
		return runtime.IntoList(r)
	})
	fn(env, "=", func(args ...types.Value) (types.Value, error) {
		if len(args) == 0 {
			return nil, errors.New("= requires at least 1 arg")
		}
		for _, that := range args[1:] {
			if !types.Equals(args[0], that) {
				return types.Boolean(false), nil
			}
		}
		return types.Boolean(true), nil
	})
	fn(env, "hash", func(args ...types.Value) (types.Value, error) {
		if err := arity("hash", args, 1); err != nil {
			return nil, err
		}
		return types.Integer(types.Hash(args[0])), nil
	})
	fn(env, "str", func(args ...types.Value) (types.Value, error) {
		var sb strings.Builder
		plain := printer.Config{MaxSeqLength: config.MaxSeqLength}
		for _, arg := range args {
			sb.WriteString(printer.PrintStr(plain, arg))
		}
		return types.String(sb.String()), nil
	})
	fn(env, "describe", func(args ...types.Value) (types.Value, error) {
		if err := arity("describe", args, 1); err != nil {
			return nil, err
		}
		r, err := rangeArg("describe", args[0])
		if err != nil {
			return nil, err
		}
		return types.String(Describe(r)), nil
	})
	return env
}
