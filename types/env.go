package types

import (
	"fmt"

	"github.com/benbjohnson/immutable"
)

// Env binds symbols to values
type Env struct {
	Outer    *Env
	Bindings *immutable.Map
}

// Undefined errors
type Undefined struct {
	Name string
}

func (err Undefined) Error() string {
	return fmt.Sprintf("'%v' not found", err.Name)
}

// BuildEnv builds a new env
func BuildEnv() *Env {
	return &Env{Bindings: immutable.NewMap(hasher{})}
}

// DeriveEnv derives an env whose lookups fall through to outer
func DeriveEnv(outer *Env) *Env {
	env := BuildEnv()
	env.Outer = outer
	return env
}

// Set sets the value of a symbol
func (env *Env) Set(name string, value Value) {
	env.Bindings = env.Bindings.Set(NewSymbol(name), value)
}

// Get gets the value of a symbol
func (env *Env) Get(name string) (Value, error) {
	value, found := env.Bindings.Get(NewSymbol(name))
	if !found {
		if env.Outer == nil {
			return nil, Undefined{Name: name}
		}
		return env.Outer.Get(name)
	}
	return value, nil
}

// Names lists the symbols bound directly in this env
func (env *Env) Names() []string {
	names := make([]string, 0, env.Bindings.Len())
	itr := env.Bindings.Iterator()
	for !itr.Done() {
		k, _ := itr.Next()
		names = append(names, k.(Symbol).Name)
	}
	return names
}
