// seehuhn.de/go/graphview - an interactive function plotting surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cogentcore/yaegi/interp"
	"github.com/cogentcore/yaegi/stdlib"

	"seehuhn.de/go/graphview"
)

var (
	errEmptyExpr   = errors.New("empty function expression")
	errNotFunction = errors.New("not a func(float64) float64")
)

// Compiler turns function expressions into [graphview.Function] values.
// All functions compiled by one Compiler share a single interpreter.
//
// A Compiler is not safe for concurrent use.
type Compiler struct {
	in *interp.Interpreter
	n  int // number of functions defined so far
}

// NewCompiler returns a Compiler with the math package imported.
func NewCompiler() (*Compiler, error) {
	in := interp.New(interp.Options{})
	if err := in.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	if _, err := in.Eval(`import "math"`); err != nil {
		return nil, err
	}
	return &Compiler{in: in}, nil
}

// Compile turns a function expression into a [graphview.Function].
//
// The source is either a function literal like
//
//	func(x float64) float64 { return math.Sin(x) / x }
//
// or an expression in the variable x, like "math.Sin(x) / x".
func (c *Compiler) Compile(src string) (graphview.Function, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, errEmptyExpr
	}
	code := src
	if !strings.HasPrefix(code, "func") {
		code = "func(x float64) float64 { return " + code + " }"
	}

	// The value of a bare function literal comes back as an interface
	// pointer; a named variable evaluates to the function itself.
	c.n++
	name := fmt.Sprintf("curve%d", c.n)
	if _, err := c.in.Eval("var " + name + " = " + code); err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	v, err := c.in.Eval(name)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, fmt.Errorf("%q: %w", src, errNotFunction)
	}
	fn, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, fmt.Errorf("%q: %w", src, errNotFunction)
	}
	return fn, nil
}

// Compile compiles a single function expression, using a fresh
// [Compiler].
func Compile(src string) (graphview.Function, error) {
	c, err := NewCompiler()
	if err != nil {
		return nil, err
	}
	return c.Compile(src)
}
