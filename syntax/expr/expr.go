// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr defines data structures representing Kaleidoscope
// expressions.
//
// The node set is closed. Nodes are immutable once built; subtrees are
// exclusively owned by their parent and never shared.
package expr

// Expr is a Kaleidoscope expression node.
type Expr interface {
	expr()
}

// Number is a numeric literal like "1.0".
type Number struct {
	Value float64
}

// Variable references a named value, like "a".
type Variable struct {
	Name string
}

// Binary applies a single-character infix operator.
type Binary struct {
	Op    rune
	Left  Expr
	Right Expr
}

// Call applies a named function to ordered arguments.
type Call struct {
	Callee string
	Args   []Expr
}

func (e *Number) expr()   {}
func (e *Variable) expr() {}
func (e *Binary) expr()   {}
func (e *Call) expr()     {}
