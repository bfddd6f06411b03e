// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decl defines the top-level declarations of the Kaleidoscope
// language: function prototypes and function definitions.
package decl

import "github.com/kallang/kal/syntax/expr"

// Prototype captures a function's name and its ordered parameter
// names, and so implicitly the number of arguments it takes.
// Parameter names are not required to be unique.
type Prototype struct {
	Name   string
	Params []string
}

// Function is a function definition: a prototype and the expression
// that is its body. A bare top-level expression is represented as a
// Function whose prototype has an empty name and no parameters.
type Function struct {
	Proto *Prototype
	Body  expr.Expr
}
