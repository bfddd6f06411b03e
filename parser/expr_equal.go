// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"fmt"

	"github.com/kallang/kal/format"
	"github.com/kallang/kal/syntax/decl"
	"github.com/kallang/kal/syntax/expr"
)

// EqualExpr reports whether x and y are structurally identical trees.
func EqualExpr(x, y expr.Expr) bool {
	if x == nil && y == nil {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	switch x := x.(type) {
	case *expr.Number:
		y, ok := y.(*expr.Number)
		if !ok {
			return false
		}
		return x.Value == y.Value
	case *expr.Variable:
		y, ok := y.(*expr.Variable)
		if !ok {
			return false
		}
		return x.Name == y.Name
	case *expr.Binary:
		y, ok := y.(*expr.Binary)
		if !ok {
			return false
		}
		return x.Op == y.Op && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *expr.Call:
		y, ok := y.(*expr.Call)
		if !ok {
			return false
		}
		if x.Callee != y.Callee || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !EqualExpr(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// EqualProto reports whether x and y declare the same signature.
func EqualProto(x, y *decl.Prototype) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if x.Name != y.Name || len(x.Params) != len(y.Params) {
		return false
	}
	for i := range x.Params {
		if x.Params[i] != y.Params[i] {
			return false
		}
	}
	return true
}

// EqualFunc reports whether x and y are identical definitions.
func EqualFunc(x, y *decl.Function) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return EqualProto(x.Proto, y.Proto) && EqualExpr(x.Body, y.Body)
}

// DiffExpr renders a want/got pair for test failure messages.
func DiffExpr(want, got expr.Expr) string {
	return fmt.Sprintf("want: %s\ngot:  %s", format.Expr(want), format.Expr(got))
}

// DiffFunc is DiffExpr for function definitions.
func DiffFunc(want, got *decl.Function) string {
	return fmt.Sprintf("want: %s\ngot:  %s", format.Func(want), format.Func(got))
}
