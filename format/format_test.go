// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format_test

import (
	"strings"
	"testing"

	"github.com/kallang/kal/format"
	"github.com/kallang/kal/parser"
	"github.com/kallang/kal/syntax/decl"
	"github.com/kallang/kal/syntax/expr"
)

var exprTests = []struct {
	input string
	want  string
}{
	{"foo", "foo"},
	{"42", "42"},
	{"4.62", "4.62"},
	{"1+2*3", "(1 + (2 * 3))"},
	{"1-2-3", "((1 - 2) - 3)"},
	{"(1+2)*3", "((1 + 2) * 3)"},
	{"foo()", "foo()"},
	{"foo(1, x+1)", "foo(1, (x + 1))"},
}

func TestExpr(t *testing.T) {
	for _, test := range exprTests {
		e, err := parser.ParseExpr([]byte(test.input))
		if err != nil {
			t.Errorf("ParseExpr(%q): %v", test.input, err)
			continue
		}
		if got := format.Expr(e); got != test.want {
			t.Errorf("Expr(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestProto(t *testing.T) {
	got := format.Proto(&decl.Prototype{Name: "foo", Params: []string{"x", "y"}})
	if want := "foo(x y)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	got = format.Proto(&decl.Prototype{Name: "zero"})
	if want := "zero()"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFunc(t *testing.T) {
	f := &decl.Function{
		Proto: &decl.Prototype{Name: "foo", Params: []string{"x"}},
		Body:  &expr.Binary{Op: '+', Left: &expr.Variable{Name: "x"}, Right: &expr.Number{Value: 1}},
	}
	if got, want := format.Func(f), "def foo(x) (x + 1)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// The anonymous wrapper renders as its body.
	anon := &decl.Function{Proto: &decl.Prototype{}, Body: &expr.Number{Value: 7}}
	if got, want := format.Func(anon), "7"; got != want {
		t.Errorf("anonymous: got %q, want %q", got, want)
	}
}

func TestUnknownExpr(t *testing.T) {
	if got := format.Expr(nil); !strings.Contains(got, "unknown expr") {
		t.Errorf("got %q, want unknown expr marker", got)
	}
}
