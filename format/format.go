// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format renders Kaleidoscope syntax trees as source-like
// text. Binary expressions are printed fully parenthesized so the
// tree structure is unambiguous.
package format

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/kallang/kal/syntax/decl"
	"github.com/kallang/kal/syntax/expr"
)

type printer struct {
	buf *bytes.Buffer
}

func (p *printer) expr(e expr.Expr) {
	switch e := e.(type) {
	case *expr.Number:
		p.buf.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *expr.Variable:
		p.buf.WriteString(e.Name)
	case *expr.Binary:
		p.buf.WriteByte('(')
		p.expr(e.Left)
		p.buf.WriteByte(' ')
		p.buf.WriteRune(e.Op)
		p.buf.WriteByte(' ')
		p.expr(e.Right)
		p.buf.WriteByte(')')
	case *expr.Call:
		p.buf.WriteString(e.Callee)
		p.buf.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.expr(arg)
		}
		p.buf.WriteByte(')')
	default:
		fmt.Fprintf(p.buf, "format: unknown expr %T", e)
	}
}

func (p *printer) proto(pr *decl.Prototype) {
	p.buf.WriteString(pr.Name)
	p.buf.WriteByte('(')
	for i, name := range pr.Params {
		if i > 0 {
			p.buf.WriteByte(' ')
		}
		p.buf.WriteString(name)
	}
	p.buf.WriteByte(')')
}

// WriteExpr writes the rendering of e to buf.
func WriteExpr(buf *bytes.Buffer, e expr.Expr) {
	p := &printer{buf: buf}
	p.expr(e)
}

// Expr renders an expression.
func Expr(e expr.Expr) string {
	buf := new(bytes.Buffer)
	WriteExpr(buf, e)
	return buf.String()
}

// Proto renders a prototype as "name(a b c)".
func Proto(pr *decl.Prototype) string {
	buf := new(bytes.Buffer)
	p := &printer{buf: buf}
	p.proto(pr)
	return buf.String()
}

// Func renders a function definition. The anonymous wrapper around a
// bare top-level expression renders as the expression itself.
func Func(f *decl.Function) string {
	if f.Proto == nil || f.Proto.Name == "" && len(f.Proto.Params) == 0 {
		return Expr(f.Body)
	}
	buf := new(bytes.Buffer)
	buf.WriteString("def ")
	p := &printer{buf: buf}
	p.proto(f.Proto)
	buf.WriteByte(' ')
	p.expr(f.Body)
	return buf.String()
}
