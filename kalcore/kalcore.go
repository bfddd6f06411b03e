// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kalcore drives the Kaleidoscope front end: it reads one
// top-level construct at a time, dispatches to the parser, reports
// the outcome, and recovers from syntax errors.
//
// This package is designed for embedding the front end into a
// program; the kal command wires it to a terminal.
package kalcore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kallang/kal/format"
	"github.com/kallang/kal/parser"
	"github.com/kallang/kal/syntax/token"
)

// DefaultPrompt is emitted per loop iteration.
const DefaultPrompt = "ready> "

// Session is one driver session. Sessions are independent; a Session
// is driven by a single goroutine.
type Session struct {
	// Out receives prompts, success notices, and error notices.
	// Defaults to os.Stderr, as in a terminal interpreter loop.
	Out io.Writer

	// Prompt overrides DefaultPrompt when non-empty.
	Prompt string

	// Ops is the operator table for the session, fixed at startup.
	// Defaults to parser.DefaultOps().
	Ops parser.OpTable

	// MaxDepth overrides the parser's expression nesting limit.
	// 0 keeps the default, negative disables the guard.
	MaxDepth int

	// Trace, when set, receives a rendering of each successfully
	// parsed construct.
	Trace io.Writer
}

// NewSession returns a Session with default settings.
func NewSession() *Session {
	return &Session{
		Out:    os.Stderr,
		Prompt: DefaultPrompt,
		Ops:    parser.DefaultOps(),
	}
}

func (s *Session) out() io.Writer {
	if s.Out == nil {
		return os.Stderr
	}
	return s.Out
}

func (s *Session) prompt() string {
	if s.Prompt == "" {
		return DefaultPrompt
	}
	return s.Prompt
}

func (s *Session) newParser(src io.Reader) *parser.Parser {
	ops := s.Ops
	if ops == nil {
		ops = parser.DefaultOps()
	}
	p := parser.NewWithTable(src, ops)
	if s.MaxDepth != 0 {
		p.SetMaxDepth(s.MaxDepth)
	}
	return p
}

// Run drives the interpreter loop over src until end of input.
// The prompt is emitted before the first read and again after every
// construct; an empty source produces a single prompt and no
// diagnostics.
func (s *Session) Run(src io.Reader) {
	// Prompt first: constructing the parser reads the first rune,
	// which blocks on an interactive source.
	fmt.Fprint(s.out(), s.prompt())
	p := s.newParser(src)
	p.Next() // prime the first token
	for p.Current() != token.EOF {
		s.dispatch(p)
		fmt.Fprint(s.out(), s.prompt())
	}
}

// Exec parses every construct in one chunk of input, without
// emitting prompts. It serves interactive use, where the line editor
// owns the prompt.
func (s *Session) Exec(line []byte) {
	p := s.newParser(bytes.NewReader(line))
	p.Next()
	for p.Current() != token.EOF {
		s.dispatch(p)
	}
}

// dispatch consumes one top-level construct. On a parse failure it
// reports the error once and advances exactly one token, so malformed
// input cannot stall the loop.
func (s *Session) dispatch(p *parser.Parser) {
	switch {
	case p.Punct() == ';':
		p.Next() // ignore top-level semicolons
	case p.Current() == token.Def:
		fn, err := p.ParseDefinition()
		if err != nil {
			s.recover(p, err)
			return
		}
		fmt.Fprintln(s.out(), "Parsed a function definition.")
		s.trace(format.Func(fn))
	case p.Current() == token.Extern:
		proto, err := p.ParseExtern()
		if err != nil {
			s.recover(p, err)
			return
		}
		fmt.Fprintln(s.out(), "Parsed an extern")
		s.trace("extern " + format.Proto(proto))
	default:
		fn, err := p.ParseTopLevelExpr()
		if err != nil {
			s.recover(p, err)
			return
		}
		fmt.Fprintln(s.out(), "Parsed a top-level expr")
		s.trace(format.Func(fn))
	}
}

func (s *Session) recover(p *parser.Parser, err error) {
	fmt.Fprintf(s.out(), "Error: %s\n", Message(err))
	p.Next() // skip one token for error recovery
}

func (s *Session) trace(text string) {
	if s.Trace != nil {
		fmt.Fprintln(s.Trace, text)
	}
}

// Message returns the bare diagnostic text of a syntax error, without
// the offset decoration parser.Error carries.
func Message(err error) string {
	var perr *parser.Error
	if errors.As(err, &perr) {
		return perr.Msg
	}
	return err.Error()
}
