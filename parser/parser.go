// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the lexer and the recursive-descent,
// precedence-climbing parser for the Kaleidoscope language.
package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/kallang/kal/syntax/decl"
	"github.com/kallang/kal/syntax/expr"
	"github.com/kallang/kal/syntax/token"
)

// DefaultMaxDepth bounds primary-expression nesting. Nesting is the
// only unbounded recursion in the grammar; the limit converts a
// pathological input into an ordinary syntax error instead of a
// stack overflow. 0 disables the guard.
const DefaultMaxDepth = 512

// New returns a Parser reading from src with the default operator
// table. The token cursor is not primed; call Next once before the
// first parse entry point.
func New(src io.Reader) *Parser {
	return NewWithTable(src, DefaultOps())
}

// NewWithTable is New with an explicit operator table.
func NewWithTable(src io.Reader, ops OpTable) *Parser {
	return &Parser{
		s:        NewScanner(src),
		ops:      ops,
		maxDepth: DefaultMaxDepth,
	}
}

// Parser holds one parse session: the scanner, the token cursor, and
// the operator table. It is not safe for concurrent use; separate
// sessions are fully independent.
type Parser struct {
	s        *Scanner
	ops      OpTable
	depth    int
	maxDepth int
}

// SetMaxDepth overrides the primary-expression nesting limit.
// n <= 0 disables the guard.
func (p *Parser) SetMaxDepth(n int) { p.maxDepth = n }

// Next advances the token cursor and returns the new current token.
func (p *Parser) Next() token.Token {
	p.s.Next()
	return p.s.Token
}

// Current returns the token the parser is looking at. Every parse
// entry point assumes the current token starts its construct and
// leaves the cursor one past it on success.
func (p *Parser) Current() token.Token { return p.s.Token }

// Punct returns the current punctuation character, or 0 if the
// current token is not punctuation.
func (p *Parser) Punct() rune {
	if p.s.Token == token.Punct {
		return p.s.Literal.(rune)
	}
	return 0
}

// Error is a syntax error: a grammar expectation violated at a single
// point of the input. A failed parse produces exactly one.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("kal: parser: %s (off %d)", e.Msg, e.Offset)
}

func (p *Parser) error(msg string) *Error {
	return &Error{Offset: p.s.Offset, Msg: msg}
}

func (p *Parser) errorf(format string, a ...interface{}) *Error {
	return p.error(fmt.Sprintf(format, a...))
}

// tokPrecedence returns the precedence of the current token as an
// infix operator, or -1.
func (p *Parser) tokPrecedence() int {
	if p.s.Token != token.Punct {
		return -1
	}
	return p.ops.Precedence(p.s.Literal.(rune))
}

// numberexpr ::= number
func (p *Parser) parseNumberExpr() (expr.Expr, error) {
	x := &expr.Number{Value: p.s.Literal.(float64)}
	p.Next()
	return x, nil
}

// parenexpr ::= '(' expression ')'
//
// The parentheses group only; no node is built for them.
func (p *Parser) parseParenExpr() (expr.Expr, error) {
	p.Next() // eat (
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.Punct() != ')' {
		return nil, p.error("expected ')'")
	}
	p.Next() // eat )
	return x, nil
}

// identifierexpr
//
//	::= identifier
//	::= identifier '(' expression* ')'
func (p *Parser) parseIdentifierExpr() (expr.Expr, error) {
	name := p.s.Literal.(string)
	p.Next() // eat identifier

	if p.Punct() != '(' { // simple variable ref
		return &expr.Variable{Name: name}, nil
	}

	p.Next() // eat (
	var args []expr.Expr
	if p.Punct() != ')' {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.Punct() == ')' {
				break
			}
			if p.Punct() != ',' {
				return nil, p.error("expected ')' or ',' in argument list")
			}
			p.Next() // eat ,
		}
	}
	p.Next() // eat )

	return &expr.Call{Callee: name, Args: args}, nil
}

// primary
//
//	::= identifierexpr
//	::= numberexpr
//	::= parenexpr
func (p *Parser) parsePrimary() (expr.Expr, error) {
	if p.maxDepth > 0 {
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > p.maxDepth {
			return nil, p.error("expression nesting too deep")
		}
	}

	switch p.s.Token {
	case token.Ident:
		return p.parseIdentifierExpr()
	case token.Number:
		return p.parseNumberExpr()
	case token.Punct:
		if p.s.Literal.(rune) == '(' {
			return p.parseParenExpr()
		}
	case token.Unknown:
		if err := p.s.Err(); err != nil {
			return nil, err
		}
	}
	return nil, p.error("unknown token when expecting an expression")
}

// binoprhs ::= (op primary)*
//
// Iterative precedence climbing: operators of equal precedence fold
// left; a tighter-binding suffix after the right operand is resolved
// first by recursing with a higher floor.
func (p *Parser) parseBinOpRHS(minPrec int, left expr.Expr) (expr.Expr, error) {
	for {
		prec := p.tokPrecedence()

		// Not an operator that binds at least as tightly as the
		// current floor: left is complete.
		if prec < minPrec {
			return left, nil
		}

		op := p.s.Literal.(rune)
		p.Next() // eat binop

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		// If the pending operator binds tighter, it takes right as
		// its left operand.
		if next := p.tokPrecedence(); prec < next {
			right, err = p.parseBinOpRHS(prec+1, right)
			if err != nil {
				return nil, err
			}
		}

		left = &expr.Binary{Op: op, Left: left, Right: right}
	}
}

// expression ::= primary binoprhs
func (p *Parser) parseExpression() (expr.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, left)
}

// prototype ::= id '(' id* ')'
//
// Parameter names are whitespace separated, without commas, unlike
// call arguments.
func (p *Parser) parsePrototype() (*decl.Prototype, error) {
	if p.s.Token != token.Ident {
		return nil, p.error("expected function name in prototype")
	}
	name := p.s.Literal.(string)
	p.Next()

	if p.Punct() != '(' {
		return nil, p.error("expected '(' in prototype")
	}

	var params []string
	for p.Next() == token.Ident {
		params = append(params, p.s.Literal.(string))
	}
	if p.Punct() != ')' {
		return nil, p.error("expected ')' in prototype")
	}
	p.Next() // eat )

	return &decl.Prototype{Name: name, Params: params}, nil
}

// ParseDefinition parses 'def' prototype expression.
func (p *Parser) ParseDefinition() (*decl.Function, error) {
	p.Next() // eat def
	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &decl.Function{Proto: proto, Body: body}, nil
}

// ParseExtern parses 'extern' prototype: a signature with no body.
func (p *Parser) ParseExtern() (*decl.Prototype, error) {
	p.Next() // eat extern
	return p.parsePrototype()
}

// ParseTopLevelExpr parses a bare expression, wrapped as an anonymous
// zero-parameter function so every top-level construct is a uniform
// shape.
func (p *Parser) ParseTopLevelExpr() (*decl.Function, error) {
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &decl.Function{Proto: &decl.Prototype{}, Body: body}, nil
}

// ParseExpr parses src as a single complete expression using the
// default operator table.
func ParseExpr(src []byte) (expr.Expr, error) {
	p := New(bytes.NewReader(src))
	p.Next()
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.Current() != token.EOF {
		return nil, p.errorf("unexpected %s after expression", p.s.Token)
	}
	return x, nil
}
