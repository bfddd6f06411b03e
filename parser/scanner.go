// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kallang/kal/syntax/token"
)

// NewScanner returns a Scanner reading tokens from src.
// The source is consumed strictly in order, one rune of lookahead,
// never rewound.
func NewScanner(src io.Reader) *Scanner {
	s := &Scanner{src: bufio.NewReader(src), Line: 1}
	s.next()
	return s
}

// Scanner turns a character stream into kal tokens.
type Scanner struct {
	// Current token
	Line    int
	Offset  int
	Token   token.Token
	Literal interface{} // string (Ident), float64 (Number), rune (Punct)

	// Scanner state
	src *bufio.Reader
	r   rune // lookahead, -1 once the source is exhausted
	pos int  // byte offset of r
	off int  // byte offset just past r
	err error
}

// Err reports the error attached to the current token, if any.
// The slot is cleared on every call to Next, so each bad token
// produces its own error.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) errorf(format string, a ...interface{}) {
	s.err = &Error{Offset: s.Offset, Msg: fmt.Sprintf(format, a...)}
}

func (s *Scanner) next() {
	if s.r == '\n' {
		s.Line++
	}
	s.pos = s.off
	r, w, err := s.src.ReadRune()
	if err != nil {
		s.r = -1
		return
	}
	s.r = r
	s.off += w
}

func (s *Scanner) skipWhitespace() {
	for s.r == ' ' || s.r == '\t' || s.r == '\n' || s.r == '\r' {
		s.next()
	}
}

func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }
func isDigit(r rune) bool  { return '0' <= r && r <= '9' }

func (s *Scanner) scanIdentifier() string {
	var b strings.Builder
	for isLetter(s.r) || isDigit(s.r) {
		b.WriteRune(s.r)
		s.next()
	}
	return b.String()
}

func (s *Scanner) scanNumber() (token.Token, interface{}) {
	var b strings.Builder
	for isDigit(s.r) || s.r == '.' {
		b.WriteRune(s.r)
		s.next()
	}
	// The scan accepts any [0-9.]+ run, so text like "1.2.3" reaches
	// the conversion. Such literals are rejected here.
	str := b.String()
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		s.errorf("bad number literal: %q", str)
		return token.Unknown, nil
	}
	return token.Number, f
}

// Next scans the next token into the Token/Literal/Offset fields.
// The Literal slot is reused: a payload is valid only until the
// following call to Next.
func (s *Scanner) Next() {
	s.skipWhitespace()

	s.Literal = nil
	s.err = nil
	s.Offset = s.pos
	r := s.r
	switch {
	case isLetter(r):
		lit := s.scanIdentifier()
		if t := token.Keyword(lit); t != token.Unknown {
			s.Token = t
			return
		}
		s.Token = token.Ident
		s.Literal = lit
		return
	case isDigit(r) || r == '.':
		s.Token, s.Literal = s.scanNumber()
		return
	}

	if r == -1 {
		s.Token = token.EOF
		return
	}
	s.next()
	s.Token = token.Punct
	s.Literal = r
}
