// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical tokens of the Kaleidoscope language.
package token

import "fmt"

// Token is a kal lexical token.
//
// A token's payload (identifier name, number value, punctuation
// character) lives in the scanner's literal slot and is only valid
// until the next token is scanned.
type Token int

const (
	Unknown Token = iota
	EOF

	// Keywords

	Def    // def
	Extern // extern

	// Literals

	Ident  // E.g. fib
	Number // E.g. 10.01

	// Punct covers every remaining single character: operators,
	// delimiters, and the statement separator. The character itself
	// is the scanner's literal.
	Punct
)

var Keywords = map[string]Token{
	"def":    Def,
	"extern": Extern,
}

// Keyword returns the keyword token for n, or Unknown.
func Keyword(n string) Token {
	return Keywords[n]
}

var tokenStrings = map[Token]string{
	Unknown: "unknown",
	EOF:     "eof",
	Def:     "def",
	Extern:  "extern",
	Ident:   "ident",
	Number:  "number",
	Punct:   "punct",
}

func (t Token) String() string {
	if s := tokenStrings[t]; s != "" {
		return s
	}
	return fmt.Sprintf("Token:%d", int(t))
}
