// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

// OpTable maps a single-character infix operator to its precedence.
// A higher value binds tighter. The table is populated once at
// startup and never modified during a parse.
type OpTable map[rune]int

// DefaultOps returns the standard binary operator table.
// 1 is the lowest precedence.
func DefaultOps() OpTable {
	return OpTable{
		'<': 10,
		'+': 20,
		'-': 20,
		'*': 40, // highest
	}
}

// Precedence returns the binding strength of the operator c, or -1 if
// c is not an infix operator. An entry that is absent or non-positive
// is equivalent to "not an operator".
func (t OpTable) Precedence(c rune) int {
	if p := t[c]; p > 0 {
		return p
	}
	return -1
}
