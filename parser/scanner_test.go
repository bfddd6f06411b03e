// Copyright 2026 The Kal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"strings"
	"testing"

	"github.com/kallang/kal/syntax/token"
)

type scannerTest struct {
	input   string
	token   token.Token
	literal interface{}
}

var scannerTests = []scannerTest{
	{"foo", token.Ident, "foo"},
	{"x9", token.Ident, "x9"},
	{"def", token.Def, nil},
	{"extern", token.Extern, nil},
	{"defn", token.Ident, "defn"},
	{"9", token.Number, 9.0},
	{"4.62", token.Number, 4.62},
	{".5", token.Number, 0.5},
	{"+", token.Punct, '+'},
	{"-", token.Punct, '-'},
	{"*", token.Punct, '*'},
	{"<", token.Punct, '<'},
	{"(", token.Punct, '('},
	{")", token.Punct, ')'},
	{",", token.Punct, ','},
	{";", token.Punct, ';'},
	{"#", token.Punct, '#'},
}

func TestScannerSep(t *testing.T) {
	for _, test := range scannerTests {
		s := NewScanner(strings.NewReader(test.input))
		s.Next()
		if s.Token != test.token {
			t.Errorf("%q: got %s, want %s", test.input, s.Token, test.token)
			continue
		}
		if s.Literal != test.literal {
			t.Errorf("%q literal: got %v, want %v", test.input, s.Literal, test.literal)
			continue
		}
		s.Next()
		if s.Token != token.EOF {
			t.Errorf("%q: expected eof, got %s", test.input, s.Token)
		}
	}
}

func TestScannerJoin(t *testing.T) {
	var input []string
	for _, test := range scannerTests {
		input = append(input, test.input)
	}
	s := NewScanner(strings.NewReader(strings.Join(input, " ")))
	for _, test := range scannerTests {
		s.Next()
		if s.Token != test.token {
			t.Errorf("%q: got %s, want %s", test.input, s.Token, test.token)
		}
		if s.Literal != test.literal {
			t.Errorf("%q literal: got %v, want %v", test.input, s.Literal, test.literal)
		}
	}
	s.Next()
	if s.Token != token.EOF {
		t.Errorf("expected eof after all tokens, got %s", s.Token)
	}
}

func TestScannerLiteralSlotReuse(t *testing.T) {
	s := NewScanner(strings.NewReader("foo 9 +"))
	s.Next()
	if s.Literal != "foo" {
		t.Fatalf("got %v, want foo", s.Literal)
	}
	s.Next()
	if s.Literal != 9.0 {
		t.Fatalf("slot not overwritten: got %v, want 9", s.Literal)
	}
	s.Next()
	if s.Literal != '+' {
		t.Fatalf("slot not overwritten: got %v, want '+'", s.Literal)
	}
}

// A [0-9.]+ run with more than one dot is lexed whole and rejected at
// conversion.
func TestScannerBadNumber(t *testing.T) {
	s := NewScanner(strings.NewReader("1.2.3 foo"))
	s.Next()
	if s.Token != token.Unknown {
		t.Fatalf("got %s, want unknown", s.Token)
	}
	err := s.Err()
	if err == nil {
		t.Fatal("expected scanner error for multi-dot literal")
	}
	if !strings.Contains(err.Error(), `bad number literal: "1.2.3"`) {
		t.Errorf("unexpected error text: %v", err)
	}
	s.Next()
	if s.Token != token.Ident || s.Literal != "foo" {
		t.Errorf("scanner did not resume after bad literal: %s %v", s.Token, s.Literal)
	}
	if s.Err() != nil {
		t.Errorf("error not cleared on next token: %v", s.Err())
	}
}

// Each bad literal carries its own error; the slot does not stick to
// the first one.
func TestScannerBadNumberTwice(t *testing.T) {
	s := NewScanner(strings.NewReader("1.2.3 x 4.5.6"))

	s.Next()
	if s.Token != token.Unknown || s.Err() == nil {
		t.Fatalf("first literal: got %s, err %v", s.Token, s.Err())
	}
	if !strings.Contains(s.Err().Error(), `"1.2.3"`) {
		t.Errorf("first error: got %v", s.Err())
	}

	s.Next()
	if s.Token != token.Ident || s.Err() != nil {
		t.Fatalf("good token between: got %s, err %v", s.Token, s.Err())
	}

	s.Next()
	if s.Token != token.Unknown || s.Err() == nil {
		t.Fatalf("second literal: got %s, err %v", s.Token, s.Err())
	}
	err, ok := s.Err().(*Error)
	if !ok {
		t.Fatalf("second error: got %T", s.Err())
	}
	if !strings.Contains(err.Msg, `"4.5.6"`) {
		t.Errorf("second error names the wrong literal: %v", err)
	}
	if err.Offset != 8 {
		t.Errorf("second error offset: got %d, want 8", err.Offset)
	}
}

func TestScannerEOF(t *testing.T) {
	s := NewScanner(strings.NewReader("   \n\t "))
	for i := 0; i < 3; i++ {
		s.Next()
		if s.Token != token.EOF {
			t.Fatalf("call %d: got %s, want eof", i, s.Token)
		}
	}
}

func TestScannerLine(t *testing.T) {
	s := NewScanner(strings.NewReader("a\nb\n\nc"))
	want := []struct {
		lit  string
		line int
	}{{"a", 1}, {"b", 2}, {"c", 4}}
	for _, w := range want {
		s.Next()
		if s.Literal != w.lit || s.Line != w.line {
			t.Errorf("got %v line %d, want %s line %d", s.Literal, s.Line, w.lit, w.line)
		}
	}
}

func TestScannerOffset(t *testing.T) {
	s := NewScanner(strings.NewReader("ab + cd"))
	offsets := []int{0, 3, 5}
	for _, want := range offsets {
		s.Next()
		if s.Offset != want {
			t.Errorf("%s: got offset %d, want %d", s.Token, s.Offset, want)
		}
	}
}
