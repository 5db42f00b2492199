// This file is part of galaxy-interpreter.
//
// Copyright 2020 The Galaxy Interpreter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LexError reports a word that does not map to any known token.
type LexError struct {
	Line int
	Word string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: unknown token %q", e.Line, e.Word)
}

// Lexer pulls tokens one at a time from a reader. Blank lines are ignored;
// each line is split on whitespace and every word maps to exactly one token.
type Lexer struct {
	scanner *bufio.Scanner
	words   []string
	line    int
}

// New returns a Lexer reading from r.
func New(r io.Reader) *Lexer {
	return &Lexer{scanner: bufio.NewScanner(r)}
}

// Next returns the next token in the stream. It returns io.EOF itself
// (unwrapped) once the stream is exhausted; read failures are wrapped.
func (l *Lexer) Next() (Token, error) {
	for len(l.words) == 0 {
		if !l.scanner.Scan() {
			if err := l.scanner.Err(); err != nil {
				return Token{}, errors.Wrap(err, "lex: read failed")
			}
			return Token{}, io.EOF
		}
		l.line++
		l.words = strings.Fields(l.scanner.Text())
	}
	w := l.words[0]
	l.words = l.words[1:]
	return l.tokenize(w, l.line)
}

func (l *Lexer) tokenize(w string, line int) (Token, error) {
	if k, ok := words[w]; ok {
		return Token{Kind: k, Line: line}, nil
	}
	switch w {
	case "t":
		return Token{Kind: KindBool, Line: line, Bool: true}, nil
	case "f":
		return Token{Kind: KindBool, Line: line, Bool: false}, nil
	}
	if n, err := strconv.ParseInt(w, 10, 64); err == nil {
		return Token{Kind: KindInt, Line: line, Int: n}, nil
	}
	if len(w) > 1 && (w[0] == ':' || w[0] == 'x') {
		if n, err := strconv.ParseUint(w[1:], 10, 64); err == nil {
			return Token{Kind: KindVar, Line: line, Var: n}, nil
		}
	}
	return Token{}, &LexError{Line: line, Word: w}
}

// All drains the lexer into a slice, for callers that prefer a materialized
// token sequence over pull-based iteration.
func All(r io.Reader) ([]Token, error) {
	l := New(r)
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, tok)
	}
}
