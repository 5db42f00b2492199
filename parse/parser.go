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

package parse

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mdrkn/galaxy-interpreter/expr"
	"github.com/mdrkn/galaxy-interpreter/token"
)

// parser holds the mutable state of one recursive-descent pass. exp is
// prefix-applicative: "ap f x" reads two sub-expressions and never needs
// more than one token of lookahead, so the parser simply pulls tokens from
// the lexer as each grammar rule demands them (spec.md §4.2).
type parser struct {
	lex   *token.Lexer
	cache *expr.Cache
}

func (p *parser) next() (token.Token, error) {
	tok, err := p.lex.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return token.Token{}, io.EOF
		}
		return token.Token{}, errors.Wrap(err, "parse: lex failed")
	}
	return tok, nil
}

// expect consumes the next token and requires it to have kind k.
func (p *parser) expect(k token.Kind) (token.Token, error) {
	tok, err := p.next()
	if err == io.EOF {
		return token.Token{}, &ParseError{Kind: UnexpectedEnd}
	}
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind != k {
		if k == token.KindAssign {
			return token.Token{}, &ParseError{Kind: MissingAssign, Line: tok.Line, Detail: "got " + tok.String()}
		}
		return token.Token{}, &ParseError{Kind: UnexpectedToken, Line: tok.Line, Detail: tok.String()}
	}
	return tok, nil
}

// exp ::= "ap" exp exp | atom_token
func (p *parser) parseExp() (*expr.Node, error) {
	tok, err := p.next()
	if err == io.EOF {
		return nil, &ParseError{Kind: UnexpectedEnd}
	}
	if err != nil {
		return nil, err
	}
	return p.parseExpFromToken(tok)
}

// Parse reads a full protocol file: a sequence of "Var = exp" bindings
// terminated by a final "galaxy = Var" line naming the entry point
// (spec.md §4.2, §6).
func Parse(r io.Reader, cache *expr.Cache) (*Protocol, error) {
	p := &parser{lex: token.New(r), cache: cache}
	bindings := make(map[uint64]*expr.Node)

	for {
		tok, err := p.next()
		if err == io.EOF {
			return nil, &ParseError{Kind: UnexpectedEnd, Detail: "missing entry point"}
		}
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case token.KindVar:
			if _, err := p.expect(token.KindAssign); err != nil {
				return nil, err
			}
			e, err := p.parseExp()
			if err != nil {
				return nil, err
			}
			bindings[tok.Var] = e
		case token.KindGalaxy:
			if _, err := p.expect(token.KindAssign); err != nil {
				return nil, err
			}
			entryTok, err := p.expect(token.KindVar)
			if err != nil {
				return nil, err
			}
			if trailing, err := p.next(); err != io.EOF {
				if err == nil {
					return nil, &ParseError{Kind: UnexpectedToken, Line: trailing.Line, Detail: "trailing input after entry point"}
				}
				return nil, err
			}
			return &Protocol{Bindings: bindings, Entry: entryTok.Var}, nil
		default:
			return nil, &ParseError{Kind: UnexpectedToken, Line: tok.Line, Detail: tok.String()}
		}
	}
}
