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

	"github.com/mdrkn/galaxy-interpreter/expr"
	"github.com/mdrkn/galaxy-interpreter/token"
)

// Equality is one "exp = exp" assertion from a test-suite file.
type Equality struct {
	Line int
	LHS  *expr.Node
	RHS  *expr.Node
}

// ParseTestSuite reads a sequence of "exp = exp" equalities (spec.md §4.2's
// test-suite production). Unlike a protocol file, a test-suite file has no
// entry point and no named bindings: each equality stands alone. This
// supplements the distilled spec, which defines the grammar production but
// never wires it to an operation (SPEC_FULL.md §5).
func ParseTestSuite(r io.Reader, cache *expr.Cache) ([]Equality, error) {
	p := &parser{lex: token.New(r), cache: cache}
	var out []Equality
	for {
		tok, err := p.next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		line := tok.Line
		lhs, err := p.parseExpFromToken(tok)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.KindAssign); err != nil {
			return nil, err
		}
		rhs, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		out = append(out, Equality{Line: line, LHS: lhs, RHS: rhs})
	}
}

// parseExpFromToken continues parsing an exp given its already-consumed
// first token, so ParseTestSuite can peek one token ahead to detect EOF
// without duplicating the grammar in parseExp.
func (p *parser) parseExpFromToken(tok token.Token) (*expr.Node, error) {
	switch tok.Kind {
	case token.KindApp:
		f, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		x, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		return expr.App(f, x), nil
	default:
		return p.atomFromToken(tok)
	}
}

func (p *parser) atomFromToken(tok token.Token) (*expr.Node, error) {
	switch tok.Kind {
	case token.KindInt:
		return p.cache.Int(tok.Int), nil
	case token.KindVar:
		return p.cache.Var(tok.Var), nil
	case token.KindBool:
		if tok.Bool {
			return p.cache.True(), nil
		}
		return p.cache.False(), nil
	case token.KindNil:
		return p.cache.Nil(), nil
	case token.KindCons:
		return p.cache.Combinator(expr.TagCons), nil
	case token.KindCar:
		return p.cache.Combinator(expr.TagCar), nil
	case token.KindCdr:
		return p.cache.Combinator(expr.TagCdr), nil
	case token.KindIsNil:
		return p.cache.Combinator(expr.TagIsNil), nil
	case token.KindEq:
		return p.cache.Combinator(expr.TagEq), nil
	case token.KindLt:
		return p.cache.Combinator(expr.TagLt), nil
	case token.KindAdd:
		return p.cache.Combinator(expr.TagAdd), nil
	case token.KindMul:
		return p.cache.Combinator(expr.TagMul), nil
	case token.KindDiv:
		return p.cache.Combinator(expr.TagDiv), nil
	case token.KindNeg:
		return p.cache.Combinator(expr.TagNeg), nil
	case token.KindInc:
		return p.cache.Combinator(expr.TagInc), nil
	case token.KindDec:
		return p.cache.Combinator(expr.TagDec), nil
	case token.KindB:
		return p.cache.Combinator(expr.TagB), nil
	case token.KindC:
		return p.cache.Combinator(expr.TagC), nil
	case token.KindS:
		return p.cache.Combinator(expr.TagS), nil
	case token.KindI:
		return p.cache.Combinator(expr.TagI), nil
	case token.KindGalaxy:
		return p.cache.Combinator(expr.TagGalaxy), nil
	default:
		return nil, &ParseError{Kind: UnexpectedToken, Line: tok.Line, Detail: tok.String()}
	}
}
