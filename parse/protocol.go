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

// Package parse builds an expression graph from a token.Lexer and assembles
// the binding environment (Protocol) the evaluator runs against.
package parse

import "github.com/mdrkn/galaxy-interpreter/expr"

// Protocol is the read-only binding environment built once at load time: a
// mapping from variable identifier to its bound expression, plus the
// identifier of the entry point ("galaxy").
type Protocol struct {
	Bindings map[uint64]*expr.Node
	Entry    uint64
}

// Lookup implements eval.Env: it resolves a variable reference against the
// binding environment. Lookup never mutates the Protocol; it is read-only
// after construction (spec.md §5).
func (p *Protocol) Lookup(v uint64) (*expr.Node, bool) {
	n, ok := p.Bindings[v]
	return n, ok
}

// EntryExpr returns the bound expression for the protocol's entry point.
func (p *Protocol) EntryExpr() (*expr.Node, bool) {
	return p.Lookup(p.Entry)
}
