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

// Package eval reduces expression graphs to normal form under the
// combinator rules of spec.md §4.3-4.4: lazy, normal-order, with
// shared-subterm memoisation via expr.Node's memo cell.
package eval

import "github.com/mdrkn/galaxy-interpreter/expr"

// Env resolves a variable reference to its bound expression. package parse's
// Protocol satisfies this structurally; eval never imports parse, so the two
// packages stay free of an import cycle.
type Env interface {
	Lookup(v uint64) (*expr.Node, bool)
}
