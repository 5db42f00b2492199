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

// Package expr is the in-memory representation of parsed and
// partially-reduced alien-language expressions: a binary application tree
// of interned Atoms, with a per-node memo cell for shared-subterm
// memoisation (see Node.Memo).
package expr

// Tag identifies the kind of value an Atom carries.
type Tag uint8

// Atom tags. Bool(true) doubles as the K combinator; there is no separate
// tag for K (data model invariant: they intern to the same Atom).
const (
	TagNil Tag = iota
	TagInt
	TagVar
	TagBool
	TagNeg
	TagInc
	TagDec
	TagAdd
	TagMul
	TagDiv
	TagEq
	TagLt
	TagS
	TagI
	TagB
	TagC
	TagCons
	TagCar
	TagCdr
	TagIsNil
	TagGalaxy
)

// Atom is a flat, hashable tag-and-payload leaf value. Two atoms with equal
// Tag/Int/Var/Bool fields are considered the same value and intern to one
// shared Node via a Cache (except Int and Var, which are unbounded and are
// never interned).
type Atom struct {
	Tag  Tag
	Int  int64
	Var  uint64
	Bool bool
}

// cacheable reports whether a is eligible for interning via a Cache. Int and
// Var payloads are unbounded, so every Int/Var atom gets its own Node.
func (a Atom) cacheable() bool {
	return a.Tag != TagInt && a.Tag != TagVar
}

func (a Atom) String() string {
	switch a.Tag {
	case TagNil:
		return "nil"
	case TagInt:
		return itoa(a.Int)
	case TagVar:
		return ":" + utoa(a.Var)
	case TagBool:
		if a.Bool {
			return "t"
		}
		return "f"
	case TagNeg:
		return "neg"
	case TagInc:
		return "inc"
	case TagDec:
		return "dec"
	case TagAdd:
		return "add"
	case TagMul:
		return "mul"
	case TagDiv:
		return "div"
	case TagEq:
		return "eq"
	case TagLt:
		return "lt"
	case TagS:
		return "s"
	case TagI:
		return "i"
	case TagB:
		return "b"
	case TagC:
		return "c"
	case TagCons:
		return "cons"
	case TagCar:
		return "car"
	case TagCdr:
		return "cdr"
	case TagIsNil:
		return "isnil"
	case TagGalaxy:
		return "galaxy"
	default:
		return "?"
	}
}
