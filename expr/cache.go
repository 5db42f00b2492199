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

package expr

// Cache is a process-local mapping from Atom (excluding Int and Var) to a
// canonical shared Node, so that atom equality can be checked by pointer
// identity on hot paths and so that parsing/decoding the same protocol
// repeatedly does not grow memory unbounded. A Cache is mutated only while
// parsing, decoding or reducing; concurrent mutation is not supported (see
// spec.md §5). It is safe, and expected, to share one Cache across an
// entire parse + eval + codec session.
type Cache struct {
	atoms map[Atom]*Node

	// Pre-interned singletons for the atoms the evaluator constructs most
	// often, to avoid a map lookup on every reduction step.
	nilNode   *Node
	trueNode  *Node
	falseNode *Node
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	c := &Cache{atoms: make(map[Atom]*Node)}
	c.nilNode = c.Intern(Atom{Tag: TagNil})
	c.trueNode = c.Intern(Atom{Tag: TagBool, Bool: true})
	c.falseNode = c.Intern(Atom{Tag: TagBool, Bool: false})
	return c
}

// Intern returns the canonical Node for a, allocating and caching it on
// first use. Int and Var atoms are never cached: each call allocates a
// fresh Node, since their payload space is unbounded (data model §3).
func (c *Cache) Intern(a Atom) *Node {
	if !a.cacheable() {
		return &Node{kind: KindAtom, atom: a}
	}
	if n, ok := c.atoms[a]; ok {
		return n
	}
	n := &Node{kind: KindAtom, atom: a}
	n.memo = n // atoms are already in normal form.
	c.atoms[a] = n
	return n
}

// Nil returns the canonical Nil node.
func (c *Cache) Nil() *Node { return c.nilNode }

// True returns the canonical Bool(true)/K node.
func (c *Cache) True() *Node { return c.trueNode }

// False returns the canonical Bool(false) node.
func (c *Cache) False() *Node { return c.falseNode }

// Int returns a fresh (uninterned) Int node.
func (c *Cache) Int(v int64) *Node { return c.Intern(Atom{Tag: TagInt, Int: v}) }

// Var returns a fresh (uninterned) Var node.
func (c *Cache) Var(v uint64) *Node { return c.Intern(Atom{Tag: TagVar, Var: v}) }

// Combinator returns the canonical node for a fixed-arity combinator tag
// (anything other than Nil, Int, Var or Bool).
func (c *Cache) Combinator(tag Tag) *Node { return c.Intern(Atom{Tag: tag}) }
