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

package eval

import "github.com/mdrkn/galaxy-interpreter/expr"

// Eval reduces n to full normal form: every sub-expression reachable
// without crossing an unresolved combinator arity is reduced, not just the
// head. Reduction is cached on n's memo cell (invariant I1 of the data
// model), so evaluating the same shared sub-term twice is free the second
// time.
func Eval(cache *expr.Cache, env Env, n *expr.Node) (*expr.Node, error) {
	if m := n.Memo(); m != nil {
		return m, nil
	}

	w, err := whnf(cache, env, n)
	if err != nil {
		return nil, err
	}

	var result *expr.Node
	if w.IsAtom() {
		result = w
	} else {
		fn, err := Eval(cache, env, w.Fn())
		if err != nil {
			return nil, err
		}
		arg, err := Eval(cache, env, w.Arg())
		if err != nil {
			return nil, err
		}
		if fn == w.Fn() && arg == w.Arg() {
			result = w
		} else {
			result = expr.App(fn, arg)
		}
	}

	n.SetMemo(result)
	if result != n && result.Memo() == nil {
		result.SetMemo(result)
	}
	return result, nil
}

// whnf reduces n to weak head normal form: far enough to know the head
// combinator and whether it has enough arguments to fire, but no further
// than that. Strict positions are forced as reduce demands them, not
// eagerly: arithmetic and eq/lt operands to full normal form, isnil's
// argument to weak head normal form.
func whnf(cache *expr.Cache, env Env, n *expr.Node) (*expr.Node, error) {
	cur := n
	for {
		head, args := spine(cur) // head is always an atom; spine stops at the first non-App node

		if head.Atom().Tag == expr.TagVar {
			bound, ok := env.Lookup(head.Atom().Var)
			if !ok {
				return nil, &EvalError{Kind: UnboundVar, Detail: head.Atom().String()}
			}
			cur = rewrap(bound, args)
			continue
		}

		replacement, consumed, err := reduce(cache, env, head.Atom(), args)
		if err != nil {
			return nil, err
		}
		if replacement == nil {
			return cur, nil
		}
		cur = rewrap(replacement, args[consumed:])
	}
}

// spine walks n's chain of App.Fn links, collecting the applied arguments in
// application order, and returns the non-App node at the bottom of the
// chain together with those arguments.
func spine(n *expr.Node) (*expr.Node, []*expr.Node) {
	var rev []*expr.Node
	for n.Kind() == expr.KindApp {
		rev = append(rev, n.Arg())
		n = n.Fn()
	}
	args := make([]*expr.Node, len(rev))
	for i, a := range rev {
		args[len(rev)-1-i] = a
	}
	return n, args
}

// rewrap reapplies leftover arguments to base, left to right.
func rewrap(base *expr.Node, args []*expr.Node) *expr.Node {
	for _, a := range args {
		base = expr.App(base, a)
	}
	return base
}

// reduce attempts to fire the rule for head given args. It returns the
// expression that replaces head applied to args[:consumed], or a nil
// expression if head does not yet have enough arguments (or carries no
// reduction rule at all), in which case args[:consumed] is meaningless and
// whnf stops.
func reduce(cache *expr.Cache, env Env, head expr.Atom, args []*expr.Node) (*expr.Node, int, error) {
	tag := head.Tag
	arity := arityOf(tag)
	if arity < 0 || len(args) < arity {
		return nil, 0, nil
	}

	switch tag {
	case expr.TagI:
		return args[0], 1, nil
	case expr.TagNil:
		return cache.True(), 1, nil
	case expr.TagNeg:
		v, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		return cache.Int(-v), 1, nil
	case expr.TagInc:
		v, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		return cache.Int(v + 1), 1, nil
	case expr.TagDec:
		v, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		return cache.Int(v - 1), 1, nil
	case expr.TagCar:
		return expr.App(args[0], cache.True()), 1, nil
	case expr.TagCdr:
		return expr.App(args[0], cache.False()), 1, nil
	case expr.TagIsNil:
		isNil, err := classifyList(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		if isNil {
			return cache.True(), 1, nil
		}
		return cache.False(), 1, nil
	case expr.TagBool:
		// ap ap t x y = x, ap ap f x y = y (t doubles as K).
		if head.Bool {
			return args[0], 2, nil
		}
		return args[1], 2, nil
	case expr.TagAdd:
		a, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		b, err := forceInt(cache, env, args[1])
		if err != nil {
			return nil, 0, err
		}
		return cache.Int(a + b), 2, nil
	case expr.TagMul:
		a, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		b, err := forceInt(cache, env, args[1])
		if err != nil {
			return nil, 0, err
		}
		return cache.Int(a * b), 2, nil
	case expr.TagDiv:
		a, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		b, err := forceInt(cache, env, args[1])
		if err != nil {
			return nil, 0, err
		}
		if b == 0 {
			return nil, 0, &EvalError{Kind: DivByZero}
		}
		return cache.Int(a / b), 2, nil
	case expr.TagLt:
		a, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		b, err := forceInt(cache, env, args[1])
		if err != nil {
			return nil, 0, err
		}
		return boolNode(cache, a < b), 2, nil
	case expr.TagEq:
		a, err := forceInt(cache, env, args[0])
		if err != nil {
			return nil, 0, err
		}
		b, err := forceInt(cache, env, args[1])
		if err != nil {
			return nil, 0, err
		}
		return boolNode(cache, a == b), 2, nil
	case expr.TagS:
		x, y, z := args[0], args[1], args[2]
		return expr.App(expr.App(x, z), expr.App(y, z)), 3, nil
	case expr.TagC:
		x, y, z := args[0], args[1], args[2]
		return expr.App(expr.App(x, z), y), 3, nil
	case expr.TagB:
		x, y, z := args[0], args[1], args[2]
		return expr.App(x, expr.App(y, z)), 3, nil
	case expr.TagCons:
		x, y, z := args[0], args[1], args[2]
		return expr.App(expr.App(z, x), y), 3, nil
	}

	return nil, 0, nil
}

// arityOf reports how many applied arguments a combinator tag needs before
// reduce fires its rule, or -1 if the tag carries no reduction rule (Int,
// Var and Galaxy).
func arityOf(tag expr.Tag) int {
	switch tag {
	case expr.TagI, expr.TagNeg, expr.TagInc, expr.TagDec, expr.TagCar, expr.TagCdr, expr.TagIsNil:
		return 1
	case expr.TagBool, expr.TagAdd, expr.TagMul, expr.TagDiv, expr.TagLt, expr.TagEq:
		return 2
	case expr.TagS, expr.TagC, expr.TagB, expr.TagCons:
		return 3
	case expr.TagNil:
		// Nil doubles as a value (empty list) and, per spec.md §4.4, as a
		// function: ap nil x = t.
		return 1
	default:
		return -1
	}
}

// forceInt fully evaluates n and requires the result to be an Int atom.
func forceInt(cache *expr.Cache, env Env, n *expr.Node) (int64, error) {
	v, err := Eval(cache, env, n)
	if err != nil {
		return 0, err
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, &EvalError{Kind: TypeMismatch, Detail: "expected Int, got " + v.String()}
	}
	return i, nil
}

// classifyList reduces n to weak head normal form and reports whether it is
// the empty list. Any shape other than Nil or a two-argument Cons
// application is a type error: isnil expects a list.
func classifyList(cache *expr.Cache, env Env, n *expr.Node) (bool, error) {
	w, err := whnf(cache, env, n)
	if err != nil {
		return false, err
	}
	head, args := spine(w)
	if head.IsAtom() && head.Atom().Tag == expr.TagNil && len(args) == 0 {
		return true, nil
	}
	if head.IsAtom() && head.Atom().Tag == expr.TagCons && len(args) == 2 {
		return false, nil
	}
	return false, &EvalError{Kind: TypeMismatch, Detail: "expected list, got " + w.String()}
}

func boolNode(cache *expr.Cache, v bool) *expr.Node {
	if v {
		return cache.True()
	}
	return cache.False()
}
