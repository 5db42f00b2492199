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

// Package codec implements the bit-signal wire format ("modulate" /
// "demodulate" in spec.md §4.3): a strictly bit-exact, whitespace-free
// encoding of values built from Nil, Int and Cons. There is no
// general-purpose library for this on the wire — it is bespoke to the
// protocol — so this package is built directly on the standard library
// (see DESIGN.md).
package codec

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/mdrkn/galaxy-interpreter/expr"
)

// ModulateInt encodes a single integer: two sign bits, a unary width
// prefix, then the magnitude MSB-first padded to the declared width
// (spec.md §4.3).
func ModulateInt(v int64) string {
	var sign string
	var mag uint64
	if v < 0 {
		sign = "10"
		mag = uint64(-v)
	} else {
		sign = "01"
		mag = uint64(v)
	}

	bitlen := bits.Len64(mag)
	n := (bitlen + 3) / 4
	width := 4 * n

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(strings.Repeat("1", n))
	b.WriteByte('0')
	if width > 0 {
		b.WriteString(padBinary(mag, width))
	}
	return b.String()
}

func padBinary(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// Modulate encodes n, which must be built only from Nil, Int and Cons
// atoms/applications (spec.md §4.3's domain restriction; any other shape,
// a bare combinator or an unresolved Var, is a BadTag error).
func Modulate(n *expr.Node) (string, error) {
	if n.IsNil() {
		return "00", nil
	}
	if v, ok := n.AsInt(); ok {
		return ModulateInt(v), nil
	}
	if car, cdr, ok := asCons(n); ok {
		carStr, err := Modulate(car)
		if err != nil {
			return "", err
		}
		cdrStr, err := Modulate(cdr)
		if err != nil {
			return "", err
		}
		return "11" + carStr + cdrStr, nil
	}
	return "", &CodecError{Kind: BadTag, Detail: n.String()}
}

// asCons reports whether n is a two-argument application of the Cons
// combinator, i.e. a constructed pair, and returns its two elements.
func asCons(n *expr.Node) (car, cdr *expr.Node, ok bool) {
	if n.Kind() != expr.KindApp || n.Fn().Kind() != expr.KindApp {
		return nil, nil, false
	}
	head := n.Fn().Fn()
	if !head.IsAtom() || head.Atom().Tag != expr.TagCons {
		return nil, nil, false
	}
	return n.Fn().Arg(), n.Arg(), true
}

// DemodulateFull decodes s in full and requires the entire string to be
// consumed; any remaining bits are TrailingInput.
func DemodulateFull(s string, cache *expr.Cache) (*expr.Node, error) {
	n, tail, err := demodulate(s, cache)
	if err != nil {
		return nil, err
	}
	if tail != "" {
		return nil, &CodecError{Kind: TrailingInput}
	}
	return n, nil
}

// demodulate decodes one value from the head of s and returns the
// unconsumed tail, per spec.md §4.3's decoder: a 2-bit tag selects Nil,
// Cons (two recursive reads) or an integer.
func demodulate(s string, cache *expr.Cache) (*expr.Node, string, error) {
	if len(s) < 2 {
		return nil, "", &CodecError{Kind: TruncatedInput}
	}
	switch s[:2] {
	case "00":
		n := cache.Nil()
		return n, s[2:], nil
	case "11":
		car, rest, err := demodulate(s[2:], cache)
		if err != nil {
			return nil, "", err
		}
		cdr, rest, err := demodulate(rest, cache)
		if err != nil {
			return nil, "", err
		}
		n := expr.App(expr.App(cache.Combinator(expr.TagCons), car), cdr)
		n.SetMemo(n) // demodulated values are already fully reduced (I3).
		return n, rest, nil
	case "01", "10":
		return demodulateInt(s, cache)
	default:
		return nil, "", &CodecError{Kind: BadTag, Detail: s[:2]}
	}
}

func demodulateInt(s string, cache *expr.Cache) (*expr.Node, string, error) {
	negative := s[:2] == "10"
	rest := s[2:]

	n := 0
	for n < len(rest) && rest[n] == '1' {
		n++
	}
	if n >= len(rest) {
		return nil, "", &CodecError{Kind: TruncatedInput}
	}
	rest = rest[n+1:] // skip the n one-bits and their terminating zero

	width := 4 * n
	if len(rest) < width {
		return nil, "", &CodecError{Kind: TruncatedInput}
	}

	var mag uint64
	if width > 0 {
		v, err := strconv.ParseUint(rest[:width], 2, 64)
		if err != nil {
			return nil, "", &CodecError{Kind: BadTag, Detail: "malformed integer magnitude"}
		}
		mag = v
	}
	rest = rest[width:]

	val := int64(mag)
	if negative {
		val = -val
	}
	node := cache.Int(val)
	node.SetMemo(node)
	return node, rest, nil
}
