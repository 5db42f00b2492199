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

// Package token splits alien-language source text into a flat sequence of
// typed tokens. It performs no parsing: that is the job of package parse.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind uint8

// Token kinds.
const (
	KindApp Kind = iota
	KindCons
	KindCar
	KindCdr
	KindNil
	KindIsNil
	KindEq
	KindLt
	KindAdd
	KindMul
	KindDiv
	KindNeg
	KindInc
	KindDec
	KindB
	KindC
	KindS
	KindI
	KindGalaxy
	KindBool
	KindAssign
	KindInt
	KindVar
)

var words = map[string]Kind{
	"ap":     KindApp,
	"cons":   KindCons,
	"car":    KindCar,
	"cdr":    KindCdr,
	"nil":    KindNil,
	"isnil":  KindIsNil,
	"eq":     KindEq,
	"lt":     KindLt,
	"add":    KindAdd,
	"mul":    KindMul,
	"div":    KindDiv,
	"neg":    KindNeg,
	"inc":    KindInc,
	"dec":    KindDec,
	"b":      KindB,
	"c":      KindC,
	"s":      KindS,
	"i":      KindI,
	"galaxy": KindGalaxy,
	"=":      KindAssign,
}

// Token is a single lexical unit together with its source line (1-based).
type Token struct {
	Kind Kind
	Line int

	// Payload, valid only for the matching Kind.
	Int  int64
	Var  uint64
	Bool bool
}

func (t Token) String() string {
	switch t.Kind {
	case KindInt:
		return fmt.Sprintf("Int(%d)", t.Int)
	case KindVar:
		return fmt.Sprintf("Var(%d)", t.Var)
	case KindBool:
		if t.Bool {
			return "Bool(t)"
		}
		return "Bool(f)"
	default:
		for w, k := range words {
			if k == t.Kind {
				return w
			}
		}
		return "?"
	}
}
