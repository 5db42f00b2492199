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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mdrkn/galaxy-interpreter/eval"
	"github.com/mdrkn/galaxy-interpreter/expr"
	"github.com/mdrkn/galaxy-interpreter/parse"
)

type noLookupEnv struct{}

func (noLookupEnv) Lookup(uint64) (*expr.Node, bool) { return nil, false }

// runTestSuite evaluates both sides of every equality in a test-suite file
// and reports the ones that don't reduce to the same normal form.
func runTestSuite(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening test suite")
	}
	defer f.Close()

	cache := expr.NewCache()
	equalities, err := parse.ParseTestSuite(f, cache)
	if err != nil {
		return errors.Wrap(err, "parsing test suite")
	}

	failures := 0
	for _, eq := range equalities {
		lhs, err := eval.Eval(cache, noLookupEnv{}, eq.LHS)
		if err != nil {
			return errors.Wrapf(err, "line %d: evaluating left side", eq.Line)
		}
		rhs, err := eval.Eval(cache, noLookupEnv{}, eq.RHS)
		if err != nil {
			return errors.Wrapf(err, "line %d: evaluating right side", eq.Line)
		}
		if !expr.Equal(lhs, rhs) {
			failures++
			fmt.Fprintf(os.Stdout, "line %d: FAIL\n%s\n", eq.Line, disassemblyDiff(lhs.String(), rhs.String()))
		}
	}

	fmt.Fprintf(os.Stdout, "%d/%d equalities passed\n", len(equalities)-failures, len(equalities))
	if failures > 0 {
		return errors.Errorf("%d equalities failed", failures)
	}
	return nil
}

// disassemblyDiff renders a word-level diff between the two sides' printed
// normal forms, so a mismatch on a long list shows just the differing
// elements instead of two walls of text.
func disassemblyDiff(lhs, rhs string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(lhs, rhs, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString("+[")
			b.WriteString(d.Text)
			b.WriteString("]")
		case diffmatchpatch.DiffDelete:
			b.WriteString("-[")
			b.WriteString(d.Text)
			b.WriteString("]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
