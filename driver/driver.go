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

// Package driver closes the loop between the evaluator, the display sink
// and the remote transport: the interaction step of spec.md §4.6.
package driver

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mdrkn/galaxy-interpreter/codec"
	"github.com/mdrkn/galaxy-interpreter/eval"
	"github.com/mdrkn/galaxy-interpreter/expr"
	"github.com/mdrkn/galaxy-interpreter/frame"
)

// Display is the local presentation sink, invoked whenever an interaction
// step returns with flag = 0 (spec.md §6).
type Display interface {
	Present(frames [][]frame.Point) error
}

// Transport is the remote round-trip, invoked whenever an interaction step
// reaches flag != 0 (spec.md §6). Implementations may return a transport
// error, which Interact propagates wrapped with context (its cause is kept).
type Transport interface {
	Send(bits string) (string, error)
}

// InteractError wraps a failure with the expression being evaluated at the
// time, so a --debug run can show what the protocol was attempting instead
// of exiting with only the underlying cause.
type InteractError struct {
	Expr *expr.Node
	Err  error
}

func (e *InteractError) Error() string { return e.Err.Error() }
func (e *InteractError) Unwrap() error { return e.Err }
func (e *InteractError) Cause() error  { return e.Err }

// Driver owns one entry point and the two external sinks, and runs the
// interact loop described in spec.md §4.6. It holds no state: the caller
// passes the current state in and receives the new one back.
type Driver struct {
	cache     *expr.Cache
	env       eval.Env
	entry     uint64
	display   Display
	transport Transport
}

// New builds a Driver for the given environment, entry-point variable,
// display sink and transport.
func New(cache *expr.Cache, env eval.Env, entry uint64, display Display, transport Transport) *Driver {
	return &Driver{cache: cache, env: env, entry: entry, display: display, transport: transport}
}

// Interact runs one outer invocation of interact(env, state, vector),
// recursing through the transport round-trip internally for every flag != 0
// step, and returns only once a step resolves locally with flag = 0.
func (d *Driver) Interact(state, vector *expr.Node) (newState *expr.Node, data *expr.Node, err error) {
	id := uuid.New().String()
	logger := log.With().Str("interaction", id).Logger()

	entryExpr, ok := d.env.Lookup(d.entry)
	if !ok {
		return nil, nil, errors.Errorf("driver: entry point %d not bound", d.entry)
	}

	for {
		call := expr.App(expr.App(entryExpr, state), vector)
		result, err := eval.Eval(d.cache, d.env, call)
		if err != nil {
			return nil, nil, &InteractError{Expr: call, Err: errors.Wrap(err, "driver: eval failed")}
		}

		flagNode, rest1, err := asCons(result)
		if err != nil {
			return nil, nil, &InteractError{Expr: call, Err: err}
		}
		newStateNode, rest2, err := asCons(rest1)
		if err != nil {
			return nil, nil, &InteractError{Expr: call, Err: err}
		}
		dataNode, tail, err := asCons(rest2)
		if err != nil {
			return nil, nil, &InteractError{Expr: call, Err: err}
		}
		if !tail.IsNil() {
			return nil, nil, &InteractError{Expr: call, Err: errors.New("driver: interaction result has trailing elements")}
		}

		flag, ok := flagNode.AsInt()
		if !ok {
			return nil, nil, &InteractError{Expr: call, Err: errors.New("driver: flag is not an Int")}
		}

		if flag == 0 {
			logger.Debug().Msg("interaction resolved locally")
			return newStateNode, dataNode, nil
		}

		logger.Debug().Int64("flag", flag).Msg("interaction round-tripping through transport")
		bits, err := codec.Modulate(dataNode)
		if err != nil {
			return nil, nil, errors.Wrap(err, "driver: modulate failed")
		}
		reply, err := d.transport.Send(bits)
		if err != nil {
			return nil, nil, errors.Wrap(err, "driver: transport failed")
		}
		demodulated, err := codec.DemodulateFull(reply, d.cache)
		if err != nil {
			return nil, nil, errors.Wrap(err, "driver: demodulate failed")
		}

		state = newStateNode
		vector = demodulated
	}
}

// Step runs one Interact call and, for the resulting data payload, extracts
// its frames and presents them on the Driver's display sink. It returns the
// new state for the caller to feed into the next Step.
func (d *Driver) Step(state, vector *expr.Node) (*expr.Node, error) {
	newState, data, err := d.Interact(state, vector)
	if err != nil {
		return nil, err
	}
	frames, err := frame.Extract(data)
	if err != nil {
		return nil, errors.Wrap(err, "driver: extracting frames")
	}
	if err := d.display.Present(frames); err != nil {
		return nil, errors.Wrap(err, "driver: presenting frames")
	}
	return newState, nil
}

// asCons splits n into its car and cdr, requiring it to be a two-argument
// Cons application.
func asCons(n *expr.Node) (car, cdr *expr.Node, err error) {
	if n.Kind() != expr.KindApp || n.Fn().Kind() != expr.KindApp {
		return nil, nil, errors.Errorf("driver: expected cons, got %s", n.String())
	}
	head := n.Fn().Fn()
	if !head.IsAtom() || head.Atom().Tag != expr.TagCons {
		return nil, nil, errors.Errorf("driver: expected cons, got %s", n.String())
	}
	return n.Fn().Arg(), n.Arg(), nil
}
