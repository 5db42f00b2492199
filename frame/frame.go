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

// Package frame walks a reduced list-of-lists expression into the ordered
// point-cloud frames a display sink consumes (spec.md §4.5).
package frame

import "github.com/mdrkn/galaxy-interpreter/expr"

// Point is one (x, y) coordinate in a frame.
type Point struct {
	X, Y int64
}

// Extract walks e, already reduced to normal form, into an ordered sequence
// of frames, each an ordered sequence of points. e must be a list of
// frames, each frame a list of Cons(Int, Int) pairs.
func Extract(e *expr.Node) ([][]Point, error) {
	layers, err := list(e)
	if err != nil {
		return nil, err
	}
	frames := make([][]Point, 0, len(layers))
	for _, layer := range layers {
		points, err := list(layer)
		if err != nil {
			return nil, err
		}
		frame := make([]Point, 0, len(points))
		for _, p := range points {
			pt, err := asPoint(p)
			if err != nil {
				return nil, err
			}
			frame = append(frame, pt)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// list unrolls n's spine of Cons cells into a slice, stopping at Nil.
func list(n *expr.Node) ([]*expr.Node, error) {
	var out []*expr.Node
	for !n.IsNil() {
		car, cdr, ok := asCons(n)
		if !ok {
			return nil, &FrameError{Detail: "expected list, got " + n.String()}
		}
		out = append(out, car)
		n = cdr
	}
	return out, nil
}

func asPoint(n *expr.Node) (Point, error) {
	car, cdr, ok := asCons(n)
	if !ok {
		return Point{}, &FrameError{Detail: "expected (Int, Int) pair, got " + n.String()}
	}
	x, ok := car.AsInt()
	if !ok {
		return Point{}, &FrameError{Detail: "expected Int x, got " + car.String()}
	}
	y, ok := cdr.AsInt()
	if !ok {
		return Point{}, &FrameError{Detail: "expected Int y, got " + cdr.String()}
	}
	return Point{X: x, Y: y}, nil
}

// asCons reports whether n is a two-argument application of the Cons
// combinator and returns its two elements.
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
