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

// Package display implements driver.Display by drawing frames as ANSI
// cursor-addressed points on a terminal, one colour per layer
// (original_source's draw.rs, ported to the teacher's raw-terminal idiom in
// cmd/retro/term.go).
package display

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mdrkn/galaxy-interpreter/frame"
)

const (
	csi         = "\x1b["
	clearScreen = csi + "2J"
	hideCursor  = csi + "?25l"
	showCursor  = csi + "?25h"
)

// layerColors cycles through eight ANSI foreground colours (31-37 and 90), one per
// overlapping layer, so the operator can tell frames apart without a GUI.
var layerColors = [8]int{37, 31, 32, 33, 34, 35, 36, 90}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// Offset shifts every drawn point by (dx, dy), since point coordinates may
// be negative relative to the terminal's origin.
func Offset(dx, dy int64) Option {
	return func(t *Terminal) { t.dx, t.dy = dx, dy }
}

// Writer overrides the output sink, normally os.Stdout. Used by tests to
// capture the escape-sequence stream.
func Writer(w io.Writer) Option {
	return func(t *Terminal) { t.w = bufio.NewWriter(w) }
}

// Terminal presents frames by moving the cursor and writing a block
// character at each point, one escape sequence per point.
type Terminal struct {
	w      *bufio.Writer
	dx, dy int64
}

// NewTerminal builds a Terminal writing to os.Stdout.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{w: bufio.NewWriter(os.Stdout)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Present implements driver.Display: clears the screen, then draws each
// layer's points in its own colour.
func (t *Terminal) Present(frames [][]frame.Point) error {
	fmt.Fprint(t.w, hideCursor)
	fmt.Fprint(t.w, clearScreen)
	for i, layer := range frames {
		color := layerColors[i%len(layerColors)]
		fmt.Fprintf(t.w, "%s%dm", csi, color)
		for _, p := range layer {
			t.drawAt(p.X+t.dx, p.Y+t.dy)
		}
	}
	fmt.Fprint(t.w, csi+"0m")
	fmt.Fprint(t.w, showCursor)
	return t.w.Flush()
}

func (t *Terminal) drawAt(x, y int64) {
	fmt.Fprintf(t.w, "%s%d;%dH█", csi, y+1, x+1)
}

