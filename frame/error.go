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

package frame

// FrameError is returned when a reduced expression does not have the
// list-of-lists-of-integer-pairs shape an image extraction requires.
// Named FrameError, not ImageError, to avoid shadowing the standard
// library's image package in call sites that import both.
type FrameError struct {
	Detail string
}

func (e *FrameError) Error() string { return "frame: bad structure: " + e.Detail }
