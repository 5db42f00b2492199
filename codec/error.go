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

package codec

import "fmt"

// ErrorKind classifies a CodecError, matching spec.md §7's taxonomy for the
// bit-signal codec.
type ErrorKind uint8

const (
	BadTag ErrorKind = iota
	TruncatedInput
	TrailingInput
)

// CodecError is returned when a string fails to modulate (the node is not
// built solely from Nil, Int and Cons) or a bit string fails to demodulate.
type CodecError struct {
	Kind   ErrorKind
	Detail string
}

func (e *CodecError) Error() string {
	switch e.Kind {
	case TruncatedInput:
		return "codec: truncated input"
	case TrailingInput:
		return "codec: trailing input after value"
	default:
		return fmt.Sprintf("codec: bad tag: %s", e.Detail)
	}
}
