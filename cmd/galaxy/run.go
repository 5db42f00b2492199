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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/mdrkn/galaxy-interpreter/display"
	"github.com/mdrkn/galaxy-interpreter/driver"
	"github.com/mdrkn/galaxy-interpreter/expr"
	"github.com/mdrkn/galaxy-interpreter/parse"
	"github.com/mdrkn/galaxy-interpreter/transport"
)

// runProtocol loads a protocol file and drives its interaction loop,
// presenting each resolved frame set on a terminal sink and round-tripping
// through the remote server whenever the protocol asks to.
func runProtocol(protocolPath, serverURL, apiKey string) error {
	f, err := os.Open(protocolPath)
	if err != nil {
		return errors.Wrap(err, "opening protocol file")
	}
	defer f.Close()

	cache := expr.NewCache()
	proto, err := parse.Parse(f, cache)
	if err != nil {
		return errors.Wrap(err, "parsing protocol")
	}

	log.Info().Str("protocol", protocolPath).Int("bindings", len(proto.Bindings)).Msg("protocol loaded")

	var tr driver.Transport
	if serverURL != "" {
		tr = transport.New(serverURL, apiKey)
	} else {
		tr = noTransport{}
	}

	d := driver.New(cache, proto, proto.Entry, display.NewTerminal(), tr)

	stdin := bufio.NewScanner(os.Stdin)
	state := cache.Nil()
	vector := cache.Nil()
	for {
		var err error
		state, err = d.Step(state, vector)
		if err != nil {
			return errors.Wrap(err, "interaction step failed")
		}
		vector, err = nextVector(cache, stdin)
		if err != nil {
			return errors.Wrap(err, "reading next click vector")
		}
	}
}

// nextVector prompts for and reads the next click coordinates driving the
// protocol, one "x,y" pair per line on stdin (the minimal stand-in for the
// real windowing front end, which spec.md keeps out of scope). A blank line
// sends Nil, matching the protocol's own "no click yet" vector.
func nextVector(cache *expr.Cache, stdin *bufio.Scanner) (*expr.Node, error) {
	fmt.Fprint(os.Stderr, "x,y> ")
	if !stdin.Scan() {
		if err := stdin.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("input closed")
	}
	line := strings.TrimSpace(stdin.Text())
	if line == "" {
		return cache.Nil(), nil
	}
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return nil, errors.Errorf("expected \"x,y\", got %q", line)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing x in %q", line)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing y in %q", line)
	}
	cons := cache.Combinator(expr.TagCons)
	return expr.App(expr.App(cons, cache.Int(x)), cache.Int(y)), nil
}

type noTransport struct{}

func (noTransport) Send(string) (string, error) {
	return "", errors.New("no server URL configured: protocol requested a remote round-trip")
}
