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
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mdrkn/galaxy-interpreter/driver"
)

var cli struct {
	Debug bool `help:"Print full error causes and a disassembly dump on failure."`

	Run struct {
		Protocol  string `type:"existingfile" env:"ICFP_PROTOCOL" help:"Path to the protocol file."`
		ServerURL string `arg:"" optional:"" env:"ICFP_SERVER_URL" help:"Remote server URL for flag != 0 round-trips."`
		APIKey    string `arg:"" optional:"" env:"ICFP_API_KEY" help:"API key for the remote server."`
	} `cmd:"" help:"Run the protocol's interaction loop, displaying frames locally when the protocol declines to talk to the server."`

	Test struct {
		File string `arg:"" type:"existingfile" help:"Test-suite file of \"exp = exp\" equalities."`
	} `cmd:"" help:"Check every equality in a test-suite file."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("galaxy"),
		kong.Description("Interpreter and driver for the alien language and its interaction protocol."))

	if cli.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var err error
	switch {
	case strings.HasPrefix(ctx.Command(), "run"):
		err = runProtocol(cli.Run.Protocol, cli.Run.ServerURL, cli.Run.APIKey)
	case strings.HasPrefix(ctx.Command(), "test"):
		err = runTestSuite(cli.Test.File)
	default:
		err = errors.Errorf("unknown command: %s", ctx.Command())
	}

	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	if cli.Debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		var ie *driver.InteractError
		if stderrors.As(err, &ie) {
			fmt.Fprintf(os.Stderr, "offending expression: %s\n", ie.Expr.String())
		}
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}
