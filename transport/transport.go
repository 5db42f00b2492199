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

// Package transport implements the driver.Transport interface over HTTP:
// POST the bit-signal body, return the response body unchanged (spec.md
// §6's wire format). There is no third-party HTTP client in the retrieval
// pack that this protocol (a bare ASCII POST body, no JSON, no headers of
// note) benefits from over net/http directly (see DESIGN.md).
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// HTTP round-trips a modulated request body to a server URL and returns the
// response body, implementing driver.Transport.
type HTTP struct {
	URL    string
	APIKey string
	Client *http.Client
}

// New builds an HTTP transport pointed at url, with apiKey appended as a
// query parameter the way the historical reference client authenticates
// (original_source).
func New(url, apiKey string) *HTTP {
	return &HTTP{
		URL:    url,
		APIKey: apiKey,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Send POSTs bits as the request body and returns the response body as a
// string, both using the bare "0"/"1" alphabet with no framing.
func (h *HTTP) Send(bits string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.Client.Timeout)
	defer cancel()

	url := h.URL
	if h.APIKey != "" {
		url += "?apiKey=" + h.APIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(bits))
	if err != nil {
		return "", errors.Wrap(err, "transport: building request")
	}

	log.Debug().Str("url", h.URL).Int("bits", len(bits)).Msg("transport: sending request")

	resp, err := h.Client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "transport: request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "transport: reading response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("transport: server returned %s: %s", resp.Status, body)
	}

	return string(body), nil
}
