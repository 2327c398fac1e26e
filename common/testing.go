// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/Access-Grid/accessgrid-go/auth"
)

// NewTestingHTTPClient creates an HTTP test server (with a configurable
// request handler) and a signed Client for the given credentials, and
// connects them together. The client and the server's shutdown switch are
// returned. The client keeps a stable fake host in its BaseURL so handlers
// see consistent request URIs.
func NewTestingHTTPClient(
	handler http.Handler,
	accountID, secretKey string,
) (cli *Client, closerFn func()) {
	srv := httptest.NewServer(handler)

	cli = NewClient(accountID, &auth.HMACSigner{SecretKey: secretKey})
	cli.BaseURL = "http://api.accessgrid.example"
	cli.HTTPClient = http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, network, _ string) (net.Conn, error) {
				return net.Dial(network, srv.Listener.Addr().String())
			},
		},
	}

	closerFn = srv.Close

	return
}
