// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package accessgrid

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Access-Grid/accessgrid-go/auth"
	"github.com/Access-Grid/accessgrid-go/cards"
	"github.com/Access-Grid/accessgrid-go/common"
	"github.com/Access-Grid/accessgrid-go/console"
)

// Client is the top-level entry point to the AccessGrid API. It owns the
// account configuration and exposes one sub-client per API area. A Client
// holds no mutable state after construction and is safe for concurrent use.
type Client struct {
	// AccessCards issues and manages access cards.
	AccessCards *cards.Service

	// Console manages card templates and their event logs.
	Console *console.Service

	api *common.Client
}

// Option adjusts the underlying signed client at construction time.
type Option func(*common.Client)

// WithBaseURL points the client at an alternate deployment, e.g. staging.
// A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *common.Client) {
		c.BaseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client wholesale, e.g. to
// install the transport returned by auth.NewTLSTransport.
func WithHTTPClient(httpClient http.Client) Option {
	return func(c *common.Client) {
		c.HTTPClient = httpClient
	}
}

// WithTimeout adjusts the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *common.Client) {
		c.HTTPClient.Timeout = timeout
	}
}

// WithLogger logs every round trip through the given logger, at debug level
// on success and error level on transport failure. Payloads and signatures
// are never logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *common.Client) {
		common.EnableRequestLogging(&c.HTTPClient, logger)
	}
}

// WithInsecureTLS skips server certificate verification. Only suitable for
// development rigs.
func WithInsecureTLS() Option {
	return func(c *common.Client) {
		c.HTTPClient.Transport = auth.NewInsecureTLSTransport()
	}
}

// New creates a Client for the given account credentials. It fails with a
// ConfigurationError, before any network activity, when either credential
// is empty.
func New(accountID, secretKey string, opts ...Option) (*Client, error) {
	if accountID == "" {
		return nil, common.NewConfigurationError("missing account_id")
	}

	if secretKey == "" {
		return nil, common.NewConfigurationError("missing secret_key")
	}

	api := common.NewClient(accountID, &auth.HMACSigner{SecretKey: secretKey})

	for _, opt := range opts {
		opt(api)
	}

	return &Client{
		AccessCards: cards.NewService(api),
		Console:     console.NewService(api),
		api:         api,
	}, nil
}
