// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// loggingRoundTripper logs each round trip through the wrapped transport.
// Request payloads and signatures are never logged.
type loggingRoundTripper struct {
	transport http.RoundTripper
	logger    logrus.FieldLogger
}

func (o loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	res, err := o.transport.RoundTrip(req)
	if err != nil {
		o.logger.Errorf("%s %s: %s", req.Method, req.URL.String(), err)
		return nil, err
	}

	o.logger.WithFields(logrus.Fields{
		"status":  res.StatusCode,
		"elapsed": time.Since(start),
	}).Debugf("%s %s", req.Method, req.URL.String())

	return res, nil
}

// EnableRequestLogging wraps the client's transport so that every round trip
// is logged, at debug level on success and error level on transport failure.
func EnableRequestLogging(cli *http.Client, logger logrus.FieldLogger) {
	transport := http.DefaultTransport
	if cli.Transport != nil {
		transport = cli.Transport
	}

	cli.Transport = loggingRoundTripper{
		transport: transport,
		logger:    logger,
	}
}
