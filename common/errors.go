// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ConfigurationError reports invalid client configuration or request
// parameters. It is always raised before any network I/O takes place.
type ConfigurationError struct {
	Message string
}

func (o *ConfigurationError) Error() string {
	return o.Message
}

// NewConfigurationError creates a ConfigurationError with a formatted
// message.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// AuthenticationError reports that the service rejected the request
// credentials (HTTP 401). It is kept distinct from ServiceError so that
// callers can react specifically, e.g. by prompting for new keys.
type AuthenticationError struct {
	Message string
}

func (o *AuthenticationError) Error() string {
	return o.Message
}

// ServiceError is the catch-all failure for an exchange with the service: a
// non-2xx response, an undecodable success body, or a transport failure.
type ServiceError struct {
	// Message is the best available human-readable description.
	Message string

	// StatusCode is the HTTP status of the response, or zero when the
	// request never produced one.
	StatusCode int

	cause error
}

func (o *ServiceError) Error() string {
	if o.Message == "" {
		return fmt.Sprintf("unexpected HTTP response code %d", o.StatusCode)
	}

	return o.Message
}

// Unwrap exposes the underlying error, if any.
func (o *ServiceError) Unwrap() error {
	return o.cause
}

func newTransportError(err error) *ServiceError {
	return &ServiceError{
		Message: fmt.Sprintf("request failed: %v", err),
		cause:   err,
	}
}

// responseError classifies a non-2xx response. The 401 and 402 mappings are
// fixed; everything else carries the best message the body yields.
func responseError(res *http.Response, body []byte) error {
	switch res.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: "invalid credentials"}
	case http.StatusPaymentRequired:
		return &ServiceError{
			Message:    "insufficient account balance",
			StatusCode: res.StatusCode,
		}
	}

	return &ServiceError{
		Message:    responseMessage(res, body),
		StatusCode: res.StatusCode,
	}
}

// responseMessage extracts a human-readable message from an error response
// body: RFC 7807 problem detail, then the conventional "message" field, then
// the raw body text.
func responseMessage(res *http.Response, body []byte) string {
	if msg := problemMessage(res, body); msg != "" {
		return msg
	}

	var payload struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return strings.TrimSpace(string(body))
}
