// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Access-Grid/accessgrid-go/auth"
)

const (
	// DefaultBaseURL is the production service endpoint.
	DefaultBaseURL = "https://api.accessgrid.com"

	// DefaultTimeout bounds each request round trip.
	DefaultTimeout = 30 * time.Second
)

// Headers carried by every request.
const (
	HeaderAccountID        = "X-ACCT-ID"
	HeaderPayloadSignature = "X-PAYLOAD-SIG"
)

// Client holds the signed HTTP(s) session shared by the resource clients:
// the account identity, the payload signer, and the service base URL.
// It is safe for concurrent use once configured.
type Client struct {
	HTTPClient http.Client
	AccountID  string
	Signer     auth.ISigner
	BaseURL    string
	UserAgent  string
}

// NewClient instantiates a Client for the given account against the default
// production endpoint.
func NewClient(accountID string, signer auth.ISigner) *Client {
	return &Client{
		HTTPClient: http.Client{
			Timeout: DefaultTimeout,
		},
		AccountID: accountID,
		Signer:    signer,
		BaseURL:   DefaultBaseURL,
		UserAgent: UserAgent(),
	}
}

// Do executes one signed round trip and returns the decoded response
// mapping. A nil body is transmitted as a zero-length payload; anything
// else is serialized exactly once, and those same bytes are both signed and
// transmitted. There are no retries: every failure surfaces immediately as
// one of the error variants in this package.
func (o *Client) Do(
	ctx context.Context,
	method string,
	path string,
	body interface{},
	params url.Values,
) (map[string]interface{}, error) {
	payload, err := encodePayload(body)
	if err != nil {
		return nil, err
	}

	signature, err := o.Signer.SignPayload(payload)
	if err != nil {
		return nil, err
	}

	uri := o.BaseURL + path
	if len(params) > 0 {
		uri += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s %q, request creation failed: %w", method, uri, err)
	}

	req.Header.Set(HeaderAccountID, o.AccountID)
	req.Header.Set(HeaderPayloadSignature, signature)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", o.UserAgent)

	hc := &o.HTTPClient

	res, err := hc.Do(req)
	if err != nil {
		return nil, newTransportError(err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, newTransportError(err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, responseError(res, resBody)
	}

	// The service always answers success with a JSON object; tolerate an
	// empty body as an object with no fields.
	if len(resBody) == 0 {
		return map[string]interface{}{}, nil
	}

	var decoded map[string]interface{}

	if err := json.Unmarshal(resBody, &decoded); err != nil {
		return nil, &ServiceError{
			Message: fmt.Sprintf(
				"could not decode response body (status %d): %v",
				res.StatusCode, err,
			),
			StatusCode: res.StatusCode,
			cause:      err,
		}
	}

	return decoded, nil
}

// Get issues a signed GET request to path.
func (o *Client) Get(ctx context.Context, path string, params url.Values) (map[string]interface{}, error) {
	return o.Do(ctx, http.MethodGet, path, nil, params)
}

// Post issues a signed POST request carrying body.
func (o *Client) Post(ctx context.Context, path string, body interface{}) (map[string]interface{}, error) {
	return o.Do(ctx, http.MethodPost, path, body, nil)
}

// Put issues a signed PUT request carrying body.
func (o *Client) Put(ctx context.Context, path string, body interface{}) (map[string]interface{}, error) {
	return o.Do(ctx, http.MethodPut, path, body, nil)
}

// Patch issues a signed PATCH request carrying body.
func (o *Client) Patch(ctx context.Context, path string, body interface{}) (map[string]interface{}, error) {
	return o.Do(ctx, http.MethodPatch, path, body, nil)
}

// encodePayload renders the canonical request payload: encoding/json output
// with struct fields in declaration order and map keys sorted. The payload
// for a nil body is zero bytes, not a serialized null. The signature is
// order and whitespace sensitive, so this serialization is part of the wire
// contract and must not change.
func encodePayload(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not serialize request body: %w", err)
	}

	return payload, nil
}
