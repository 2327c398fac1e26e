// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0
package auth

// ISigner computes the payload signature attached to every request.
type ISigner interface {
	Configure(cfg map[string]interface{}) error
	SignPayload(payload []byte) (string, error)
}
