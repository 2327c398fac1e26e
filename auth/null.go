// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0
package auth

// NullSigner produces an empty signature, for test rigs that skip
// verification.
type NullSigner struct{}

func (o *NullSigner) Configure(cfg map[string]interface{}) error {
	return nil
}

func (o *NullSigner) SignPayload(payload []byte) (string, error) {
	return "", nil
}
