// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// HMACSigner signs request payloads with the account's shared secret. The
// MAC is computed over the base64 encoding of the payload rather than the
// raw payload; signatures produced over the raw text are rejected by the
// service.
type HMACSigner struct {
	SecretKey string
}

func (o *HMACSigner) Configure(cfg map[string]interface{}) error {
	decoded := struct {
		SecretKey string                 `mapstructure:"secret_key"`
		Rest      map[string]interface{} `mapstructure:",remain"`
	}{}

	if err := mapstructure.Decode(cfg, &decoded); err != nil {
		return err
	}

	o.SecretKey = decoded.SecretKey

	if err := o.validate(); err != nil {
		return err
	}

	if len(decoded.Rest) > 0 {
		var unexpected []string
		for k := range decoded.Rest {
			unexpected = append(unexpected, k)
		}
		return fmt.Errorf("unexpected fields in config: %s",
			strings.Join(unexpected, ", "))
	}

	return nil
}

// SignPayload computes hex(HMAC-SHA256(secret, base64(payload))). An empty
// payload signs the base64 encoding of the empty string, which is itself
// empty, never a serialized null.
func (o *HMACSigner) SignPayload(payload []byte) (string, error) {
	if err := o.validate(); err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(payload)

	mac := hmac.New(sha256.New, []byte(o.SecretKey))
	mac.Write([]byte(encoded))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

func (o *HMACSigner) validate() error {
	if o.SecretKey == "" {
		return errors.New("missing secret_key")
	}

	return nil
}
