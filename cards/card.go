// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package cards

import (
	"github.com/mitchellh/mapstructure"
)

// AccessCard is a read-only snapshot of an issued card as reported by the
// service at the moment of the call. Responses are not guaranteed to be
// field-complete: absent fields keep their zero value and construction
// never fails.
type AccessCard struct {
	svc *Service

	ID             string `mapstructure:"id"`
	InstallURL     string `mapstructure:"install_url"`
	State          string `mapstructure:"state"`
	FullName       string `mapstructure:"full_name"`
	ExpirationDate string `mapstructure:"expiration_date"`
}

// newAccessCard builds an AccessCard view over a response mapping. The
// service back-reference is retained for future chained calls.
func newAccessCard(svc *Service, data map[string]interface{}) *AccessCard {
	card := AccessCard{svc: svc}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &card,
		WeaklyTypedInput: true,
	})
	if err == nil {
		// absent or mistyped fields stay at their zero value
		_ = decoder.Decode(data)
	}

	return &card
}
