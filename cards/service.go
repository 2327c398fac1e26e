// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package cards

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Access-Grid/accessgrid-go/common"
)

const endpointBase = "/v1/key-cards"

// Service is the primary interface to the key-cards API.
type Service struct {
	// Client is the underlying signed client used for HTTP requests.
	Client *common.Client
}

// NewService creates a Service on top of the supplied signed client.
func NewService(client *common.Client) *Service {
	return &Service{Client: client}
}

// Issue creates a new access card from the given fields and returns its
// snapshot.
func (o *Service) Issue(ctx context.Context, fields IssueCardFields) (*AccessCard, error) {
	data, err := o.Client.Post(ctx, endpointBase, fields)
	if err != nil {
		return nil, err
	}

	return newAccessCard(o, data), nil
}

// Provision is an alias of Issue kept for backward compatibility. The two
// must not diverge.
func (o *Service) Provision(ctx context.Context, fields IssueCardFields) (*AccessCard, error) {
	return o.Issue(ctx, fields)
}

// Update modifies an existing access card.
func (o *Service) Update(ctx context.Context, cardID string, fields UpdateCardFields) (*AccessCard, error) {
	if cardID == "" {
		return nil, common.NewConfigurationError("missing card id")
	}

	path := fmt.Sprintf("%s/%s", endpointBase, url.PathEscape(cardID))

	data, err := o.Client.Put(ctx, path, fields)
	if err != nil {
		return nil, err
	}

	return newAccessCard(o, data), nil
}

// Manage transitions the card through one of the allowed state transition
// actions. The action is validated before any network call; the request
// itself carries an empty body.
func (o *Service) Manage(ctx context.Context, cardID string, action Action) (*AccessCard, error) {
	if cardID == "" {
		return nil, common.NewConfigurationError("missing card id")
	}

	if !action.valid() {
		return nil, common.NewConfigurationError("unexpected action %q", action)
	}

	path := fmt.Sprintf("%s/%s/%s", endpointBase, url.PathEscape(cardID), action)

	data, err := o.Client.Post(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	return newAccessCard(o, data), nil
}

// Suspend disables an access card until resumed.
func (o *Service) Suspend(ctx context.Context, cardID string) (*AccessCard, error) {
	return o.Manage(ctx, cardID, ActionSuspend)
}

// Resume reactivates a suspended access card.
func (o *Service) Resume(ctx context.Context, cardID string) (*AccessCard, error) {
	return o.Manage(ctx, cardID, ActionResume)
}

// Unlink detaches an access card from the holder's device.
func (o *Service) Unlink(ctx context.Context, cardID string) (*AccessCard, error) {
	return o.Manage(ctx, cardID, ActionUnlink)
}
