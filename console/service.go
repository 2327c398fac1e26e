// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/Access-Grid/accessgrid-go/common"
)

const endpointBase = "/v1/console/card-templates"

// Service is the primary interface to the console API, which manages card
// templates and their event logs.
type Service struct {
	// Client is the underlying signed client used for HTTP requests.
	Client *common.Client
}

// NewService creates a Service on top of the supplied signed client.
func NewService(client *common.Client) *Service {
	return &Service{Client: client}
}

// LogsQuery filters template event logs.
type LogsQuery struct {
	StartDate string `url:"start_date,omitempty"`
	EndDate   string `url:"end_date,omitempty"`
	Event     string `url:"event,omitempty"`
}

// CreateTemplate creates a new card template and returns its snapshot.
func (o *Service) CreateTemplate(ctx context.Context, fields CreateTemplateFields) (*Template, error) {
	data, err := o.Client.Post(ctx, endpointBase, fields)
	if err != nil {
		return nil, err
	}

	return newTemplate(o, data), nil
}

// UpdateTemplate modifies an existing card template.
func (o *Service) UpdateTemplate(ctx context.Context, templateID string, fields UpdateTemplateFields) (*Template, error) {
	if templateID == "" {
		return nil, common.NewConfigurationError("missing template id")
	}

	path := fmt.Sprintf("%s/%s", endpointBase, url.PathEscape(templateID))

	data, err := o.Client.Put(ctx, path, fields)
	if err != nil {
		return nil, err
	}

	return newTemplate(o, data), nil
}

// ReadTemplate fetches the current state of a card template.
func (o *Service) ReadTemplate(ctx context.Context, templateID string) (*Template, error) {
	if templateID == "" {
		return nil, common.NewConfigurationError("missing template id")
	}

	path := fmt.Sprintf("%s/%s", endpointBase, url.PathEscape(templateID))

	data, err := o.Client.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}

	return newTemplate(o, data), nil
}

// GetLogs fetches event logs for a card template. Logs have no stable
// shape, so the decoded mapping is returned as is.
func (o *Service) GetLogs(ctx context.Context, templateID string, q LogsQuery) (map[string]interface{}, error) {
	if templateID == "" {
		return nil, common.NewConfigurationError("missing template id")
	}

	params, err := query.Values(q)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/logs", endpointBase, url.PathEscape(templateID))

	return o.Client.Get(ctx, path, params)
}
