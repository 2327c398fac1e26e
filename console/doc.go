// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

/*
Package console manages card templates, the server-side profiles that
issued cards are minted from, and their event logs.

Every operation is a single signed round trip against the console API.
The Service is normally reached through the top-level accessgrid.Client,
but can also be built directly on a configured common.Client:

	service := console.NewService(client)

	template, err := service.CreateTemplate(ctx, console.CreateTemplateFields{
		Name:     "Employee Badge",
		Platform: "apple",
		UseCase:  "employee_badge",
		Protocol: "desfire",
		Design: &console.TemplateDesign{
			BackgroundColor: "#112233",
		},
	})

Existing templates are read back and modified by id:

	template, err = service.ReadTemplate(ctx, template.ID)

	template, err = service.UpdateTemplate(ctx, template.ID,
		console.UpdateTemplateFields{Name: "Employee Badge v2"})

Event logs are fetched with optional date-range and event filters; their
shape is service-defined, so they come back as a raw mapping:

	logs, err := service.GetLogs(ctx, template.ID, console.LogsQuery{
		StartDate: "2026-01-01",
		Event:     "install",
	})
*/
package console
