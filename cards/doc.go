// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

/*
Package cards issues and manages access cards (mobile wallet credentials).

Every operation is a single signed round trip against the key-cards API.
The Service is normally reached through the top-level accessgrid.Client,
but can also be built directly on a configured common.Client:

	service := cards.NewService(client)

	card, err := service.Issue(ctx, cards.IssueCardFields{
		CardTemplateID: "0xd3adb00b5",
		FullName:       "Jane Doe",
		Email:          "jane.doe@example.com",
		ExpirationDate: "2026-01-01",
	})

On success the returned AccessCard carries the install URL to hand to the
card holder:

	fmt.Println(card.InstallURL)

Issued cards are suspended, resumed and unlinked through the state
transition helpers:

	card, err = service.Suspend(ctx, card.ID)
	card, err = service.Resume(ctx, card.ID)
	card, err = service.Unlink(ctx, card.ID)

All three are the same operation parameterized by Action; arbitrary action
values are rejected before any network call.
*/
package cards
