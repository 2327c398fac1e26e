// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

/*
Package accessgrid is a client library for the AccessGrid access-control
service: it issues and manages digital access cards (mobile wallet
credentials) and the card templates they are minted from, through a signed
HTTP API.

Every request is authenticated with the account's shared secret: the JSON
payload is serialized exactly once, base64-encoded, MACed with HMAC-SHA256
and sent alongside the account id. The same serialized bytes are signed and
transmitted, so client and service always agree on what was signed.

The user creates a Client with the account credentials:

	client, err := accessgrid.New("acct_1", "s3cret")

and reaches the API areas through its sub-clients:

	card, err := client.AccessCards.Issue(ctx, cards.IssueCardFields{
		CardTemplateID: "0xd3adb00b5",
		FullName:       "Jane Doe",
		Email:          "jane.doe@example.com",
		ExpirationDate: "2026-01-01",
	})

	template, err := client.Console.ReadTemplate(ctx, "0xd3adb00b5")

Alternate deployments, timeouts and logging are wired through options:

	client, err := accessgrid.New("acct_1", "s3cret",
		accessgrid.WithBaseURL("https://api.staging.accessgrid.example"),
		accessgrid.WithTimeout(10*time.Second),
		accessgrid.WithLogger(logger),
	)

or taken from ACCESSGRID_* environment variables:

	client, err := accessgrid.NewFromEnv()

Deployments with a private CA supply their own transport:

	transport, err := auth.NewTLSTransport("/etc/ssl/private-ca.pem")
	if err != nil { ... }

	client, err := accessgrid.New("acct_1", "s3cret",
		accessgrid.WithHTTPClient(http.Client{Transport: transport}),
	)

Failures surface as one of three error variants: ConfigurationError for
anything detected before I/O, AuthenticationError when the service rejects
the credentials (HTTP 401), and ServiceError for every other failed
exchange.
*/
package accessgrid
