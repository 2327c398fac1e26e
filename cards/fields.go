// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package cards

// IssueCardFields enumerates the recognized options for issuing a card.
// Field declaration order fixes the canonical serialization that gets
// signed; do not reorder.
type IssueCardFields struct {
	CardTemplateID string `json:"card_template_id,omitempty"`
	EmployeeID     string `json:"employee_id,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	Email          string `json:"email,omitempty"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Classification string `json:"classification,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	EmployeePhoto  string `json:"employee_photo,omitempty"`
	CardNumber     string `json:"card_number,omitempty"`
	SiteCode       string `json:"site_code,omitempty"`
}

// UpdateCardFields enumerates the recognized options for updating a card.
type UpdateCardFields struct {
	EmployeeID     string `json:"employee_id,omitempty"`
	FullName       string `json:"full_name,omitempty"`
	Classification string `json:"classification,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	EmployeePhoto  string `json:"employee_photo,omitempty"`
}
