// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"github.com/mitchellh/mapstructure"
)

// Template is a read-only snapshot of a card template, the server-side
// profile describing how issued cards of that type look and behave.
// Responses are not guaranteed to be field-complete: absent fields keep
// their zero value and construction never fails.
type Template struct {
	svc *Service

	ID                  string                 `mapstructure:"id"`
	Name                string                 `mapstructure:"name"`
	Platform            string                 `mapstructure:"platform"`
	UseCase             string                 `mapstructure:"use_case"`
	Protocol            string                 `mapstructure:"protocol"`
	CreatedAt           string                 `mapstructure:"created_at"`
	LastPublishedAt     string                 `mapstructure:"last_published_at"`
	IssuedKeysCount     int                    `mapstructure:"issued_keys_count"`
	ActiveKeysCount     int                    `mapstructure:"active_keys_count"`
	AllowedDeviceCounts map[string]interface{} `mapstructure:"allowed_device_counts"`
	SupportSettings     map[string]interface{} `mapstructure:"support_settings"`
	TermsSettings       map[string]interface{} `mapstructure:"terms_settings"`
	StyleSettings       map[string]interface{} `mapstructure:"style_settings"`
}

// newTemplate builds a Template view over a response mapping. The service
// back-reference is retained for future chained calls.
func newTemplate(svc *Service, data map[string]interface{}) *Template {
	tmpl := Template{svc: svc}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &tmpl,
		WeaklyTypedInput: true,
	})
	if err == nil {
		// absent or mistyped fields stay at their zero value
		_ = decoder.Decode(data)
	}

	return &tmpl
}

// TemplateDesign configures the visual design of cards issued from a
// template.
type TemplateDesign struct {
	BackgroundColor     string `json:"background_color,omitempty"`
	LabelColor          string `json:"label_color,omitempty"`
	LabelSecondaryColor string `json:"label_secondary_color,omitempty"`
	BackgroundImage     string `json:"background_image,omitempty"`
	LogoImage           string `json:"logo_image,omitempty"`
	IconImage           string `json:"icon_image,omitempty"`
}

// TemplateSupportInfo configures the support contacts shown on issued
// cards.
type TemplateSupportInfo struct {
	SupportURL            string `json:"support_url,omitempty"`
	SupportPhoneNumber    string `json:"support_phone_number,omitempty"`
	SupportEmail          string `json:"support_email,omitempty"`
	PrivacyPolicyURL      string `json:"privacy_policy_url,omitempty"`
	TermsAndConditionsURL string `json:"terms_and_conditions_url,omitempty"`
}

// CreateTemplateFields enumerates the recognized options for creating a
// card template. Field declaration order fixes the canonical serialization
// that gets signed; do not reorder.
type CreateTemplateFields struct {
	Name                   string               `json:"name,omitempty"`
	Platform               string               `json:"platform,omitempty"`
	UseCase                string               `json:"use_case,omitempty"`
	Protocol               string               `json:"protocol,omitempty"`
	AllowOnMultipleDevices bool                 `json:"allow_on_multiple_devices,omitempty"`
	WatchCount             int                  `json:"watch_count,omitempty"`
	IPhoneCount            int                  `json:"iphone_count,omitempty"`
	Design                 *TemplateDesign      `json:"design,omitempty"`
	SupportInfo            *TemplateSupportInfo `json:"support_info,omitempty"`
}

// UpdateTemplateFields enumerates the recognized options for updating a
// card template.
type UpdateTemplateFields struct {
	Name                   string               `json:"name,omitempty"`
	AllowOnMultipleDevices bool                 `json:"allow_on_multiple_devices,omitempty"`
	WatchCount             int                  `json:"watch_count,omitempty"`
	IPhoneCount            int                  `json:"iphone_count,omitempty"`
	SupportInfo            *TemplateSupportInfo `json:"support_info,omitempty"`
}
