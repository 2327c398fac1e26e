// Copyright 2025 Contributors to the AccessGrid project.
// SPDX-License-Identifier: Apache-2.0

package accessgrid

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/Access-Grid/accessgrid-go/common"
)

// envPrefix namespaces the environment variables read by NewFromEnv.
const envPrefix = "accessgrid"

type envConfig struct {
	AccountID string `required:"true" split_words:"true"`
	SecretKey string `required:"true" split_words:"true"`
	BaseURL   string `split_words:"true"`
	Debug     bool
}

// NewFromEnv creates a Client from ACCESSGRID_* environment variables:
// ACCESSGRID_ACCOUNT_ID and ACCESSGRID_SECRET_KEY (both required),
// ACCESSGRID_BASE_URL (optional deployment override) and ACCESSGRID_DEBUG
// (optional, logs every round trip at debug level). Explicit options are
// applied last and win over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg envConfig

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, common.NewConfigurationError("reading environment: %v", err)
	}

	combined := make([]Option, 0, len(opts)+2)

	if cfg.BaseURL != "" {
		combined = append(combined, WithBaseURL(cfg.BaseURL))
	}

	if cfg.Debug {
		logger := logrus.New()
		logger.SetLevel(logrus.DebugLevel)
		combined = append(combined, WithLogger(logger))
	}

	combined = append(combined, opts...)

	return New(cfg.AccountID, cfg.SecretKey, combined...)
}
