package accessgrid

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Access-Grid/accessgrid-go/common"
)

func TestNewFromEnv(t *testing.T) {
	t.Setenv("ACCESSGRID_ACCOUNT_ID", "acct_1")
	t.Setenv("ACCESSGRID_SECRET_KEY", "s3cret")
	t.Setenv("ACCESSGRID_BASE_URL", "https://api.staging.accessgrid.example/")
	t.Setenv("ACCESSGRID_DEBUG", "false")

	client, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "acct_1", client.api.AccountID)
	assert.Equal(t, "https://api.staging.accessgrid.example", client.api.BaseURL)
	assert.Nil(t, client.api.HTTPClient.Transport)
}

func TestNewFromEnv_missingRequired(t *testing.T) {
	t.Setenv("ACCESSGRID_SECRET_KEY", "s3cret")

	// t.Setenv records the original value for restoration; the variable
	// itself must be absent for the required check to fire.
	t.Setenv("ACCESSGRID_ACCOUNT_ID", "")
	os.Unsetenv("ACCESSGRID_ACCOUNT_ID")

	_, err := NewFromEnv()
	var cfgErr *common.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "ACCESSGRID_ACCOUNT_ID")
}

func TestNewFromEnv_debugLogging(t *testing.T) {
	t.Setenv("ACCESSGRID_ACCOUNT_ID", "acct_1")
	t.Setenv("ACCESSGRID_SECRET_KEY", "s3cret")
	t.Setenv("ACCESSGRID_DEBUG", "true")

	client, err := NewFromEnv()
	require.NoError(t, err)

	// debug mode wraps the transport with the logging round tripper
	assert.NotNil(t, client.api.HTTPClient.Transport)
}

func TestNewFromEnv_optionsWin(t *testing.T) {
	t.Setenv("ACCESSGRID_ACCOUNT_ID", "acct_1")
	t.Setenv("ACCESSGRID_SECRET_KEY", "s3cret")
	t.Setenv("ACCESSGRID_BASE_URL", "https://api.staging.accessgrid.example")

	client, err := NewFromEnv(WithBaseURL("https://api.accessgrid.example"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.accessgrid.example", client.api.BaseURL)
}
