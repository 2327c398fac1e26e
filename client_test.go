package accessgrid

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Access-Grid/accessgrid-go/cards"
	"github.com/Access-Grid/accessgrid-go/common"
)

func TestNew_validatesCredentials(t *testing.T) {
	var cfgErr *common.ConfigurationError

	_, err := New("", "s3cret")
	require.ErrorAs(t, err, &cfgErr)
	assert.EqualError(t, cfgErr, "missing account_id")

	_, err = New("acct_1", "")
	require.ErrorAs(t, err, &cfgErr)
	assert.EqualError(t, cfgErr, "missing secret_key")

	client, err := New("acct_1", "s3cret")
	require.NoError(t, err)
	assert.NotNil(t, client.AccessCards)
	assert.NotNil(t, client.Console)
}

func TestNew_defaults(t *testing.T) {
	client, err := New("acct_1", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, common.DefaultBaseURL, client.api.BaseURL)
	assert.Equal(t, common.DefaultTimeout, client.api.HTTPClient.Timeout)
	assert.Equal(t, "accessgrid-go @ v0.1.0", client.api.UserAgent)

	// both sub-clients share the one signed session
	assert.Same(t, client.api, client.AccessCards.Client)
	assert.Same(t, client.api, client.Console.Client)
}

func TestWithBaseURL(t *testing.T) {
	client, err := New("acct_1", "s3cret",
		WithBaseURL("https://api.staging.accessgrid.example/"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.staging.accessgrid.example", client.api.BaseURL)

	client, err = New("acct_1", "s3cret",
		WithBaseURL("https://api.staging.accessgrid.example"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.staging.accessgrid.example", client.api.BaseURL)
}

func TestWithTimeout(t *testing.T) {
	client, err := New("acct_1", "s3cret", WithTimeout(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, client.api.HTTPClient.Timeout)
}

func TestWithHTTPClient(t *testing.T) {
	custom := http.Client{Timeout: time.Second}

	client, err := New("acct_1", "s3cret", WithHTTPClient(custom))
	require.NoError(t, err)
	assert.Equal(t, time.Second, client.api.HTTPClient.Timeout)
}

func TestWithInsecureTLS(t *testing.T) {
	client, err := New("acct_1", "s3cret", WithInsecureTLS())
	require.NoError(t, err)

	transport := client.api.HTTPClient.Transport.(*http.Transport)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}

func TestClient_Issue_endToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/key-cards", r.RequestURI)
		assert.Equal(t, "acct_1", r.Header.Get(common.HeaderAccountID))
		assert.Equal(t,
			"34c34f72dfcf092ff52ad87df6283c03ac16eed7a49341f5e954307c38b2e054",
			r.Header.Get(common.HeaderPayloadSignature))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "accessgrid-go @ v0.1.0", r.Header.Get("User-Agent"))

		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t,
			`{"full_name":"Jane Doe","expiration_date":"2026-01-01"}`,
			string(body))

		w.Header().Set("Content-Type", "application/json")
		_, err = w.Write([]byte(`{"id":"key_123","state":"active"}`))
		assert.NoError(t, err)
	}))
	defer srv.Close()

	client, err := New("acct_1", "s3cret", WithBaseURL(srv.URL))
	require.NoError(t, err)

	card, err := client.AccessCards.Issue(context.Background(), cards.IssueCardFields{
		FullName:       "Jane Doe",
		ExpirationDate: "2026-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "key_123", card.ID)
	assert.Equal(t, "active", card.State)
}
