package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.leboncoin.fr", cfg.API.BaseURL)
	assert.Equal(t, "luat", cfg.Cookies.TokenName)
	assert.Equal(t, "cnfdVisitorId", cfg.Cookies.VisitorName)
	assert.Equal(t, "ba0c2dad52b3ec", cfg.Headers.DeleteAPIKey)

	assert.Equal(t, time.Second, cfg.Delays.BeforeSubmit)
	assert.Equal(t, 3*time.Second, cfg.Delays.PageReload)

	assert.Equal(t, []string{
		"list_id",
		"ad_id",
		"first_publication_date",
		"index_date",
		"status",
		"url",
		"price",
	}, cfg.ReadOnlyFields)
}

func TestConfig_URLs(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.leboncoin.fr/api/pintad/v1/public/manual/classified/123", cfg.AdDataURL("123"))
	assert.Equal(t, "https://api.leboncoin.fr/api/pintad/v1/public/manual/delete/ads", cfg.DeleteURL())
	assert.Equal(t, "https://api.leboncoin.fr/api/adsubmit/v2/classifieds?with_variation=true", cfg.CreateURL())
	assert.Equal(t, "https://api.leboncoin.fr/api/options/v4/pricing/classifieds", cfg.PricingURL())
	assert.Equal(t, "https://api.leboncoin.fr/api/services/v4/submit", cfg.SubmitURL())
}
