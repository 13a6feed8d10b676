package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	tr "github.com/stretchr/testify/require"

	"github.com/prajwalw/tempobill/internal/domain"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TEMPO_BASE_URL", "https://api.tempo.io/4")
	t.Setenv("TEMPO_API_TOKEN", "tempo-secret")
	t.Setenv("API_TOKEN", "endpoint-secret")
	t.Setenv("CONSULTANT_RATE", "9680")
	t.Setenv("CONSULTANT_BILLING_MODE", "M")
}

func TestLoad(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	tr.NoError(t, err)

	assert.Equal(t, "https://api.tempo.io/4", cfg.TempoBaseURL)
	assert.Equal(t, "tempo-secret", cfg.TempoAPIToken)
	assert.Equal(t, "endpoint-secret", cfg.APIToken)
	assert.True(t, cfg.ConsultantRate.Equal(decimal.NewFromInt(9680)))
	assert.Equal(t, domain.BillModeMonthly, cfg.BillingMode)
	assert.Equal(t, domain.UnitPerCalendarDay, cfg.MonthlyUnitPolicy)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, uint(3000), cfg.Port)
}

func TestLoadOptionalOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("CONSULTANT_BILLING_MODE", "H")
	t.Setenv("CONSULTANT_NAME", "Jane Smith")
	t.Setenv("CONSULTANT_USER_ID", "acc-1")
	t.Setenv("MONTHLY_UNIT_POLICY", "workday")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	tr.NoError(t, err)

	assert.Equal(t, domain.BillModeHourly, cfg.BillingMode)
	assert.Equal(t, "Jane Smith", cfg.ConsultantName)
	assert.Equal(t, "acc-1", cfg.ConsultantUserID)
	assert.Equal(t, domain.UnitPerWorkday, cfg.MonthlyUnitPolicy)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, uint(8080), cfg.Port)
}

func TestLoadMissingRequired(t *testing.T) {
	required := []string{
		"TEMPO_BASE_URL",
		"TEMPO_API_TOKEN",
		"API_TOKEN",
		"CONSULTANT_RATE",
		"CONSULTANT_BILLING_MODE",
	}

	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(name, "")

			_, err := Load()
			tr.Error(t, err)
			assert.ErrorContains(t, err, name)
		})
	}
}

func TestLoadMalformedValues(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "rate", key: "CONSULTANT_RATE", value: "ninety", wantErr: "CONSULTANT_RATE"},
		{name: "billing mode", key: "CONSULTANT_BILLING_MODE", value: "X", wantErr: "billing mode"},
		{name: "unit policy", key: "MONTHLY_UNIT_POLICY", value: "sometimes", wantErr: "unit policy"},
		{name: "port", key: "PORT", value: "eighty", wantErr: "PORT"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			tr.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
