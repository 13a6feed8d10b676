// Package config reads the process configuration from the
// environment once at startup. Core logic never touches the
// environment; it receives this struct instead.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/prajwalw/tempobill/internal/domain"
)

type Config struct {
	TempoBaseURL  string
	TempoAPIToken string

	ConsultantRate    decimal.Decimal
	BillingMode       domain.BillMode
	MonthlyUnitPolicy domain.MonthlyUnitPolicy
	ConsultantName    string
	ConsultantUserID  string

	// APIToken is the shared secret required in the `token` header
	// of every request to the invoices endpoint.
	APIToken string

	Host string
	Port uint
}

// Load builds the configuration from the environment. A missing or
// malformed required variable is an error; the process should refuse
// to serve.
func Load() (*Config, error) {
	cfg := &Config{
		MonthlyUnitPolicy: domain.UnitPerCalendarDay,
		ConsultantName:    os.Getenv("CONSULTANT_NAME"),
		ConsultantUserID:  os.Getenv("CONSULTANT_USER_ID"),
		Host:              getenv("HOST", "localhost"),
		Port:              3000,
	}

	var err error
	if cfg.TempoBaseURL, err = require("TEMPO_BASE_URL"); err != nil {
		return nil, err
	}
	if cfg.TempoAPIToken, err = require("TEMPO_API_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.APIToken, err = require("API_TOKEN"); err != nil {
		return nil, err
	}

	rate, err := require("CONSULTANT_RATE")
	if err != nil {
		return nil, err
	}
	if cfg.ConsultantRate, err = decimal.NewFromString(rate); err != nil {
		return nil, fmt.Errorf("parsing CONSULTANT_RATE: %w", err)
	}

	mode, err := require("CONSULTANT_BILLING_MODE")
	if err != nil {
		return nil, err
	}
	if cfg.BillingMode, err = domain.ParseBillMode(mode); err != nil {
		return nil, fmt.Errorf("parsing CONSULTANT_BILLING_MODE: %w", err)
	}

	if policy, ok := os.LookupEnv("MONTHLY_UNIT_POLICY"); ok && policy != "" {
		if cfg.MonthlyUnitPolicy, err = domain.ParseMonthlyUnitPolicy(policy); err != nil {
			return nil, fmt.Errorf("parsing MONTHLY_UNIT_POLICY: %w", err)
		}
	}

	if port, ok := os.LookupEnv("PORT"); ok && port != "" {
		parsed, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("parsing PORT: %w", err)
		}
		cfg.Port = uint(parsed)
	}

	return cfg, nil
}

func require(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("missing required environment variable %s", key)
	}
	return value, nil
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
