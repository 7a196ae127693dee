package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/worktracker")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, 24, cfg.EquipmentWindowHours)
	require.Equal(t, 15, cfg.OvertimeBufferMinutes)
	require.Equal(t, 60, cfg.OvertimePollSeconds)
	require.True(t, cfg.FeaturePayroll)
	require.False(t, cfg.FeatureAnalytics)
	require.False(t, cfg.SmtpConfigured())
}

func TestLoadMissingDsn(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "DB_DSN")
}

func TestSmtpConfigured(t *testing.T) {
	cfg := Config{
		SmtpHost:       "smtp.example.com",
		SmtpUser:       "alerts",
		SmtpPass:       "secret",
		SmtpFrom:       "WorkTracker <alerts@example.com>",
		AlertRecipient: "ops@example.com",
	}
	require.True(t, cfg.SmtpConfigured())

	cfg.AlertRecipient = ""
	require.False(t, cfg.SmtpConfigured())
}
