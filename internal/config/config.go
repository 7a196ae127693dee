package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Addr              string
	DbDsn             string
	AllowedOriginsRaw string

	EquipmentWindowHours   int
	OvertimeBufferMinutes  int
	OvertimePollSeconds    int
	NightShiftBonusMinutes int

	FeaturePayroll   bool
	FeatureAnalytics bool

	SmtpHost       string
	SmtpPort       int
	SmtpUser       string
	SmtpPass       string
	SmtpFrom       string
	AlertRecipient string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Addr:              getEnv("APP_ADDR", ":8080"),
		DbDsn:             os.Getenv("DB_DSN"),
		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", ""),

		EquipmentWindowHours:   getEnvInt("EQUIPMENT_WINDOW_HOURS", 24),
		OvertimeBufferMinutes:  getEnvInt("OVERTIME_BUFFER_MINUTES", 15),
		OvertimePollSeconds:    getEnvInt("OVERTIME_POLL_SECONDS", 60),
		NightShiftBonusMinutes: getEnvInt("NIGHT_SHIFT_BONUS_MINUTES", 0),

		FeaturePayroll:   getEnvBool("FEATURE_PAYROLL", true),
		FeatureAnalytics: getEnvBool("FEATURE_ANALYTICS", false),

		SmtpHost:       os.Getenv("SMTP_HOST"),
		SmtpPort:       getEnvInt("SMTP_PORT", 587),
		SmtpUser:       os.Getenv("SMTP_USER"),
		SmtpPass:       os.Getenv("SMTP_PASS"),
		SmtpFrom:       os.Getenv("SMTP_FROM"),
		AlertRecipient: os.Getenv("ALERT_RECIPIENT"),
	}

	missing := []string{}
	if cfg.DbDsn == "" {
		missing = append(missing, "DB_DSN")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

// SmtpConfigured reports whether overtime alerts can go out by email. When
// false the notifier degrades to log-only output.
func (c Config) SmtpConfigured() bool {
	return c.SmtpHost != "" && c.SmtpUser != "" && c.SmtpPass != "" && c.SmtpFrom != "" && c.AlertRecipient != ""
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
