package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Day names used when REPORT_WEEKDAY_NAMES is not set, Monday first.
var defaultWeekdayNames = []string{
	"Poniedziałek", "Wtorek", "Środa", "Czwartek", "Piątek", "Sobota", "Niedziela",
}

type Config struct {
	DaysRange      int
	EmailFrom      string
	RemoteCategory string
	NameSuffixTag  string
	WeekdayNames   []string

	SMTP SMTPConfig
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	DialTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		DaysRange:      getEnvAsInt("REPORT_DAYS_RANGE", 8),
		EmailFrom:      getEnv("REPORT_EMAIL_FROM", ""),
		RemoteCategory: getEnv("REPORT_REMOTE_CATEGORY", "Remote work"),
		NameSuffixTag:  getEnv("REPORT_NAME_SUFFIX_TAG", "[ERP]"),
		WeekdayNames:   getEnvAsList("REPORT_WEEKDAY_NAMES", defaultWeekdayNames),
		SMTP: SMTPConfig{
			Host:        getEnv("SMTP_HOST", ""),
			Port:        getEnvAsInt("SMTP_PORT", 465),
			Username:    getEnv("SMTP_USERNAME", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			DialTimeout: time.Duration(getEnvAsInt("SMTP_DIAL_TIMEOUT", 10)) * time.Second,
		},
	}

	// The weekday table must cover Monday through Sunday.
	if len(cfg.WeekdayNames) != 7 {
		cfg.WeekdayNames = defaultWeekdayNames
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsList(name string, defaultVal []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return defaultVal
	}

	parts := strings.Split(valStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
