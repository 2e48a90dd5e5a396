package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/todocal/internal/api"
)

type RuntimeConfig struct {
	APIURL         string
	StateDBPath    string
	Locale         string
	LogFile        string
	NotifySeconds  int
	HTTPTimeoutSec int
	AltScreen      bool
}

func Default() RuntimeConfig {
	return RuntimeConfig{
		APIURL:         api.DefaultBaseURL,
		StateDBPath:    ".todocal_state.db",
		Locale:         "en",
		LogFile:        "todocal.log",
		NotifySeconds:  5,
		HTTPTimeoutSec: 30,
		AltScreen:      true,
	}
}

func FromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODOCAL_API_URL"); ok {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	if v, ok := getEnvString("TODOCAL_STATE_DB"); ok {
		cfg.StateDBPath = v
	}
	if v, ok := getEnvString("TODOCAL_LOCALE"); ok {
		cfg.Locale = strings.ToLower(v)
	}
	if v, ok := getEnvString("TODOCAL_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvInt("TODOCAL_NOTIFY_SECONDS"); ok && v > 0 {
		cfg.NotifySeconds = v
	}
	if v, ok := getEnvInt("TODOCAL_HTTP_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.HTTPTimeoutSec = v
	}
	if v, ok := getEnvBool("TODOCAL_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	return cfg
}

func (c RuntimeConfig) NotifyDelay() time.Duration {
	return time.Duration(c.NotifySeconds) * time.Second
}

func (c RuntimeConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

// LogDiscarded reports whether diagnostics are switched off ("-").
func (c RuntimeConfig) LogDiscarded() bool {
	return c.LogFile == "" || c.LogFile == "-"
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
