package config

import (
	"os"
	"strings"
)

type Env struct {
	HTTPAddr     string
	OptionsPath  string
	HAURL        string
	StoreBackend string
	PostgresDSN  string
	RedisAddr    string
	KafkaBrokers []string
	ServiceName  string
}

func Load() Env {
	return Env{
		HTTPAddr:     getenv("HTTP_ADDR", ":8091"),
		OptionsPath:  getenv("OPTIONS_PATH", "/data/options.json"),
		HAURL:        getenv("HA_URL", "http://supervisor/core/api"),
		StoreBackend: getenv("STORE_BACKEND", "sheets"),
		PostgresDSN:  getenv("POSTGRES_DSN", ""),
		RedisAddr:    getenv("REDIS_ADDR", ""),
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "")),
		ServiceName:  getenv("SERVICE_NAME", "pos-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
