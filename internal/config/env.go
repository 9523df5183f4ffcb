package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultAtlasReply = "Atlas: Ready. OpenAI connection will generate your travel plan."

type Env struct {
	AppAddr string
	AppEnv  string
	GinMode string

	// AirportsFile overrides the embedded airport fixture. Ignored when AirportsDSN is set.
	AirportsFile string
	AirportsDSN  string

	AtlasReply  string
	CORSOrigins []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RateLimitRPS  int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":3000"
	}

	atlasReply := strings.TrimSpace(os.Getenv("ATLAS_REPLY"))
	if atlasReply == "" {
		atlasReply = DefaultAtlasReply
	}

	return Env{
		AppAddr: appAddr,
		AppEnv:  strings.TrimSpace(os.Getenv("APP_ENV")),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		AirportsFile: strings.TrimSpace(os.Getenv("AIRPORTS_FILE")),
		AirportsDSN:  strings.TrimSpace(os.Getenv("AIRPORTS_DSN")),

		AtlasReply:  atlasReply,
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		RedisAddr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),
		RateLimitRPS:  getInt("RATE_LIMIT_RPS", 0),

		ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 20*time.Second),
		WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 20*time.Second),
		ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// IsLocal reports whether the service runs on a developer machine.
func (e Env) IsLocal() bool {
	return strings.EqualFold(e.AppEnv, "local")
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
