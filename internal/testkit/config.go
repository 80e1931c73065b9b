// Package testkit provides Postgres and Redis for integration tests using testcontainers.
package testkit

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds environment-driven configuration for integration test infrastructure.
type Config struct {
	PGImage        string
	RedisImage     string
	PGDSN          string        // If set, skip Postgres container.
	RedisAddr      string        // If set, skip Redis container.
	StartupTimeout time.Duration // Max time to wait for containers to become ready.
	KeepContainers bool          // If true, do not terminate containers on shutdown.
}

// LoadConfig reads test infrastructure settings from TEST_* environment variables.
// TEST_STARTUP_TIMEOUT accepts a duration ("2m") or plain seconds.
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("test_pg_image", "postgres:18.1-alpine")
	v.SetDefault("test_redis_image", "redis:8.4.0-alpine")
	v.SetDefault("test_pg_dsn", "")
	v.SetDefault("test_redis_addr", "")
	v.SetDefault("test_startup_timeout", "90s")
	v.SetDefault("keep_containers", false)

	return Config{
		PGImage:        v.GetString("test_pg_image"),
		RedisImage:     v.GetString("test_redis_image"),
		PGDSN:          v.GetString("test_pg_dsn"),
		RedisAddr:      v.GetString("test_redis_addr"),
		StartupTimeout: startupTimeout(v),
		KeepContainers: v.GetBool("keep_containers"),
	}
}

func startupTimeout(v *viper.Viper) time.Duration {
	raw := v.GetString("test_startup_timeout")
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	fmt.Fprintf(os.Stderr, "testkit: invalid value %q for TEST_STARTUP_TIMEOUT, using default 90s\n", raw)
	return 90 * time.Second
}
