package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/algoviz/logger"
)

// Environment variables honoured by ApplyEnv.
const (
	EnvAddr        = "ALGOVIZ_ADDR"
	EnvLogMode     = "ALGOVIZ_LOG_MODE"
	EnvCORSOrigins = "ALGOVIZ_CORS_ORIGINS" // comma separated
	EnvMaxN        = "ALGOVIZ_MAX_N"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// LookupEnv returns a LookupFunc over the process environment, falling back
// to the variables defined in the dotenv files at paths. The process
// environment wins. A missing file is an error.
func LookupEnv(paths ...string) (LookupFunc, error) {
	file := map[string]string{}
	if len(paths) > 0 {
		m, err := godotenv.Read(paths...)
		if err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		file = m
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]

		return v, ok
	}, nil
}

// ApplyEnv overlays the ALGOVIZ_* variables found by lookup onto c and
// validates the result. Empty values are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)

		return v, ok && v != ""
	}

	if v, ok := get(EnvAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := get(EnvLogMode); ok {
		m, err := logger.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvLogMode, err)
		}
		c.Server.LogMode = m
	}
	if v, ok := get(EnvCORSOrigins); ok {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.CORSOrigins = origins
	}
	if v, ok := get(EnvMaxN); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidConfig, EnvMaxN, v)
		}
		c.Server.Limits.MaxN = n
	}

	return c.Validate()
}
