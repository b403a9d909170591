// Package config loads trainsim settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/railtoy/track"
)

type Config struct {
	Route    string
	Motion   string
	Throttle float64

	Tick        time.Duration
	MaxTicks    int
	Realtime    bool
	ReportEvery int

	SpringFrequency float64
	SpringDamping   float64

	MetricsAddr string
	LogLevel    string
}

// Load reads a .env file from the working directory, if there is one, and
// then the environment. Variables that are unset or don't parse keep their
// defaults.
func Load() *Config {
	// Values already in the environment win over the file.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() *Config {
	return &Config{
		Route:    getEnv("TRAINSIM_ROUTE", "straight"),
		Motion:   getEnv("TRAINSIM_MOTION", "linear"),
		Throttle: getEnvAsFloat("TRAINSIM_THROTTLE", 0.5),

		Tick:        getEnvAsDuration("TRAINSIM_TICK", 16*time.Millisecond),
		MaxTicks:    getEnvAsInt("TRAINSIM_MAX_TICKS", 10000),
		Realtime:    getEnvAsBool("TRAINSIM_REALTIME", false),
		ReportEvery: getEnvAsInt("TRAINSIM_REPORT_EVERY", 30),

		SpringFrequency: getEnvAsFloat("TRAINSIM_SPRING_FREQUENCY", 2.0),
		SpringDamping:   getEnvAsFloat("TRAINSIM_SPRING_DAMPING", 1.0),

		MetricsAddr: getEnv("TRAINSIM_METRICS_ADDR", ""),
		LogLevel:    getEnv("TRAINSIM_LOG_LEVEL", "info"),
	}
}

// Validate reports every setting that is out of range.
func (c *Config) Validate() error {
	var errs []error
	if _, err := track.ParseRouteKind(c.Route); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.MotionModel(); err != nil {
		errs = append(errs, err)
	}
	if c.Throttle < 0 || c.Throttle > 1 {
		errs = append(errs, fmt.Errorf("throttle %g not in [0, 1]", c.Throttle))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick %v must be positive", c.Tick))
	}
	if c.MaxTicks <= 0 {
		errs = append(errs, fmt.Errorf("max ticks %d must be positive", c.MaxTicks))
	}
	if c.ReportEvery < 0 {
		errs = append(errs, fmt.Errorf("report interval %d must not be negative", c.ReportEvery))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// MotionModel returns the motion model named by c.Motion.
func (c *Config) MotionModel() (track.MotionModel, error) {
	switch strings.ToLower(c.Motion) {
	case "linear":
		return track.DefaultMotion, nil
	case "spring":
		if c.SpringFrequency <= 0 || c.SpringDamping < 0 {
			return nil, fmt.Errorf("spring frequency %g and damping %g must be positive",
				c.SpringFrequency, c.SpringDamping)
		}
		return track.SpringMotion{Frequency: c.SpringFrequency, Damping: c.SpringDamping}, nil
	default:
		return nil, fmt.Errorf("unknown motion model %q", c.Motion)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}
