package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	RedisAddress          string
	PaymentGatewayAddress string
	JWTSecret             string
	TopupPollInterval     time.Duration
	WorkerPoolSize        int
	ShutdownTimeout       time.Duration
	MaxTopupsBatch        int
	RiderLocationTTL      time.Duration
	// DebugSkipPayment lets order creation bypass gateway verification,
	// mirroring the debug save path of the original checkout.
	DebugSkipPayment bool
}

const (
	defaultRunAddress        = ":8080"
	defaultRedisAddress      = "localhost:6379"
	defaultJWTSecret         = "change-me-in-production"
	defaultTopupPollInterval = 5 * time.Second
	defaultWorkerPoolSize    = 4
	defaultShutdownTimeout   = 10 * time.Second
	defaultMaxTopupsBatch    = 32
	defaultRiderLocationTTL  = 2 * time.Minute
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		RedisAddress:          getString(lookup, "REDIS_ADDRESS", defaultRedisAddress),
		PaymentGatewayAddress: getString(lookup, "PAYMENT_GATEWAY_ADDRESS", ""),
		JWTSecret:             getString(lookup, "JWT_SECRET", defaultJWTSecret),
		TopupPollInterval:     getDuration(lookup, "TOPUP_POLL_INTERVAL", defaultTopupPollInterval),
		WorkerPoolSize:        getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MaxTopupsBatch:        getInt(lookup, "POLL_BATCH_SIZE", defaultMaxTopupsBatch),
		RiderLocationTTL:      getDuration(lookup, "RIDER_LOCATION_TTL", defaultRiderLocationTTL),
		DebugSkipPayment:      getBool(lookup, "DEBUG_SKIP_PAYMENT", false),
	}

	fs := flag.NewFlagSet("inkroute", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.TopupPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		locationTTLStr     = cfg.RiderLocationTTL.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for the rider location cache")
	fs.StringVar(&cfg.PaymentGatewayAddress, "p", cfg.PaymentGatewayAddress, "Payment gateway base URL")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent settlement workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between top-up settlement polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.MaxTopupsBatch, "poll-batch", cfg.MaxTopupsBatch, "Maximum top-ups per polling batch")
	fs.StringVar(&locationTTLStr, "location-ttl", locationTTLStr, "Rider live location expiry")
	fs.BoolVar(&cfg.DebugSkipPayment, "debug-skip-payment", cfg.DebugSkipPayment, "Skip payment verification on order creation")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TopupPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RiderLocationTTL, err = time.ParseDuration(locationTTLStr); err != nil {
		return nil, fmt.Errorf("invalid location ttl: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.MaxTopupsBatch <= 0 {
		cfg.MaxTopupsBatch = defaultMaxTopupsBatch
	}

	if cfg.TopupPollInterval <= 0 {
		cfg.TopupPollInterval = defaultTopupPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RiderLocationTTL <= 0 {
		cfg.RiderLocationTTL = defaultRiderLocationTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.PaymentGatewayAddress == "" && !cfg.DebugSkipPayment {
		return nil, fmt.Errorf("payment gateway address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
