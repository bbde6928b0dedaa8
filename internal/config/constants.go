package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 60 * time.Second
	ServerReadTimeout     = 30 * time.Second
	ServerWriteTimeout    = 60 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for health checks
const DBPingTimeout = 5 * time.Second

// Sessions
const SessionMaxAge = 24 * time.Hour

// Federated login state lifetime
const OAuthStateTTL = 10 * time.Minute

// Background job intervals
const CleanupJobInterval = 5 * time.Minute

// Login throttling, per client IP
const (
	LoginRateLimit  = 5
	LoginRateWindow = time.Minute
)
