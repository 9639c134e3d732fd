package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "staymarket"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	// Listing results stay fresh for five minutes before a re-fetch.
	DefaultCacheFreshnessWindow = 5 * time.Minute
	DefaultPageSize             = 9
	DefaultFeaturedLimit        = 6
	DefaultFetchRetries         = 2
	// 0 means seed from the clock at startup.
	DefaultSyntheticSeed = 0

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 5 * 1024 * 1024 // 5MB, listing images ride through

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
