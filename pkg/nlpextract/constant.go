package nlpextract

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// DefaultTokenTTL is how long an access token is reused before a
	// fresh one is requested. Tokens stay valid longer server-side;
	// the margin absorbs clock drift.
	DefaultTokenTTL = 50 * time.Minute

	// tokenEndpoint exchanges app credentials for an access token
	tokenEndpoint = "/v1/auth/token"

	// extractEndpoint runs field extraction on free text
	extractEndpoint = "/v1/extract"

	// tokenCacheKey is the single key used in the token cache
	tokenCacheKey = "access_token"
)
