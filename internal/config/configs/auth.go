package configs

import "time"

// Auth configures session-token issuance. Secret signs the HS256 claims
// tokens; TokenTTL is the fixed expiration window, defaulting to 7 days.
type Auth struct {
	// Secret is the shared signing key. The default exists so a dev
	// instance starts without configuration; override it in production.
	Secret string `env:"SECRET" envDefault:"default_jwt_secret_key"`
	// TokenTTL is the lifetime of an issued token.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}
