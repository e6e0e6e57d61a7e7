package config

import "os"

const defaultSecret = "popcornhour-dev-secret-change-me"

// loadSecret returns the key used to sign both session cookies and API tokens.
func loadSecret() []byte {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = defaultSecret
	}
	return []byte(secret)
}

// UsingDefaultSecret reports whether SECRET_KEY was left unset.
func (c *Config) UsingDefaultSecret() bool {
	return string(c.SecretKey) == defaultSecret
}
