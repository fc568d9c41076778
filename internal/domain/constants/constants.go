// Package constants holds shared configuration values.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Email providers
const (
	EmailProviderPostmark = "postmark"
	EmailProviderLog      = "log"
)
