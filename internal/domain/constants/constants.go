// Package constants defines shared domain-level constant values.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ProviderTypeEmail is the authentication provider for email/password credentials.
const ProviderTypeEmail = "email"
