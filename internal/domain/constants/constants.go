// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Resource bucket types accepted by the storage endpoints.
const (
	ResourceAvatar       = "avatar"
	ResourceStartupLogo  = "startup-logo"
	ResourceStructLogo   = "structure-logo"
	ResourceProductImage = "product-image"
)
