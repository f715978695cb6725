// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Audit event types published to the event stream.
const (
	EventTypeCredentialAccess = "credential_access"
	EventTypeOAuthAppUsage    = "oauth_app_usage"
	EventTypeRefreshAlert     = "refresh_alert"
)
