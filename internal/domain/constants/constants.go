// Package constants holds identifiers shared by configuration and wiring.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store providers
const (
	StoreProviderFirestore = "firestore"
	StoreProviderMemory    = "memory"
)

// Identity providers
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)
