package ports

import (
	"context"
	"time"
)

// Secret keys persisted in the secure key store.
const (
	SecretKeySeed     = "seed"
	SecretKeyPassword = "password"
)

// SecureKeyStore is opaque secret storage for the wallet seed and unlock
// password.
type SecureKeyStore interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// HeightOracle reports the best known chain height from a source other than
// the node itself.
type HeightOracle interface {
	BestHeight(ctx context.Context) (int32, error)
}

// RateCache is an optional shared cache for the exchange-rate snapshot.
type RateCache interface {
	// Get returns the cached rate and whether one was present.
	Get(ctx context.Context) (float64, bool, error)
	Set(ctx context.Context, rate float64, ttl time.Duration) error
}

// Notifier delivers a user-facing notification. Delivery itself is outside
// this daemon; implementations forward to whatever the host platform uses.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// NavigationState answers which client screen is currently active. Used to
// decide between an in-screen alert and a notification for incoming
// payments.
type NavigationState interface {
	CurrentScreen() string
}

// HealthChecker verifies connectivity of one dependency.
type HealthChecker interface {
	Name() string
	Healthy(ctx context.Context) error
}
