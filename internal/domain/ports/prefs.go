package ports

import "context"

// ThemeKey is the fixed key the persisted theme lives under, shared by
// every PreferenceStore implementation.
const ThemeKey = "theme"

// PreferenceStore is durable key-value storage for user preferences.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
