package driven

// ConfigStore holds cinematch settings as flat dot keys ("posters.api_key").
// Typed getters return the zero value when a key is missing or holds a
// different type; the settings service applies defaults on top.
type ConfigStore interface {
	// Get returns the raw value stored under key.
	Get(key string) (any, bool)

	GetString(key string) string

	// GetInt accepts any integer representation the backend produces.
	GetInt(key string) int

	// GetFloat accepts integers too, so "rate_per_second = 5" reads as 5.0.
	GetFloat(key string) float64

	GetBool(key string) bool

	// Set stores value under key and persists it.
	Set(key string, value any) error

	// Unset removes key and persists the change. Removing a missing key is
	// not an error.
	Unset(key string) error

	// Save persists the current values.
	Save() error

	// Load re-reads values from the backend.
	Load() error

	// Path identifies the backing file, or ":memory:".
	Path() string
}
