package store

// Config selects and configures the store backend.
type Config struct {
	// Dialect is either postgres or memory.
	Dialect string `conf:"dialect" yaml:"dialect" json:"dialect"`
	DSN     string `conf:"dsn"     yaml:"dsn"     json:"dsn"`
}
