package log

// Config controls the global logger.
type Config struct {
	// Name is attached to every entry as the "service" field.
	Name string `conf:"name" yaml:"name" json:"name"`
	// Level is one of debug, info, warn, error.
	Level string `conf:"level" yaml:"level" json:"level"`
	// Encoding is either json or console.
	Encoding string `conf:"encoding" yaml:"encoding" json:"encoding"`

	File FileConfig `conf:"file" yaml:"file" json:"file"`
}

// FileConfig enables rotated file output in addition to stderr.
type FileConfig struct {
	Enabled    bool   `conf:"enabled"     yaml:"enabled"     json:"enabled"`
	Path       string `conf:"path"        yaml:"path"        json:"path"`
	MaxSize    int    `conf:"max_size"    yaml:"max_size"    json:"max_size"`
	MaxBackups int    `conf:"max_backups" yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `conf:"max_age"     yaml:"max_age"     json:"max_age"`
	Compress   bool   `conf:"compress"    yaml:"compress"    json:"compress"`
}
