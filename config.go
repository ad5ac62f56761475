// Store configuration and its YAML loader.
package coldb

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxLineSize bounds a single line read during load (1MB).
const DefaultMaxLineSize = 1024 * 1024

// Config holds store configuration options. The zero value is usable.
type Config struct {
	Format        int          `yaml:"format"`         // 1=text, 2=JSONL
	Checksum      int          `yaml:"checksum"`       // 1=xxHash3, 2=FNV1a, 3=Blake2b
	SyncWrites    bool         `yaml:"sync_writes"`    // Call fsync after each save
	MaxLineSize   int          `yaml:"max_line_size"`  // Longest line accepted on load
	CheckExternal bool         `yaml:"check_external"` // Warn when the file changed behind our back
	Logger        *slog.Logger `yaml:"-"`
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.Format == 0 {
		c.Format = FormatText
	}
	if c.Checksum == 0 {
		c.Checksum = AlgXXHash3
	}
	if c.MaxLineSize == 0 {
		c.MaxLineSize = DefaultMaxLineSize
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// validate rejects out-of-range enum values.
func (c Config) validate() error {
	if c.Format != FormatText && c.Format != FormatJSONL {
		return fmt.Errorf("config: unknown format %d", c.Format)
	}
	if c.Checksum < AlgXXHash3 || c.Checksum > AlgBlake2b {
		return fmt.Errorf("config: unknown checksum algorithm %d", c.Checksum)
	}
	if c.MaxLineSize < 0 {
		return fmt.Errorf("config: negative max_line_size %d", c.MaxLineSize)
	}
	return nil
}

// LoadConfig reads a Config from a YAML file. Unset fields keep their
// zero value and receive defaults when the store is opened.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.withDefaults().validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
