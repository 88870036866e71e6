package render

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/prettydoc/pkg/errors"
)

// Default configuration values.
const (
	DefaultMaxWidth    = 32
	DefaultIndentWidth = 4
)

// Config controls how a document is laid out.
type Config struct {
	MaxWidth      int  `toml:"max_width"`       // Columns per line, must be positive
	IndentWidth   int  `toml:"indent_width"`    // Columns per indentation level
	UseTabs       bool `toml:"use_tabs"`        // Write one tab per indentation level
	BreakLongText bool `toml:"break_long_text"` // Wrap overlong text at blanks
}

// DefaultConfig returns a 32 column layout with four-space indentation.
func DefaultConfig() Config {
	return Config{
		MaxWidth:    DefaultMaxWidth,
		IndentWidth: DefaultIndentWidth,
	}
}

// Validate reports an INVALID_CONFIG error if c cannot be used for rendering.
func (c Config) Validate() error {
	if c.MaxWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_width must be positive, got %d", c.MaxWidth)
	}
	if c.IndentWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "indent_width must not be negative, got %d", c.IndentWidth)
	}
	return nil
}

// ParseConfig decodes a TOML configuration. Keys that are not set keep their
// [DefaultConfig] values; unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
