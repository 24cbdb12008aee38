package matcore

import (
	"encoding/binary"
)

// config holds optional configuration for Create.
type config struct {
	description string
	endianness  binary.ByteOrder
	compression bool
}

// Option configures optional parameters for Create.
type Option func(*config)

// WithEndianness sets the byte order for v5 files.
// Valid values: binary.LittleEndian, binary.BigEndian.
//
// Default: binary.LittleEndian
func WithEndianness(order binary.ByteOrder) Option {
	return func(c *config) {
		c.endianness = order
	}
}

// WithDescription sets the file description (v5 only, max 116 bytes).
// If longer than 116 bytes, it is truncated.
func WithDescription(desc string) Option {
	return func(c *config) {
		if len(desc) > 116 {
			desc = desc[:116]
		}
		c.description = desc
	}
}

// WithCompression enables miCOMPRESSED wrapping for every variable
// written in a v5 session. It has no effect on v4 sessions, which have
// no compressed element type.
func WithCompression(enabled bool) Option {
	return func(c *config) {
		c.compression = enabled
	}
}

func defaultConfig() *config {
	return &config{
		description: "MATLAB MAT-file, created by scigolib/matcore",
		endianness:  binary.LittleEndian,
		compression: false,
	}
}

func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}
