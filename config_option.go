package forgery

import (
	"time"

	"github.com/rossipedia/Forgery/logger"
	"github.com/rossipedia/Forgery/schema"
)

// Option use functional option for mapper Config.
type Option func(c *Config)

// WithNamingStrategy set schema namer.
func WithNamingStrategy(namer schema.Namer) Option {
	return func(c *Config) {
		c.NamingStrategy = namer
	}
}

// WithTablePrefix prefix the table name of every type that declares none.
func WithTablePrefix(prefix string) Option {
	return func(c *Config) {
		c.NamingStrategy = schema.NamingStrategy{TablePrefix: prefix}
	}
}

// WithEnumSaveStrategy set the module level enum save strategy.
func WithEnumSaveStrategy(strategy schema.EnumSaveStrategy) Option {
	return func(c *Config) {
		c.EnumSaveStrategy = strategy
	}
}

// WithNowFunc set now func.
func WithNowFunc(fn func() time.Time) Option {
	return func(c *Config) {
		c.NowFunc = fn
	}
}

// WithLogger set logger.
func WithLogger(logger logger.Interface) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
