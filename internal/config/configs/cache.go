package configs

import "time"

// Cache configures the in-process read cache for ended campaigns.
type Cache struct {
	// Size is the freecache arena in bytes. Zero disables the cache.
	Size int           `env:"SIZE" envDefault:"33554432"`
	TTL  time.Duration `env:"TTL" envDefault:"1h"`
}
