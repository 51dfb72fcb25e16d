package filecache

import "io/fs"

const (
	// DefaultApp names the directory UserDir uses when Options.Resolver is nil.
	DefaultApp      = "filecache"
	defaultFileMode = fs.FileMode(0o644)
	defaultDirMode  = fs.FileMode(0o755)
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
