package filecache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvDir overrides the base directory of UserDir resolvers.
const EnvDir = "FILECACHE_DIR"

var (
	ErrInvalidName = errors.New("filecache: invalid file name")
	errNoBaseDir   = errors.New("filecache: base directory not set")
)

// Resolver turns a logical file name into a concrete path.
type Resolver interface {
	Resolve(name string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(name string) (string, error)

func (f ResolverFunc) Resolve(name string) (string, error) { return f(name) }

// Dir resolves names relative to a fixed base directory.
func Dir(base string) Resolver {
	return ResolverFunc(func(name string) (string, error) {
		if base == "" {
			return "", errNoBaseDir
		}
		abs, err := filepath.Abs(base)
		if err != nil {
			return "", fmt.Errorf("filecache: resolve base: %w", err)
		}
		return joinName(abs, name)
	})
}

// UserDir resolves names under $FILECACHE_DIR when set, else under
// os.UserConfigDir()/app. It fails when neither can be determined.
func UserDir(app string) Resolver {
	return ResolverFunc(func(name string) (string, error) {
		base, err := userBase(app)
		if err != nil {
			return "", err
		}
		return joinName(base, name)
	})
}

func userBase(app string) (string, error) {
	if d, ok := os.LookupEnv(EnvDir); ok && d != "" {
		return filepath.Abs(d)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("filecache: user config dir: %w", err)
	}
	if dir == "" {
		return "", errNoBaseDir
	}
	return filepath.Join(dir, coalesce(app, DefaultApp)), nil
}

// joinName keeps name inside base.
func joinName(base, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	clean := filepath.Clean(name)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(base, clean), nil
}
