package filecache

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDirResolver(t *testing.T) {
	base := t.TempDir()
	r := Dir(base)

	got, err := r.Resolve("todos.json")
	if err != nil || got != filepath.Join(base, "todos.json") {
		t.Fatalf("Resolve = %q, %v", got, err)
	}
	got, err = r.Resolve("a/../b/todos.csv")
	if err != nil || got != filepath.Join(base, "b", "todos.csv") {
		t.Fatalf("Resolve cleaned = %q, %v", got, err)
	}

	for _, bad := range []string{"", ".", "..", "../escape", "/etc/passwd", "a/../../escape"} {
		if _, err := r.Resolve(bad); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("Resolve(%q) err=%v, want ErrInvalidName", bad, err)
		}
	}

	if _, err := Dir("").Resolve("x"); err == nil {
		t.Fatalf("empty base should fail")
	}
}

func TestUserDirEnvOverride(t *testing.T) {
	base := t.TempDir()
	t.Setenv(EnvDir, base)

	got, err := UserDir("todo").Resolve("items.json")
	if err != nil || got != filepath.Join(base, "items.json") {
		t.Fatalf("Resolve = %q, %v", got, err)
	}
}

func TestUserDirFallsBackToConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is linux specific")
	}
	cfg := t.TempDir()
	t.Setenv(EnvDir, "")
	t.Setenv("XDG_CONFIG_HOME", cfg)

	got, err := UserDir("").Resolve("items.json")
	if err != nil || got != filepath.Join(cfg, DefaultApp, "items.json") {
		t.Fatalf("Resolve = %q, %v", got, err)
	}
}

func TestDefaultResolverUnresolvable(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is linux specific")
	}
	t.Setenv(EnvDir, "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	c := New[task](Options{})
	mustOpError(t, c.Save(context.Background(), "todos.json", FormatJSON), ErrDirectoryUnresolvable)
}
