package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/filecache"
	"github.com/unkn0wn-root/filecache/codec"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FILECACHE_DIR", "")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "filecache", cfg.App)
	require.Equal(t, "items.json", cfg.File)

	f, err := cfg.FileFormat()
	require.NoError(t, err)
	require.Equal(t, filecache.FormatJSON, f)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, codec.JSON{}, opts.Codec)
	require.Zero(t, opts.MaxFileSize)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FILECACHE_DIR", dir)
	t.Setenv("FILECACHE_FORMAT", "csv")
	t.Setenv("FILECACHE_ENCODING", "msgpack")
	t.Setenv("FILECACHE_MAX_FILE_SIZE", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	f, err := cfg.FileFormat()
	require.NoError(t, err)
	require.Equal(t, filecache.FormatCSV, f)

	opts, err := cfg.Options()
	require.NoError(t, err)
	require.Equal(t, codec.Msgpack{}, opts.Codec)
	require.Equal(t, 1024, opts.MaxFileSize)

	p, err := opts.Resolver.Resolve("todos.csv")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "todos.csv"), p)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for k, v := range map[string]string{
		"FILECACHE_FORMAT":        "xml",
		"FILECACHE_ENCODING":      "bson",
		"FILECACHE_MAX_FILE_SIZE": "-1",
	} {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load()
			require.Error(t, err)
		})
	}
	t.Run("not a number", func(t *testing.T) {
		t.Setenv("FILECACHE_MAX_FILE_SIZE", "lots")
		_, err := Load()
		require.Error(t, err)
	})
}
