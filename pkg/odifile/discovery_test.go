package odifile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odilint/odilint/pkg/odifile"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"CALD_TXSTA_DEV_20240115.txt",
		"CALD_TXSTA_DEV_20240116.txt",
		"CALD_TXTA_DEV_20240115.txt",
		"cald_txsta_dev_20240117.TXT",
		"notes.md",
	} {
		writeFile(t, dir, name, "x\n")
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "CALD_TXSTA_SUBDIR.txt"), 0755))

	t.Run("matches tag case-insensitively", func(t *testing.T) {
		paths, err := odifile.Discover(dir, "TXSTA")
		require.NoError(t, err)
		var names []string
		for _, p := range paths {
			names = append(names, filepath.Base(p))
		}
		assert.Equal(t, []string{
			"CALD_TXSTA_DEV_20240115.txt",
			"CALD_TXSTA_DEV_20240116.txt",
			"cald_txsta_dev_20240117.TXT",
		}, names)
	})

	t.Run("tag containment does not cross templates", func(t *testing.T) {
		paths, err := odifile.Discover(dir, "TXTA")
		require.NoError(t, err)
		require.Len(t, paths, 1)
		assert.Equal(t, "CALD_TXTA_DEV_20240115.txt", filepath.Base(paths[0]))
	})

	t.Run("unmatched tag yields nothing", func(t *testing.T) {
		paths, err := odifile.Discover(dir, "OGPO")
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("all txt files", func(t *testing.T) {
		paths, err := odifile.DiscoverAll(dir)
		require.NoError(t, err)
		assert.Len(t, paths, 4)
	})
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := odifile.Discover(filepath.Join(t.TempDir(), "absent"), "TXSTA")
	require.Error(t, err)
}
