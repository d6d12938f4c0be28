package reporting

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitstop/backend/internal/infrastructure/config"
)

func TestFSArchive_Store(t *testing.T) {
	dir := t.TempDir()
	archive, err := NewFSArchive(dir)
	require.NoError(t, err)

	pdf := []byte("%PDF-1.7 fake content")
	path, err := archive.Store(context.Background(), "bookings-report-2024-03-15.pdf", pdf)

	require.NoError(t, err)
	assert.Contains(t, path, time.Now().Format("2006"))

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pdf, stored)
}

func TestNewFSArchive_RequiresBasePath(t *testing.T) {
	_, err := NewFSArchive("")
	assert.Error(t, err)
}

func TestNewArchive_Drivers(t *testing.T) {
	t.Run("off returns nil archive", func(t *testing.T) {
		archive, err := NewArchive(config.ArchiveConfig{Driver: "off"}, nil)
		require.NoError(t, err)
		assert.Nil(t, archive)
	})

	t.Run("empty driver means off", func(t *testing.T) {
		archive, err := NewArchive(config.ArchiveConfig{}, nil)
		require.NoError(t, err)
		assert.Nil(t, archive)
	})

	t.Run("fs driver", func(t *testing.T) {
		archive, err := NewArchive(config.ArchiveConfig{Driver: "fs", BasePath: t.TempDir()}, nil)
		require.NoError(t, err)
		assert.IsType(t, &FSArchive{}, archive)
	})

	t.Run("s3 driver requires bucket", func(t *testing.T) {
		_, err := NewArchive(config.ArchiveConfig{Driver: "s3"}, nil)
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewArchive(config.ArchiveConfig{Driver: "ftp"}, nil)
		assert.Error(t, err)
	})
}
