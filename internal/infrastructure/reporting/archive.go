package reporting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/pitstop/backend/internal/infrastructure/config"
)

// Archive stores a copy of each emitted PDF. Archiving is best-effort
// decoration on the report pipeline: a failed Store is logged by the
// caller and never fails the request.
type Archive interface {
	// Store persists the PDF under the given filename and returns the
	// location it was written to.
	Store(ctx context.Context, filename string, pdf []byte) (string, error)
}

// NewArchive builds the archive backend selected by configuration.
// Driver "off" returns nil; callers treat a nil Archive as disabled.
func NewArchive(cfg config.ArchiveConfig, logger *zap.Logger) (Archive, error) {
	switch cfg.Driver {
	case "", "off":
		return nil, nil
	case "fs":
		return NewFSArchive(cfg.BasePath)
	case "s3":
		return NewS3Archive(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown archive driver %q", cfg.Driver)
	}
}

// FSArchive stores PDFs on the local filesystem, partitioned by date.
type FSArchive struct {
	basePath string
}

// NewFSArchive creates a filesystem archive rooted at basePath
func NewFSArchive(basePath string) (*FSArchive, error) {
	if basePath == "" {
		return nil, errors.New("archive base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &FSArchive{basePath: basePath}, nil
}

// Store writes the PDF under <basePath>/<YYYY>/<MM>/<filename>.
func (a *FSArchive) Store(_ context.Context, filename string, pdf []byte) (string, error) {
	now := time.Now()
	dir := filepath.Join(a.basePath, now.Format("2006"), now.Format("01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", NewRenderError(ErrCodeArchiveFailed, "failed to create archive directory", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", NewRenderError(ErrCodeArchiveFailed, "failed to write archived PDF", err)
	}
	return path, nil
}

var _ Archive = (*FSArchive)(nil)
