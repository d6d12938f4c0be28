package reporting

import (
	"embed"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pitstop/backend/internal/domain/report"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "layout.html"

// TemplateStore resolves report templates. It supports loading from an
// external directory (for customization) with fallback to the embedded
// defaults, mirroring how print templates are usually overridden in the
// field without a rebuild.
type TemplateStore struct {
	externalDir string
	logoBase64  string
}

// TemplateStoreConfig configures the template store
type TemplateStoreConfig struct {
	// ExternalDir is a directory of override templates. Empty or missing
	// files fall back to the embedded set.
	ExternalDir string
	// LogoPath points at a PNG used as the report header logo. A missing
	// file is not an error; reports render without a logo.
	LogoPath string
}

// NewTemplateStore creates a template store
func NewTemplateStore(cfg TemplateStoreConfig) *TemplateStore {
	store := &TemplateStore{externalDir: cfg.ExternalDir}

	if cfg.LogoPath != "" {
		if data, err := os.ReadFile(cfg.LogoPath); err == nil {
			store.logoBase64 = base64.StdEncoding.EncodeToString(data)
		}
	}

	return store
}

// load reads a template file, preferring the external directory.
func (s *TemplateStore) load(name string) (string, error) {
	if s.externalDir != "" {
		if content, err := os.ReadFile(filepath.Join(s.externalDir, name)); err == nil {
			return string(content), nil
		}
	}

	content, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Layout returns the base layout template shared by all report types.
func (s *TemplateStore) Layout() (string, error) {
	return s.load(layoutFile)
}

// Fragment returns the content fragment for a report type.
func (s *TemplateStore) Fragment(t report.Type) (string, error) {
	return s.load(string(t) + ".html")
}

// LogoBase64 returns the base64-encoded header logo, or "" when no logo
// resource was found.
func (s *TemplateStore) LogoBase64() string {
	return s.logoBase64
}
