package landing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	platformi18n "github.com/flaskhub/landing/internal/platform/i18n"
	"github.com/flaskhub/landing/internal/services/landing/content"
	"github.com/flaskhub/landing/internal/services/landing/i18n"
	"github.com/flaskhub/landing/internal/services/landing/platform/pagerender"
	"github.com/flaskhub/landing/internal/services/landing/static"
)

// DefaultExportAssetBaseURL keeps exported pages relocatable.
const DefaultExportAssetBaseURL = "static"

// IndexFile is the exported page file name.
const IndexFile = "index.html"

// ExportOptions configures a static export.
type ExportOptions struct {
	Dir string
	// Lang selects the page locale; empty means the default locale.
	Lang         string
	AssetBaseURL string
}

// Export writes the landing page and its static assets under opts.Dir.
func Export(ctx context.Context, opts ExportOptions) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		return errors.New("export dir is required")
	}
	tag := platformi18n.DefaultTag()
	if lang := strings.TrimSpace(opts.Lang); lang != "" {
		parsed, ok := platformi18n.ParseTag(lang)
		if !ok {
			return fmt.Errorf("unsupported export language %q", lang)
		}
		tag = parsed
	}
	assetBaseURL := strings.TrimSpace(opts.AssetBaseURL)
	if assetBaseURL == "" {
		assetBaseURL = DefaultExportAssetBaseURL
	}

	collections := content.Default()
	if err := collections.Validate(); err != nil {
		return fmt.Errorf("validate content: %w", err)
	}
	page, err := pagerender.Bytes(ctx, landingPage(i18n.For(tag), assetBaseURL, collections))
	if err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, IndexFile), page, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", IndexFile, err)
	}
	if err := exportStatic(filepath.Join(dir, "static")); err != nil {
		return err
	}
	log.Printf("landing exported dir=%s lang=%s", dir, tag)
	return nil
}

func exportStatic(dir string) error {
	return fs.WalkDir(static.FS, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if entry.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create static dir: %w", err)
			}
			return nil
		}
		data, err := fs.ReadFile(static.FS, path)
		if err != nil {
			return fmt.Errorf("read static %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write static %s: %w", path, err)
		}
		return nil
	})
}
