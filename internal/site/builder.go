// Package site renders every page to HTML files so the blog can be hosted
// without the server.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/codeconfidence/internal/content"
	"github.com/codeconfidence/internal/media"
	"github.com/codeconfidence/internal/view"
	"github.com/codeconfidence/web"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StylesheetWriter writes the syntax-highlighting stylesheet.
type StylesheetWriter interface {
	WriteHighlightCSS(w io.Writer) error
}

// Options configures a Builder.
type Options struct {
	Renderer      *view.Renderer
	Stylesheet    StylesheetWriter
	ContentDir    string
	MediaURLPath  string
	ImageMaxWidth int
	Logger        *zap.Logger
	// Concurrency bounds parallel page and media writes. Zero means NumCPU.
	Concurrency   int
}

// Report summarizes one build.
type Report struct {
	Pages int
	Media int
}

// Builder writes the listing, one page per post, the 404 page and assets.
type Builder struct {
	renderer      *view.Renderer
	tmpl          *template.Template
	stylesheet    StylesheetWriter
	contentDir    string
	mediaURLPath  string
	imageMaxWidth int
	logger        *zap.Logger
	limit         int
}

// NewBuilder parses the page templates and returns a Builder.
func NewBuilder(opts Options) (*Builder, error) {
	tmpl, err := view.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	mediaURLPath := "/" + strings.Trim(opts.MediaURLPath, "/")
	if mediaURLPath == "/" {
		mediaURLPath = "/media"
	}
	return &Builder{
		renderer:      opts.Renderer,
		tmpl:          tmpl,
		stylesheet:    opts.Stylesheet,
		contentDir:    opts.ContentDir,
		mediaURLPath:  mediaURLPath,
		imageMaxWidth: opts.ImageMaxWidth,
		logger:        logger,
		limit:         limit,
	}, nil
}

// Build renders the whole site into outDir. Pages are written concurrently and
// the first failure cancels the remaining work.
func (b *Builder) Build(ctx context.Context, outDir string) (Report, error) {
	var report Report

	listing, err := b.renderer.Listing()
	if err != nil {
		return report, fmt.Errorf("render listing: %w", err)
	}
	if err := b.writePage(filepath.Join(outDir, "index.html"), view.TemplateListing, listing); err != nil {
		return report, err
	}
	if err := b.writePage(filepath.Join(outDir, "404.html"), view.TemplateNotFound, b.renderer.NotFound("")); err != nil {
		return report, err
	}
	report.Pages = 2

	cards := listing.Content.(view.Home).Cards
	files, err := b.mediaFiles(cards)
	if err != nil {
		return report, err
	}

	var pages, copied atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.limit)

	g.Go(func() error { return b.writeAssets(outDir) })

	for _, card := range cards {
		slug := card.To
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			target, err := pagePath(outDir, slug)
			if err != nil {
				return err
			}
			page, err := b.renderer.Detail(slug)
			if err != nil {
				return fmt.Errorf("render %s: %w", slug, err)
			}
			if err := b.writePage(target, view.TemplateDetail, page); err != nil {
				return err
			}
			pages.Add(1)
			return nil
		})
	}

	mediaRoot := filepath.Join(outDir, filepath.FromSlash(strings.Trim(b.mediaURLPath, "/")))
	for _, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := filepath.Join(b.contentDir, filepath.FromSlash(rel))
			dst := filepath.Join(mediaRoot, filepath.FromSlash(rel))
			if err := media.CopyFile(src, dst, b.imageMaxWidth); err != nil {
				return err
			}
			copied.Add(1)
			return nil
		})
	}

	err = g.Wait()
	report.Pages += int(pages.Load())
	report.Media = int(copied.Load())
	if err != nil {
		return report, err
	}

	b.logger.Info("site built",
		zap.String("out", outDir),
		zap.Int("pages", report.Pages),
		zap.Int("media", report.Media),
	)
	return report, nil
}

func (b *Builder) writePage(target, name string, page view.Page) error {
	var buf bytes.Buffer
	if err := view.Execute(b.tmpl, &buf, name, page); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return writeFile(target, buf.Bytes())
}

// writeAssets copies the embedded static files and the highlight stylesheet.
func (b *Builder) writeAssets(outDir string) error {
	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		return err
	}
	err = fs.WalkDir(static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, name)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(outDir, "static", filepath.FromSlash(name)), data)
	})
	if err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	if b.stylesheet == nil {
		return nil
	}
	var css bytes.Buffer
	if err := b.stylesheet.WriteHighlightCSS(&css); err != nil {
		return fmt.Errorf("highlight stylesheet: %w", err)
	}
	return writeFile(filepath.Join(outDir, "highlight.css"), css.Bytes())
}

// mediaFiles lists every non-markdown file in the content directory, relative
// to it. Cover images that point at missing local files are logged.
func (b *Builder) mediaFiles(cards []view.ListingCard) ([]string, error) {
	if b.contentDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(b.contentDir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	present := make(map[string]bool)
	err := filepath.WalkDir(b.contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if path != b.contentDir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || content.IsMarkdown(name) {
			return nil
		}
		rel, err := filepath.Rel(b.contentDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		present[rel] = true
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan media: %w", err)
	}

	for _, card := range cards {
		if rel, ok := content.LocalMediaPath(b.mediaURLPath, card.Thumbnail); ok && !present[rel] {
			b.logger.Warn("cover image not found", zap.String("slug", card.To), zap.String("image", card.Thumbnail))
		}
	}
	return files, nil
}

// pagePath maps a slug to its index.html under outDir.
func pagePath(outDir, slug string) (string, error) {
	rel := filepath.FromSlash(strings.Trim(slug, "/"))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("slug %q escapes the output directory", slug)
	}
	return filepath.Join(outDir, rel, "index.html"), nil
}

func writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
