package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/codeconfidence/internal/db"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Loader reads a content directory into documents.
type Loader struct {
	pipeline     *Pipeline
	mediaURLPath string
	logger       *zap.Logger
}

// NewLoader returns a Loader. Relative frontmatter images are exposed under
// mediaURLPath.
func NewLoader(pipeline *Pipeline, mediaURLPath string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	mediaURLPath = "/" + strings.Trim(mediaURLPath, "/")
	return &Loader{pipeline: pipeline, mediaURLPath: mediaURLPath, logger: logger}
}

// Load returns one document per markdown file under dir, in lexical path
// order with Position set accordingly. Drafts are skipped. A missing dir
// yields no documents.
func (l *Loader) Load(dir string) ([]db.Document, error) {
	files, err := discover(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("content directory does not exist", zap.String("dir", dir))
			return []db.Document{}, nil
		}
		return nil, err
	}

	docs := make([]db.Document, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, rel := range files {
		doc, draft, err := l.loadFile(dir, rel)
		if err != nil {
			return nil, err
		}
		if draft {
			l.logger.Info("skipping draft", zap.String("file", rel))
			continue
		}
		if other, exists := seen[doc.Slug]; exists {
			return nil, fmt.Errorf("%w: %s and %s both resolve to %s", ErrDuplicateSlug, other, rel, doc.Slug)
		}
		seen[doc.Slug] = rel

		doc.Position = len(docs)
		docs = append(docs, doc)
	}

	l.logger.Info("content loaded", zap.String("dir", dir), zap.Int("documents", len(docs)))
	return docs, nil
}

func (l *Loader) loadFile(root, rel string) (db.Document, bool, error) {
	source, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return db.Document{}, false, fmt.Errorf("read %s: %w", rel, err)
	}

	meta, body, err := parseFrontMatter(source)
	if err != nil {
		return db.Document{}, false, fmt.Errorf("%s: %w", rel, err)
	}
	if meta.Draft {
		return db.Document{}, true, nil
	}

	slugValue, err := deriveSlug(rel, meta.Slug)
	if err != nil {
		return db.Document{}, false, err
	}

	date, ok := meta.Date.Time()
	if !ok {
		l.logger.Warn("unparseable date, treating as undated",
			zap.String("file", rel),
			zap.String("date", meta.Date.text),
		)
	}

	rendered, err := l.pipeline.Render(body)
	if err != nil {
		return db.Document{}, false, fmt.Errorf("%s: %w", rel, err)
	}

	return db.Document{
		ID:         documentID(rel),
		Slug:       slugValue,
		Title:      strings.TrimSpace(meta.Title),
		Date:       date,
		Keywords:   []string(meta.Keywords),
		Image:      l.resolveImage(rel, meta.Image),
		Excerpt:    rendered.Excerpt,
		HTML:       rendered.HTML,
		SourcePath: rel,
	}, false, nil
}

func (l *Loader) resolveImage(rel, image string) string {
	trimmed := strings.TrimSpace(image)
	if trimmed == "" || isAbsoluteURL(trimmed) || strings.HasPrefix(trimmed, "/") {
		return trimmed
	}

	joined := path.Join(path.Dir(rel), trimmed)
	if joined == ".." || strings.HasPrefix(joined, "../") {
		return trimmed
	}
	return l.mediaURLPath + "/" + joined
}

// LocalMediaPath reports the content-relative file behind an image URL that
// the loader placed under mediaURLPath.
func LocalMediaPath(mediaURLPath, imageURL string) (string, bool) {
	prefix := "/" + strings.Trim(mediaURLPath, "/") + "/"
	if !strings.HasPrefix(imageURL, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(imageURL, prefix)
	if rel == "" {
		return "", false
	}
	return rel, true
}

func discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(current string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if current != dir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsMarkdown(name) {
			return nil
		}

		rel, err := filepath.Rel(dir, current)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// IsMarkdown reports whether name has a markdown extension.
func IsMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

func isAbsoluteURL(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//") ||
		strings.HasPrefix(lower, "data:")
}

func documentID(rel string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("content:"+rel)).String()
}
