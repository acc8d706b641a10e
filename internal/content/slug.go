package content

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/codeconfidence/internal/db"
	"github.com/goliatone/go-slug"
)

var (
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrInvalidSlug   = errors.New("invalid slug")
)

// deriveSlug builds the document path from the frontmatter override or, when
// absent, from the content-relative file path. "dir/index.md" maps to "/dir/".
func deriveSlug(rel, override string) (string, error) {
	source := strings.TrimSpace(override)
	if source == "" {
		source = strings.TrimSuffix(rel, path.Ext(rel))
		if path.Base(source) == "index" {
			source = path.Dir(source)
			if source == "." {
				source = ""
			}
		}
	}

	segments := make([]string, 0, 4)
	for _, segment := range strings.Split(source, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		normalized, err := slug.Normalize(segment)
		if err != nil || normalized == "" {
			return "", fmt.Errorf("%w: %q in %s", ErrInvalidSlug, segment, rel)
		}
		segments = append(segments, normalized)
	}

	canonical := db.CanonicalSlug(strings.Join(segments, "/"))
	if canonical == "" {
		return "", fmt.Errorf("%w: %s resolves to the site root", ErrInvalidSlug, rel)
	}
	return canonical, nil
}
