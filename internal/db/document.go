package db

import (
	"strings"
	"time"
)

// Document is one rendered markdown file. Rows are replaced wholesale on
// every content load and never edited in place.
type Document struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title      string    `json:"title"`
	Date       time.Time `gorm:"index" json:"date"`
	Keywords   []string  `gorm:"serializer:json" json:"keywords,omitempty"`
	Image      string    `json:"image,omitempty"`
	Excerpt    string    `json:"excerpt"`
	HTML       string    `gorm:"type:text" json:"html"`
	SourcePath string    `json:"sourcePath"`
	Position   int       `gorm:"index" json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasImage reports whether the frontmatter supplied an image.
func (d Document) HasImage() bool {
	return strings.TrimSpace(d.Image) != ""
}

// KeywordSeed joins keywords the way they are used in seeded image URLs.
// It returns an empty string when no keyword is set.
func (d Document) KeywordSeed() string {
	parts := make([]string, 0, len(d.Keywords))
	for _, keyword := range d.Keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ",")
}

// CanonicalSlug turns a request path or slug into the stored "/a/b/" form.
// Empty input, or input made only of slashes, yields "".
func CanonicalSlug(raw string) string {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return "/" + strings.Join(kept, "/") + "/"
}
