package view

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/codeconfidence/internal/db"
)

const backgroundURLTemplate = "https://picsum.photos/seed/%s/960/640"

// DetailPage is the full view of one document.
type DetailPage struct {
	Slug          string      `json:"slug"`
	Title         string      `json:"title"`
	Date          string      `json:"date"`
	Keywords      []string    `json:"keywords"`
	BackgroundURL string      `json:"backgroundUrl"`
	Body          TrustedHTML `json:"html"`
}

// BuildDetail renders a single document. The body is the stored HTML,
// unmodified.
func BuildDetail(doc db.Document, dateFormat string) DetailPage {
	return DetailPage{
		Slug:          doc.Slug,
		Title:         doc.Title,
		Date:          formatDate(doc.Date, dateFormat),
		Keywords:      append([]string{}, doc.Keywords...),
		BackgroundURL: BackgroundURL(doc),
		Body:          TrustedHTML(doc.HTML),
	}
}

// BackgroundURL seeds the header image with the document keywords. Documents
// without keywords are seeded with their slug so the URL stays well formed.
func BackgroundURL(doc db.Document) string {
	seed := doc.KeywordSeed()
	if seed == "" {
		seed = strings.ReplaceAll(strings.Trim(doc.Slug, "/"), "/", "-")
	}
	if seed == "" {
		seed = "blog"
	}

	parts := strings.Split(seed, ",")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return fmt.Sprintf(backgroundURLTemplate, strings.Join(parts, ","))
}
