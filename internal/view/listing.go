package view

import (
	"slices"
	"time"

	"github.com/codeconfidence/internal/db"
)

// FallbackThumbnail is shown for documents without an image.
const FallbackThumbnail = "https://source.unsplash.com/150x150/"

// DefaultDateFormat is the display layout used when none is configured.
const DefaultDateFormat = "January 2, 2006"

// ListingCard is the summary of one document on the home page.
type ListingCard struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Excerpt   string `json:"excerpt"`
}

// BuildListing returns one card per document, newest first. Documents with
// equal dates keep their relative order. docs is not modified.
func BuildListing(docs []db.Document, dateFormat string) []ListingCard {
	sorted := slices.Clone(docs)
	slices.SortStableFunc(sorted, func(a, b db.Document) int {
		return b.Date.Compare(a.Date)
	})

	cards := make([]ListingCard, 0, len(sorted))
	for _, doc := range sorted {
		thumbnail := doc.Image
		if !doc.HasImage() {
			thumbnail = FallbackThumbnail
		}
		cards = append(cards, ListingCard{
			ID:        doc.ID,
			To:        doc.Slug,
			Thumbnail: thumbnail,
			Title:     doc.Title,
			Date:      formatDate(doc.Date, dateFormat),
			Excerpt:   doc.Excerpt,
		})
	}
	return cards
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DefaultDateFormat
	}
	return t.Format(layout)
}
