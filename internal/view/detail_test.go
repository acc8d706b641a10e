package view

import (
	"testing"

	"github.com/codeconfidence/internal/db"
)

func TestBuildDetailKeepsHTMLVerbatim(t *testing.T) {
	doc := db.Document{
		Slug:     "/a/",
		Title:    "A",
		Date:     day(2024, 1, 2),
		Keywords: []string{"clean", "code"},
		HTML:     `<p>hi</p><pre class="chroma"><code>x &lt; y</code></pre>`,
	}

	page := BuildDetail(doc, "2006-01-02")

	if page.Title != "A" {
		t.Fatalf("unexpected title %q", page.Title)
	}
	if page.Body.String() != doc.HTML {
		t.Fatalf("expected body to equal stored html, got %q", page.Body)
	}
	if string(page.Body.HTML()) != doc.HTML {
		t.Fatalf("expected template html to equal stored html")
	}
	if page.Date != "2024-01-02" {
		t.Fatalf("unexpected date %q", page.Date)
	}
	if page.BackgroundURL != "https://picsum.photos/seed/clean,code/960/640" {
		t.Fatalf("unexpected background url %q", page.BackgroundURL)
	}
}

func TestBackgroundURL(t *testing.T) {
	tests := []struct {
		name string
		doc  db.Document
		want string
	}{
		{
			name: "single keyword",
			doc:  db.Document{Slug: "/a/", Keywords: []string{"tdd"}},
			want: "https://picsum.photos/seed/tdd/960/640",
		},
		{
			name: "keyword with space is escaped",
			doc:  db.Document{Slug: "/a/", Keywords: []string{"clean code"}},
			want: "https://picsum.photos/seed/clean%20code/960/640",
		},
		{
			name: "missing keywords fall back to slug",
			doc:  db.Document{Slug: "/2024/refactoring/"},
			want: "https://picsum.photos/seed/2024-refactoring/960/640",
		},
		{
			name: "nothing to seed with",
			doc:  db.Document{},
			want: "https://picsum.photos/seed/blog/960/640",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackgroundURL(tt.doc); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestBuildDetailDoesNotShareKeywordSlice(t *testing.T) {
	doc := db.Document{Slug: "/a/", Keywords: []string{"go"}}
	page := BuildDetail(doc, "")
	page.Keywords[0] = "changed"
	if doc.Keywords[0] != "go" {
		t.Fatalf("expected document keywords to be untouched")
	}
}
