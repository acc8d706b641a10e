package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeContent(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		full := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func newTestLoader() *Loader {
	return NewLoader(NewPipeline(Options{}), "/media", nil)
}

func TestLoaderBuildsDocumentsInDiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"clean-code.md": "---\ntitle: Clean Code\ndate: 2024-01-02\nkeywords: [clean, code]\n---\nSmall functions.\n",
		"refactoring.md": "---\ntitle: Refactoring\ndate: 2024-01-05\nkeywords: refactor, legacy\nimage: https://example.com/r.png\n---\nOne step at a time.\n",
		"notes.txt":      "not markdown",
		".hidden.md":     "---\ntitle: Hidden\n---\n",
		"_drafts/x.md":   "---\ntitle: Underscore\n---\n",
	})

	docs, err := newTestLoader().Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}

	first, second := docs[0], docs[1]
	if first.Slug != "/clean-code/" || first.Position != 0 {
		t.Fatalf("unexpected first document: %+v", first)
	}
	if second.Slug != "/refactoring/" || second.Position != 1 {
		t.Fatalf("unexpected second document: %+v", second)
	}
	if first.Title != "Clean Code" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	if !first.Date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", first.Date)
	}
	if strings.Join(first.Keywords, "|") != "clean|code" {
		t.Fatalf("unexpected list keywords %#v", first.Keywords)
	}
	if strings.Join(second.Keywords, "|") != "refactor|legacy" {
		t.Fatalf("unexpected string keywords %#v", second.Keywords)
	}
	if second.Image != "https://example.com/r.png" {
		t.Fatalf("expected absolute image to pass through, got %q", second.Image)
	}
	if first.Excerpt != "Small functions." {
		t.Fatalf("unexpected excerpt %q", first.Excerpt)
	}
	if !strings.Contains(first.HTML, "<p>Small functions.</p>") {
		t.Fatalf("unexpected html %q", first.HTML)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %q and %q", first.ID, second.ID)
	}
	if first.SourcePath != "clean-code.md" {
		t.Fatalf("unexpected source path %q", first.SourcePath)
	}
}

func TestLoaderIDsAreStableAcrossLoads(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{"clean-code.md": "---\ntitle: A\n---\nbody\n"})

	loader := newTestLoader()
	a, err := loader.Load(root)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	b, err := loader.Load(root)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if a[0].ID != b[0].ID {
		t.Fatalf("expected stable id, got %q and %q", a[0].ID, b[0].ID)
	}
}

func TestLoaderSlugRules(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"2024/testing/index.md": "---\ntitle: Nested\n---\n",
		"override.md":           "---\ntitle: Override\nslug: custom-path\n---\n",
	})

	docs, err := newTestLoader().Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	slugs := map[string]bool{}
	for _, doc := range docs {
		slugs[doc.Slug] = true
	}
	for _, want := range []string{"/2024/testing/", "/custom-path/"} {
		if !slugs[want] {
			t.Fatalf("expected slug %q in %v", want, slugs)
		}
	}
}

func TestLoaderRejectsDuplicateSlugs(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"first.md":  "---\ntitle: First\nslug: same\n---\n",
		"second.md": "---\ntitle: Second\nslug: same\n---\n",
	})

	_, err := newTestLoader().Load(root)
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestLoaderSkipsDraftsAndToleratesMissingFields(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"draft.md":   "---\ntitle: Draft\ndraft: true\n---\nwip\n",
		"minimal.md": "just a body, no frontmatter\n",
		"baddate.md": "---\ntitle: Bad Date\ndate: someday\n---\n",
	})

	docs, err := newTestLoader().Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected draft to be skipped, got %d documents", len(docs))
	}
	for _, doc := range docs {
		if doc.Slug == "/draft/" {
			t.Fatalf("draft should not be loaded")
		}
		if !doc.Date.IsZero() {
			t.Fatalf("expected zero date for %s, got %v", doc.Slug, doc.Date)
		}
		if len(doc.Keywords) != 0 || doc.Image != "" {
			t.Fatalf("expected empty optional fields for %s", doc.Slug)
		}
	}
}

func TestLoaderParsesTOMLFrontMatter(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"toml.md": "+++\ntitle = \"From TOML\"\ndate = \"2024-03-01\"\nkeywords = [\"go\", \"toml\"]\n+++\nbody\n",
	})

	docs, err := newTestLoader().Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	doc := docs[0]
	if doc.Title != "From TOML" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if doc.Date.Year() != 2024 || doc.Date.Month() != time.March || doc.Date.Day() != 1 {
		t.Fatalf("unexpected date %v", doc.Date)
	}
	if strings.Join(doc.Keywords, ",") != "go,toml" {
		t.Fatalf("unexpected keywords %#v", doc.Keywords)
	}
}

func TestLoaderResolvesRelativeImages(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"2024/post.md": "---\ntitle: With Image\nimage: images/cover.png\n---\n",
		"escape.md":    "---\ntitle: Escape\nimage: ../outside.png\n---\n",
		"rooted.md":    "---\ntitle: Rooted\nimage: /static/logo.png\n---\n",
	})

	docs, err := newTestLoader().Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	images := map[string]string{}
	for _, doc := range docs {
		images[doc.Slug] = doc.Image
	}
	if got := images["/2024/post/"]; got != "/media/2024/images/cover.png" {
		t.Fatalf("unexpected resolved image %q", got)
	}
	if got := images["/escape/"]; got != "../outside.png" {
		t.Fatalf("expected escaping path to be left alone, got %q", got)
	}
	if got := images["/rooted/"]; got != "/static/logo.png" {
		t.Fatalf("expected site-absolute path to be left alone, got %q", got)
	}

	rel, ok := LocalMediaPath("/media", images["/2024/post/"])
	if !ok || rel != "2024/images/cover.png" {
		t.Fatalf("unexpected local media path %q (%v)", rel, ok)
	}
	if _, ok := LocalMediaPath("/media", "https://example.com/a.png"); ok {
		t.Fatalf("remote image should not be local media")
	}
}

func TestLoaderMissingDirectoryIsEmpty(t *testing.T) {
	docs, err := newTestLoader().Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
}
