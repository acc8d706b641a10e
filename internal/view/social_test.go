package view

import (
	"strings"
	"testing"
)

func TestParseSocialLinks(t *testing.T) {
	links := ParseSocialLinks("github=https://github.com/jake, email = mailto:jake@example.com ,broken,=x,mastodon=https://m.example/@jake")

	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d: %+v", len(links), links)
	}
	if links[0].Key != "github" || links[0].Label != "GitHub" {
		t.Fatalf("unexpected first link %+v", links[0])
	}
	if links[1].URL != "mailto:jake@example.com" {
		t.Fatalf("expected trimmed url, got %q", links[1].URL)
	}
	if links[2].Label != "Link" {
		t.Fatalf("expected default label for unknown key, got %q", links[2].Label)
	}
	if !strings.HasPrefix(string(links[2].Icon()), "<svg") {
		t.Fatalf("expected default icon svg")
	}
}

func TestParseSocialLinksEmpty(t *testing.T) {
	if links := ParseSocialLinks(""); len(links) != 0 {
		t.Fatalf("expected no links, got %+v", links)
	}
}
