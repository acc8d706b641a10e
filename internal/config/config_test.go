package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LISTEN_ADDR", "CONTENT_DIR", "MEDIA_URL_PATH", "EXCERPT_LENGTH",
		"HIGHLIGHT_LINE_NUMBERS", "SITE_HEADING", "ADMIN_TOKEN_HASH",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr :8080, got %q", cfg.ListenAddr)
	}
	if cfg.ContentDir != "content/posts" {
		t.Fatalf("unexpected content dir %q", cfg.ContentDir)
	}
	if cfg.MediaURLPath != "/media" {
		t.Fatalf("unexpected media path %q", cfg.MediaURLPath)
	}
	if cfg.ExcerptLength != 140 {
		t.Fatalf("expected excerpt length 140, got %d", cfg.ExcerptLength)
	}
	if !cfg.HighlightLineNumbers {
		t.Fatalf("expected line numbers to default on")
	}
	if cfg.SiteHeading != "Code with Confidence" {
		t.Fatalf("unexpected heading %q", cfg.SiteHeading)
	}
	if cfg.AdminTokenHash != "" {
		t.Fatalf("expected reload to be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("MEDIA_URL_PATH", "assets/")
	t.Setenv("EXCERPT_LENGTH", "80")
	t.Setenv("IMAGE_MAX_WIDTH", "not-a-number")
	t.Setenv("HIGHLIGHT_LINE_NUMBERS", "false")

	cfg := Load()

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr derived from port, got %q", cfg.ListenAddr)
	}
	if cfg.MediaURLPath != "/assets" {
		t.Fatalf("expected normalized media path, got %q", cfg.MediaURLPath)
	}
	if cfg.ExcerptLength != 80 {
		t.Fatalf("expected excerpt length 80, got %d", cfg.ExcerptLength)
	}
	if cfg.ImageMaxWidth != 960 {
		t.Fatalf("expected invalid width to fall back to 960, got %d", cfg.ImageMaxWidth)
	}
	if cfg.HighlightLineNumbers {
		t.Fatalf("expected line numbers to be disabled")
	}
}
