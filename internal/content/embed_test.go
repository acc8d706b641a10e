package content

import (
	"net/url"
	"strings"
	"testing"
)

func TestPipelineRenderVideoEmbeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		wantSrc  string
		platform string
	}{
		{
			name:     "youtube watch",
			markdown: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantSrc:  "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?rel=0",
			platform: "youtube",
		},
		{
			name:     "youtube short link with start",
			markdown: "<https://youtu.be/dQw4w9WgXcQ?t=1m30s>",
			wantSrc:  "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?rel=0&amp;start=90",
			platform: "youtube",
		},
		{
			name:     "vimeo",
			markdown: "https://vimeo.com/76979871",
			wantSrc:  "https://player.vimeo.com/video/76979871",
			platform: "vimeo",
		},
	}

	pipeline := NewPipeline(Options{})
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rendered, err := pipeline.Render([]byte("Intro.\n\n" + tt.markdown + "\n\nOutro.\n"))
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.Contains(rendered.HTML, "<iframe") {
				t.Fatalf("expected iframe, got: %s", rendered.HTML)
			}
			if !strings.Contains(rendered.HTML, `src="`+tt.wantSrc) {
				t.Fatalf("expected src %q, got: %s", tt.wantSrc, rendered.HTML)
			}
			if !strings.Contains(rendered.HTML, `data-video-platform="`+tt.platform+`"`) {
				t.Fatalf("expected platform %q, got: %s", tt.platform, rendered.HTML)
			}
			if rendered.Excerpt != "Intro. Outro." {
				t.Fatalf("expected embed to stay out of the excerpt, got %q", rendered.Excerpt)
			}
		})
	}
}

func TestExpandVideoEmbedsLeavesOtherLinesAlone(t *testing.T) {
	t.Parallel()

	source := strings.Join([]string{
		"```",
		"https://www.youtube.com/watch?v=inside",
		"```",
		"    https://www.youtube.com/watch?v=indented",
		"> https://www.youtube.com/watch?v=quoted",
		"- https://www.youtube.com/watch?v=listed",
		"1. https://www.youtube.com/watch?v=numbered",
		"see https://www.youtube.com/watch?v=inline",
		"https://example.com/watch?v=other",
		"https://www.youtube.com/channel/abc",
	}, "\n")

	if got := string(expandVideoEmbeds([]byte(source))); got != source {
		t.Fatalf("expected source unchanged, got:\n%s", got)
	}
}

func TestSanitizerDropsForeignIframes(t *testing.T) {
	t.Parallel()

	rendered, err := NewPipeline(Options{}).Render([]byte(`<iframe src="https://evil.example/x"></iframe>`))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(rendered.HTML, "evil.example") {
		t.Fatalf("expected foreign iframe source to be removed, got: %s", rendered.HTML)
	}
}

func TestYouTubeStart(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"t=42":      42,
		"t=1h2m3s":  3723,
		"start=15":  15,
		"t=-5":      0,
		"other=1":   0,
		"t=garbage": 0,
	}
	for query, want := range tests {
		values, _ := url.ParseQuery(query)
		if got := youTubeStart(values); got != want {
			t.Fatalf("%s: expected %d, got %d", query, want, got)
		}
	}
}
