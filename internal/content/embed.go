package content

import (
	"fmt"
	htmlstd "html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	embedLinePattern  = regexp.MustCompile(`^<?(https?://[^\s<>]+)>?$`)
	embedSrcPattern   = regexp.MustCompile(`^https://(?:www\.youtube-nocookie\.com/embed/|player\.vimeo\.com/video/)`)
	embedTimePattern  = regexp.MustCompile(`(?i)(\d+)(h|m|s)`)
	orderedListPrefix = regexp.MustCompile(`^\d+[.)]\s+`)
)

// videoEmbed is a video link that stands alone on its own line.
type videoEmbed struct {
	Platform string
	Source   string
	EmbedURL string
}

// expandVideoEmbeds replaces lines holding only a YouTube or Vimeo link with
// a responsive player. Code blocks, quotes and list items are left alone.
func expandVideoEmbeds(source []byte) []byte {
	if len(source) == 0 {
		return source
	}

	lines := strings.Split(string(source), "\n")
	fence := ""
	changed := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
			continue
		}
		if fence != "" || isIndented(line) || !embeddable(trimmed) {
			continue
		}

		match := embedLinePattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		embed, ok := parseVideoURL(match[1])
		if !ok {
			continue
		}
		lines[i] = embed.html()
		changed = true
	}

	if !changed {
		return source
	}
	return []byte(strings.Join(lines, "\n"))
}

func fenceMarker(line string) string {
	switch {
	case strings.HasPrefix(line, "```"):
		return "```"
	case strings.HasPrefix(line, "~~~"):
		return "~~~"
	}
	return ""
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func embeddable(line string) bool {
	if line == "" || strings.HasPrefix(line, ">") {
		return false
	}
	for _, bullet := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(line, bullet) {
			return false
		}
	}
	return !orderedListPrefix.MatchString(line)
}

func parseVideoURL(raw string) (videoEmbed, bool) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return videoEmbed{}, false
	}
	host := strings.ToLower(u.Hostname())

	switch {
	case host == "youtu.be" || isHostOrSubdomain(host, "youtube.com"):
		return youTubeEmbed(u, raw)
	case isHostOrSubdomain(host, "vimeo.com"):
		return vimeoEmbed(u, raw)
	}
	return videoEmbed{}, false
}

func youTubeEmbed(u *url.URL, source string) (videoEmbed, bool) {
	path := strings.Trim(u.Path, "/")
	var id string
	if strings.EqualFold(u.Hostname(), "youtu.be") {
		id = path
	} else {
		switch {
		case path == "watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"), strings.HasPrefix(path, "embed/"), strings.HasPrefix(path, "live/"):
			_, id, _ = strings.Cut(path, "/")
		}
	}
	id, _, _ = strings.Cut(id, "/")
	if id == "" {
		return videoEmbed{}, false
	}

	params := url.Values{}
	params.Set("rel", "0")
	if start := youTubeStart(u.Query()); start > 0 {
		params.Set("start", strconv.Itoa(start))
	}
	return videoEmbed{
		Platform: "youtube",
		Source:   source,
		EmbedURL: "https://www.youtube-nocookie.com/embed/" + url.PathEscape(id) + "?" + params.Encode(),
	}, true
}

// youTubeStart reads t= or start= as seconds or as 1h2m3s.
func youTubeStart(query url.Values) int {
	value := query.Get("start")
	if value == "" {
		value = query.Get("t")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return max(seconds, 0)
	}

	total := 0
	for _, match := range embedTimePattern.FindAllStringSubmatch(value, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		switch strings.ToLower(match[2]) {
		case "h":
			total += n * 3600
		case "m":
			total += n * 60
		case "s":
			total += n
		}
	}
	return total
}

func vimeoEmbed(u *url.URL, source string) (videoEmbed, bool) {
	id := strings.Trim(u.Path, "/")
	if i := strings.LastIndex(id, "/"); i >= 0 {
		id = id[i+1:]
	}
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return videoEmbed{}, false
	}
	return videoEmbed{
		Platform: "vimeo",
		Source:   source,
		EmbedURL: "https://player.vimeo.com/video/" + id,
	}, true
}

func (e videoEmbed) html() string {
	return fmt.Sprintf(
		`<div class="video-embed" data-video-platform="%s" data-video-source="%s">`+
			`<iframe src="%s" title="%s video player" loading="lazy" allow="clipboard-write; encrypted-media; picture-in-picture" allowfullscreen="allowfullscreen" frameborder="0"></iframe>`+
			`</div>`,
		htmlstd.EscapeString(e.Platform),
		htmlstd.EscapeString(e.Source),
		htmlstd.EscapeString(e.EmbedURL),
		htmlstd.EscapeString(e.Platform),
	)
}

func isHostOrSubdomain(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
