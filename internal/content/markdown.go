package content

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

const (
	DefaultExcerptLength  = 140
	DefaultHighlightStyle = "github"
)

var classAttrPattern = regexp.MustCompile(`^[a-zA-Z0-9\s_-]+$`)

// Options configures the markdown transform.
type Options struct {
	HighlightStyle string
	LineNumbers    bool
	ExcerptLength  int
}

// Rendered is the output of one markdown transform.
type Rendered struct {
	HTML    string
	Excerpt string
}

// Pipeline turns markdown bodies into sanitized HTML and a plain-text excerpt.
// A Pipeline is safe for concurrent use.
type Pipeline struct {
	md            goldmark.Markdown
	policy        *bluemonday.Policy
	style         string
	excerptLength int
}

// NewPipeline builds the goldmark engine and sanitizer policy for opts.
func NewPipeline(opts Options) *Pipeline {
	style := strings.TrimSpace(opts.HighlightStyle)
	if style == "" {
		style = DefaultHighlightStyle
	}
	excerptLength := opts.ExcerptLength
	if excerptLength <= 0 {
		excerptLength = DefaultExcerptLength
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.Table,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.WithLineNumbers(opts.LineNumbers),
				),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithXHTML(), html.WithUnsafe()),
	)

	return &Pipeline{
		md:            md,
		policy:        buildContentSanitizer(),
		style:         style,
		excerptLength: excerptLength,
	}
}

// 高亮输出依赖 class 属性，UGC 策略默认会剥离，这里单独放行。
// 视频嵌入只允许指向已知播放器地址的 iframe。
func buildContentSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(classAttrPattern).Globally()
	policy.AllowElements("iframe")
	policy.AllowAttrs("src").Matching(embedSrcPattern).OnElements("iframe")
	policy.AllowAttrs("title", "allow", "allowfullscreen", "frameborder", "loading").OnElements("iframe")
	policy.AllowAttrs("data-video-platform", "data-video-source").OnElements("div")
	return policy
}

// Render converts a markdown body. The returned HTML has already been
// sanitized and may be injected into pages without further escaping.
func (p *Pipeline) Render(source []byte) (Rendered, error) {
	source = expandVideoEmbeds(source)
	doc := p.md.Parser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	if err := p.md.Renderer().Render(&buf, source, doc); err != nil {
		return Rendered{}, fmt.Errorf("render markdown: %w", err)
	}

	return Rendered{
		HTML:    string(p.policy.SanitizeBytes(buf.Bytes())),
		Excerpt: pruneExcerpt(plainText(doc, source), p.excerptLength),
	}, nil
}

// WriteHighlightCSS writes the stylesheet matching the classes emitted for
// fenced code blocks.
func (p *Pipeline) WriteHighlightCSS(w io.Writer) error {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.WriteCSS(w, styles.Get(p.style))
}

func plainText(doc ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				b.Write(node.Label(source))
			}
		}
		if !entering && n.Type() == ast.TypeBlock {
			b.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

func pruneExcerpt(plain string, limit int) string {
	if limit <= 0 {
		limit = DefaultExcerptLength
	}
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}

	runes := []rune(plain)
	cut := string(runes[:limit])
	// 在词边界截断，避免半个单词
	if runes[limit] != ' ' {
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
