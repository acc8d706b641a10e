package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// frontMatter is the metadata block at the top of a post, YAML (---) or TOML (+++).
type frontMatter struct {
	Title    string      `yaml:"title" toml:"title"`
	Date     rawDate     `yaml:"date" toml:"date"`
	Keywords keywordList `yaml:"keywords" toml:"keywords"`
	Image    string      `yaml:"image" toml:"image"`
	Slug     string      `yaml:"slug" toml:"slug"`
	Draft    bool        `yaml:"draft" toml:"draft"`
}

func parseFrontMatter(source []byte) (frontMatter, []byte, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return frontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}

// keywordList accepts either a sequence or a comma separated string.
type keywordList []string

func (k *keywordList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*k = toKeywords(raw)
	return nil
}

func (k *keywordList) UnmarshalTOML(data interface{}) error {
	*k = toKeywords(data)
	return nil
}

func toKeywords(raw interface{}) keywordList {
	var out keywordList
	add := func(value string) {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	switch value := raw.(type) {
	case string:
		for _, part := range strings.Split(value, ",") {
			add(part)
		}
	case []interface{}:
		for _, item := range value {
			if item != nil {
				add(fmt.Sprint(item))
			}
		}
	case []string:
		for _, item := range value {
			add(item)
		}
	case nil:
	default:
		add(fmt.Sprint(value))
	}
	return out
}

// rawDate keeps whatever the date key held. YAML hands us strings, TOML may
// hand us a native datetime.
type rawDate struct {
	text  string
	value time.Time
}

func (d *rawDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	d.set(raw)
	return nil
}

func (d *rawDate) UnmarshalTOML(data interface{}) error {
	d.set(data)
	return nil
}

func (d *rawDate) set(raw interface{}) {
	switch value := raw.(type) {
	case time.Time:
		d.value = value
	case string:
		d.text = strings.TrimSpace(value)
	case nil:
	default:
		d.text = strings.TrimSpace(fmt.Sprint(value))
	}
}

// Time resolves the date in UTC. ok is false only when a value was present
// but could not be parsed.
func (d rawDate) Time() (t time.Time, ok bool) {
	if !d.value.IsZero() {
		return d.value.UTC(), true
	}
	if d.text == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, d.text, time.UTC); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}
