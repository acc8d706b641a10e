package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codeconfidence/internal/config"
)

type samplePost struct {
	Dir      string
	Name     string
	Title    string
	Date     time.Time
	Keywords []string
	Body     string
}

var sampleTopics = []struct {
	title    string
	keywords []string
	body     string
}{
	{
		title:    "Red, Green, Refactor",
		keywords: []string{"tdd", "testing"},
		body: "Write a failing test first, make it pass with the simplest change, then clean up.\n\n" +
			"```go\nfunc TestAdd(t *testing.T) {\n\tif got := Add(2, 3); got != 5 {\n\t\tt.Fatalf(\"expected 5, got %d\", got)\n\t}\n}\n```\n",
	},
	{
		title:    "Naming Things",
		keywords: []string{"clean code"},
		body:     "Good names remove the need for comments.\n\n| before | after |\n|--------|-------|\n| `d` | `elapsedDays` |\n| `list1` | `pendingOrders` |\n",
	},
	{
		title:    "Small Functions",
		keywords: []string{"clean code", "refactoring"},
		body:     "A function should do one thing. If you can extract another function from it, it does more than one.\n",
	},
	{
		title:    "Characterization Tests",
		keywords: []string{"legacy code", "testing"},
		body:     "Before changing legacy code, pin down what it does today.\n\n> The first step is to get the code under test.\n",
	},
	{
		title:    "Extract Till You Drop",
		keywords: []string{"refactoring"},
		body:     "Keep extracting until every function reads like a sentence.\n\n1. Extract\n2. Rename\n3. Inline what no longer pulls its weight\n",
	},
}

// 示例文章生成器，为本地开发填充内容目录
func main() {
	cfg := config.Load()
	dir := flag.String("dir", cfg.ContentDir, "content directory to write posts into")
	count := flag.Int("count", len(sampleTopics), "number of posts to generate")
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Parse()

	posts := samplePosts(*count, time.Now().UTC())
	written, err := writePosts(*dir, posts, *force)
	if err != nil {
		log.Fatal("生成示例文章失败:", err)
	}
	fmt.Printf("✅ 已写入 %d 篇示例文章到 %s\n", written, *dir)
}

// samplePosts returns n posts dated one week apart, newest first.
func samplePosts(n int, newest time.Time) []samplePost {
	posts := make([]samplePost, 0, n)
	for i := 0; i < n; i++ {
		topic := sampleTopics[i%len(sampleTopics)]
		title := topic.title
		if i >= len(sampleTopics) {
			title = fmt.Sprintf("%s (part %d)", topic.title, i/len(sampleTopics)+1)
		}
		date := newest.AddDate(0, 0, -7*i).Truncate(24 * time.Hour)
		posts = append(posts, samplePost{
			Dir:      date.Format("2006"),
			Name:     fmt.Sprintf("%s-%02d", date.Format("01-02"), i+1),
			Title:    title,
			Date:     date,
			Keywords: topic.keywords,
			Body:     topic.body,
		})
	}
	return posts
}

func (p samplePost) markdown() string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", p.Title)
	fmt.Fprintf(&b, "date: %s\n", p.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "keywords: %q\n", strings.Join(p.Keywords, ", "))
	b.WriteString("---\n\n")
	b.WriteString(p.Body)
	return b.String()
}

// writePosts writes posts under dir and reports how many files were created.
// Existing files are kept unless force is set.
func writePosts(dir string, posts []samplePost, force bool) (int, error) {
	written := 0
	for _, post := range posts {
		target := filepath.Join(dir, post.Dir, post.Name+".md")
		if !force {
			if _, err := os.Stat(target); err == nil {
				continue
			} else if !errors.Is(err, os.ErrNotExist) {
				return written, err
			}
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(target, []byte(post.markdown()), 0o644); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}
