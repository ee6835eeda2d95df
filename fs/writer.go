// Package fs writes articles as markdown files on disk.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/mwierzba/wikiread"
)

// TitleToFilename converts an article title to a safe markdown filename.
// Example: "Go (programming language)" → "go-programming-language.md"
func TitleToFilename(title string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		case !prevDash:
			b.WriteByte('-')
			prevDash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		name = "article"
	}
	return name + ".md"
}

// FormatArticle renders an article body with YAML frontmatter.
func FormatArticle(article *wikiread.Article, markdown string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(article.Title)
	b.WriteString("\nfetched: ")
	b.WriteString(article.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	if !strings.HasSuffix(markdown, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

// Ensure Writer implements wikiread.ArticleWriter at compile time.
var _ wikiread.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes an article to disk as a markdown file named after
// its title.
func (w *Writer) WriteArticle(ctx context.Context, article *wikiread.Article, markdown string) error {
	if err := article.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, TitleToFilename(article.Title))

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	content := FormatArticle(article, markdown)
	return os.WriteFile(fullPath, []byte(content), 0644)
}
