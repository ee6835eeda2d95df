package main

import (
	"context"
	"io"

	"github.com/mwierzba/wikiread"
	"github.com/mwierzba/wikiread/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Articles  wikiread.ArticleService
	Fetcher   wikiread.ArticleFetcher
	Searcher  wikiread.SearchService
	Pages     wikiread.PageService
	Extractor wikiread.ContentExtractor
	Converter wikiread.Converter
	Writer    wikiread.ArticleWriter
	Asker     wikiread.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Read   ReadCmd   `cmd:"" help:"Fetch and display an article"`
	Search SearchCmd `cmd:"" help:"Search for articles by keyword"`
	Save   SaveCmd   `cmd:"" help:"Fetch an article and save it locally"`
	List   ListCmd   `cmd:"" help:"List saved articles"`
	Show   ShowCmd   `cmd:"" help:"Display a saved article"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved article"`
	Export ExportCmd `cmd:"" help:"Export an article as a markdown file"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about a saved article"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Title string `arg:"" help:"Article title"`
	Plain bool   `short:"p" help:"Disable color output"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search terms"`
	Limit int    `short:"n" default:"10" help:"Maximum number of results"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Title string `arg:"" help:"Article title"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Title string `arg:"" help:"Article title"`
	Plain bool   `short:"p" help:"Disable color output"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Title string `arg:"" help:"Article title"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Title string `arg:"" help:"Article title"`
	Dir   string `short:"d" default:"." help:"Output directory"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Title    string `arg:"" help:"Saved article title"`
	Question string `arg:"" help:"Question to ask about the article"`
}
