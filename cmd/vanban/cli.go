package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/hqanh/vanban"
	"github.com/hqanh/vanban/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Documents  vanban.DocumentService
	Results    vanban.ResultService
	Normalizer vanban.Normalizer
	Segmenter  vanban.Segmenter
	Differ     vanban.Differ
	Extractor  vanban.TextExtractor
	Logger     *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run    RunCmd    `cmd:"" help:"Process a dataset of crawled documents"`
	List   ListCmd   `cmd:"" help:"List stored documents"`
	Show   ShowCmd   `cmd:"" help:"Show stored results for a document"`
	Stats  StatsCmd  `cmd:"" help:"Show corpus-wide processing statistics"`
	Delete DeleteCmd `cmd:"" help:"Delete a document and its results"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Dataset     string `arg:"" help:"Path to a crawled dataset JSON file"`
	Out         string `short:"o" help:"Also write results as JSON files under this directory"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent document limit"`
	MaxBytes    int    `name:"max-bytes" default:"10485760" help:"Skip documents larger than this many bytes"`
	NoDedup     bool   `name:"no-dedup" help:"Process duplicate content instead of skipping it"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Number string `short:"n" help:"Filter by issuing number"`
	Limit  int    `default:"50" help:"Maximum documents to list"`
	Offset int    `help:"Skip this many documents"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Document ID"`
	Diff bool   `help:"Show the diff report instead of the segmentation"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}
