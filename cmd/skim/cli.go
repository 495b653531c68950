package main

import (
	"context"
	"io"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/digest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Loader     skim.Loader
	Extractor  skim.Extractor
	Converter  skim.Converter
	Summarizer skim.Summarizer
	Digester   *digest.Digester
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log loading and summarization details to stderr"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize a text, Markdown, or HTML file"`
	Digest    DigestCmd    `cmd:"" help:"Summarize multiple files into one digest"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	Path  string `arg:"" help:"Input file, or '-' for stdin"`
	Title string `short:"t" help:"Override the detected title"`
	Ranks bool   `short:"r" help:"Print the sentence rank table before the summary"`
	Stats bool   `short:"s" help:"Print how much shorter the summary is"`
	JSON  bool   `help:"Emit the summary as JSON"`
}

// DigestCmd is the "digest" subcommand.
type DigestCmd struct {
	Paths       []string `arg:"" help:"Input files"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent summarization limit"`
}
