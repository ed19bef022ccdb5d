// syllabusparse runs the parsing pipeline over a single file and prints
// the result as JSON. It never touches a database; useful for checking
// what a given syllabus parses into before uploading it.
//
//	syllabusparse path/to/syllabus.pdf
//
// The AI fallback is used only when OPENAI_API_KEY is set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/extract"
	"github.com/coursedeck/syllabus-tracker/internal/llm"
	"github.com/coursedeck/syllabus-tracker/internal/llm/openai"
	"github.com/coursedeck/syllabus-tracker/internal/pipeline"
)

func main() {
	verbose := flag.Bool("v", false, "log pipeline stages to stderr")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: syllabusparse [-v] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	var fallback llm.FallbackExtractor
	if cfg.LLM.APIKey != "" {
		fallback = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}

	pipe := pipeline.New(logger, pipeline.Config{
		MinTextLength: cfg.Parser.MinTextLength,
		AITimeout:     cfg.LLM.Timeout,
	}, extract.NewExtractor(logger), fallback)

	result, err := pipe.Run(context.Background(), extract.RawDocument{
		Bytes:    content,
		Filename: filepath.Base(path),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", path, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
}
