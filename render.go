package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/russross/blackfriday/v2"

	"github.com/agentflare-ai/pydown/internal/config"
	"github.com/agentflare-ai/pydown/internal/derrors"
)

// encode converts the Markdown document to the requested output format.
func encode(format, md string) ([]byte, error) {
	switch format {
	case "", config.FormatMarkdown:
		return []byte(md), nil
	case config.FormatHTML:
		return blackfriday.Run([]byte(md), blackfriday.WithExtensions(blackfriday.CommonExtensions)), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", derrors.Usage, format)
	}
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
