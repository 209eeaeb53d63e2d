// Package reference assembles the reference document for a program unit:
// it groups symbols by kind, parses and checks their docstrings, and
// concatenates the rendered fragments under fixed section headers.
package reference

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/docstring"
	"github.com/agentflare-ai/pydown/internal/markdown"
	"github.com/agentflare-ai/pydown/internal/symbol"
)

// Options controls document assembly.
type Options struct {
	// Workers bounds how many symbols are processed at once.
	// Zero means GOMAXPROCS.
	Workers int
	Logger  *logrus.Logger
}

type section struct {
	anchor string
	title  string
	kind   symbol.Kind
	// Suppressed sections are collected but not written.
	suppressed bool
}

// Section order is part of the output format.
var sections = []section{
	{anchor: "classes", title: "Classes", kind: symbol.Class},
	{anchor: "enumerations", title: "Enumerated Types", kind: symbol.Enumeration},
	{anchor: "errors", title: "Error Types", kind: symbol.Exception, suppressed: true},
	{anchor: "functions", title: "Functions", kind: symbol.Function},
}

// Buckets holds symbols partitioned by kind, each in provider order.
type Buckets map[symbol.Kind][]symbol.Symbol

// Partition splits syms by kind. Modules are dropped silently; symbols of
// unknown kind are logged and dropped.
func Partition(syms []symbol.Symbol, log *logrus.Logger) Buckets {
	log = orDiscard(log)
	b := make(Buckets)
	for _, s := range syms {
		switch s.Kind {
		case symbol.Function, symbol.Class, symbol.Enumeration, symbol.Exception:
			b[s.Kind] = append(b[s.Kind], s)
		case symbol.Module:
		default:
			log.WithFields(logrus.Fields{
				"symbol": s.Name,
				"kind":   s.Kind.String(),
			}).Warn("ignoring symbol of unrecognized kind")
		}
	}
	return b
}

// Build renders the reference document for syms, which must already be in
// provider order. The first failing symbol, in document order, fails the
// whole build and no document is returned.
func Build(ctx context.Context, syms []symbol.Symbol, opts Options) (string, error) {
	log := orDiscard(opts.Logger)
	buckets := Partition(syms, log)

	var jobs []symbol.Symbol
	for _, sec := range sections {
		if sec.suppressed {
			if n := len(buckets[sec.kind]); n > 0 {
				log.WithField("count", n).Debugf("not rendering %s", sec.title)
			}
			continue
		}
		jobs = append(jobs, buckets[sec.kind]...)
	}

	fragments, err := renderAll(ctx, jobs, opts.Workers)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	i := 0
	for _, sec := range sections {
		if sec.suppressed {
			continue
		}
		markdown.Section(&buf, sec.anchor, sec.title)
		for range buckets[sec.kind] {
			buf.WriteString(fragments[i])
			i++
		}
	}
	log.WithFields(logrus.Fields{
		"symbols":  len(syms),
		"rendered": len(jobs),
		"bytes":    buf.Len(),
	}).Debug("assembled reference document")
	return buf.String(), nil
}

// renderAll renders every symbol concurrently. Results and errors are
// stored by index so that the output and the reported error do not depend
// on scheduling.
func renderAll(ctx context.Context, syms []symbol.Symbol, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	fragments := make([]string, len(syms))
	errs := make([]error, len(syms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range syms {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fragments[i], errs[i] = RenderSymbol(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return fragments, nil
}

// RenderSymbol parses, checks and renders one symbol. Symbols with a blank
// docstring render as the empty string.
func RenderSymbol(s symbol.Symbol) (_ string, err error) {
	defer derrors.Wrap(&err, "%s %s", s.Kind, s.Name)

	if strings.TrimSpace(s.Doc) == "" {
		return "", nil
	}
	d, err := docstring.Parse(s.Doc)
	if err != nil {
		return "", err
	}
	if s.Kind == symbol.Enumeration {
		if err := docstring.ValidateEnum(d, s.Members); err != nil {
			return "", err
		}
	}
	var buf bytes.Buffer
	markdown.Fragment(&buf, s, d)
	return buf.String(), nil
}

func orDiscard(log *logrus.Logger) *logrus.Logger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
