// Package pyintrospect discovers symbols in a Python source file by
// importing it in a child interpreter and reading back a JSON manifest.
package pyintrospect

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os/exec"
	"strings"

	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/symbol"
	"github.com/agentflare-ai/pydown/internal/symbol/manifest"
)

//go:embed introspect.py
var script string

// DefaultInterpreter is used when no interpreter is configured.
const DefaultInterpreter = "python3"

// Provider loads symbols from one Python source file.
type Provider struct {
	path        string
	interpreter string
}

// New returns a provider for the Python file at path, run with the given
// interpreter (DefaultInterpreter if empty).
func New(path, interpreter string) *Provider {
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}
	return &Provider{path: path, interpreter: interpreter}
}

// Symbols implements symbol.Provider.
func (p *Provider) Symbols(ctx context.Context) (_ []symbol.Symbol, err error) {
	defer derrors.Wrap(&err, "python module %s", p.path)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.interpreter, "-c", script, p.path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: %s", derrors.BadInput, lastLine(msg))
	}
	return manifest.Decode(&stdout)
}

// lastLine returns the final line of a Python traceback, which names the
// exception.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
