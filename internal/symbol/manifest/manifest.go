// Package manifest reads symbol metadata from an explicit symbol table in
// YAML or JSON:
//
//	module: astronomy
//	symbols:
//	  - name: Add
//	    kind: function
//	    signature: (a, b)
//	    doc: |
//	      Adds two numbers.
//	  - name: Color
//	    kind: enumeration
//	    members: [RED, GREEN, BLUE]
//	    doc: ...
//
// The Python introspection provider emits the same format as JSON.
package manifest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/symbol"
)

// File is the on-disk shape of a manifest.
type File struct {
	Module  string  `yaml:"module,omitempty"`
	Symbols []Entry `yaml:"symbols"`
}

// Entry describes one symbol.
type Entry struct {
	Name      string   `yaml:"name"`
	Kind      string   `yaml:"kind"`
	Signature string   `yaml:"signature,omitempty"`
	Doc       string   `yaml:"doc,omitempty"`
	Members   []string `yaml:"members,omitempty"`
}

// Provider loads symbols from a manifest file.
type Provider struct {
	path string
}

// New returns a provider reading the manifest at path.
func New(path string) *Provider {
	return &Provider{path: path}
}

// Symbols implements symbol.Provider.
func (p *Provider) Symbols(ctx context.Context) (_ []symbol.Symbol, err error) {
	defer derrors.Wrap(&err, "manifest %s", p.path)
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a manifest and returns its public symbols in name order.
// Kind names that are not recognized decode as symbol.Unknown.
func Decode(r io.Reader) ([]symbol.Symbol, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", derrors.BadInput, err)
	}
	syms := make([]symbol.Symbol, 0, len(f.Symbols))
	for _, e := range f.Symbols {
		syms = append(syms, symbol.Symbol{
			Name:      e.Name,
			Kind:      symbol.ParseKind(e.Kind),
			Signature: e.Signature,
			Doc:       strings.TrimRight(e.Doc, " \t\n"),
			Members:   e.Members,
		})
	}
	return symbol.Normalize(syms), nil
}

// Encode writes syms as a YAML manifest.
func Encode(w io.Writer, module string, syms []symbol.Symbol) error {
	f := File{Module: module}
	for _, s := range syms {
		f.Symbols = append(f.Symbols, Entry{
			Name:      s.Name,
			Kind:      s.Kind.String(),
			Signature: s.Signature,
			Doc:       s.Doc,
			Members:   s.Members,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return err
	}
	return enc.Close()
}
