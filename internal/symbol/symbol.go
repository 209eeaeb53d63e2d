// Package symbol describes the public symbols of a program unit as plain
// data, and the Provider interface that discovers them.
package symbol

import (
	"context"
	"sort"
	"strings"
)

// Kind classifies a symbol.
type Kind int

const (
	Unknown Kind = iota
	Function
	Class
	Enumeration
	Exception
	Module
)

var kindNames = [...]string{
	Unknown:     "unknown",
	Function:    "function",
	Class:       "class",
	Enumeration: "enumeration",
	Exception:   "exception",
	Module:      "module",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// ParseKind maps a kind name to a Kind. Names are case-insensitive, and
// "enum" and "error" are accepted as aliases. Anything else is Unknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "function", "func":
		return Function
	case "class", "type":
		return Class
	case "enumeration", "enum":
		return Enumeration
	case "exception", "error":
		return Exception
	case "module", "package":
		return Module
	default:
		return Unknown
	}
}

// Symbol is the metadata a provider reports for one public name.
type Symbol struct {
	Name string
	Kind Kind
	// Signature is the call signature text, for functions only.
	Signature string
	// Doc is the raw docstring. Empty means the symbol is undocumented.
	Doc string
	// Members lists the member names of an enumeration.
	Members []string
}

// A Provider enumerates the public symbols of one program unit.
type Provider interface {
	// Symbols returns the public symbols, sorted by name.
	Symbols(ctx context.Context) ([]Symbol, error)
}

// IsPrivate reports whether name is private by convention.
func IsPrivate(name string) bool {
	return name == "" || strings.HasPrefix(name, "_")
}

// Normalize drops private names and nested modules, and sorts the rest
// lexicographically by name. The input slice is not modified.
func Normalize(syms []Symbol) []Symbol {
	out := make([]Symbol, 0, len(syms))
	for _, s := range syms {
		if IsPrivate(s.Name) || s.Kind == Module {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
