// Package markdown renders parsed docstrings as reference-document Markdown.
//
// Output is byte-stable: the same symbol and doc always produce the same
// text, so generated files can be diffed across runs.
package markdown

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agentflare-ai/pydown/internal/docstring"
	"github.com/agentflare-ai/pydown/internal/symbol"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces &, < and > with their HTML entities.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// TypeLink renders a type name as a table cell. Names beginning with an
// uppercase letter are user-defined types and link to their anchor;
// anything else is a built-in and renders as plain code.
func TypeLink(name string) string {
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return fmt.Sprintf("[`%s`](#%s)", name, name)
	}
	return fmt.Sprintf("`%s`", name)
}

// Heading returns the heading text for a symbol.
func Heading(s symbol.Symbol) string {
	switch s.Kind {
	case symbol.Function:
		return s.Name + Escape(s.Signature)
	case symbol.Class:
		return "class " + s.Name
	default:
		return s.Name
	}
}

// Section writes a top-level section header.
func Section(w io.Writer, anchor, title string) {
	fmt.Fprintf(w, "---\n\n<a name=\"%s\"></a>\n## %s\n\n", anchor, title)
}

// Fragment writes the documentation for one symbol. A nil doc writes
// nothing: undocumented symbols are left out of the reference.
func Fragment(w io.Writer, s symbol.Symbol, d *docstring.Doc) {
	if d == nil {
		return
	}
	fmt.Fprintf(w, "\n---\n\n<a name=\"%s\"></a>\n### %s\n", s.Name, Heading(s))
	body(w, d)
	fmt.Fprint(w, "\n")
}

func body(w io.Writer, d *docstring.Doc) {
	fmt.Fprint(w, "\n")
	if d.Summary != "" {
		fmt.Fprintf(w, "**%s**\n\n", d.Summary)
	}
	if d.Description != "" {
		fmt.Fprintf(w, "%s\n\n", d.Description)
	}
	entryTable(w, d.Parameters, "Parameter")
	entryTable(w, d.Attributes, "Attribute")
	enumTable(w, d.EnumValues)
	fmt.Fprint(w, "\n")
}

func entryTable(w io.Writer, entries []docstring.Entry, tag string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(w, "| Type | %s | Description |\n", tag)
	fmt.Fprint(w, "| --- | --- | --- |\n")
	for _, e := range entries {
		fmt.Fprintf(w, "| %s | `%s` | %s |\n", TypeLink(e.Type), e.Name, strings.TrimSpace(e.Description))
	}
	fmt.Fprint(w, "\n")
}

func enumTable(w io.Writer, values []docstring.EnumValue) {
	if len(values) == 0 {
		return
	}
	fmt.Fprint(w, "| Value | Description |\n")
	fmt.Fprint(w, "| --- | --- |\n")
	for _, v := range values {
		fmt.Fprintf(w, "| `%s` | %s |\n", v.Name, v.Description)
	}
}
