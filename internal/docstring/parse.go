// Package docstring parses the docstring dialect used by pydown.
//
// A docstring has an optional summary line followed by a blank line, free
// description text, and labeled sections:
//
//	Adds two numbers.
//
//	Parameters
//	----------
//	a : float
//	    First addend.
//
//	Values
//	------
//	RED : The color red.
//
// Parameters and Attributes hold "name : type" headers followed by indented
// description lines. Values holds one "NAME : description" line per member.
// Returns, Example and Examples are accepted and ignored.
package docstring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentflare-ai/pydown/internal/derrors"
)

// Entry is one documented parameter or attribute.
type Entry struct {
	Name        string
	Type        string
	Description string
}

// EnumValue is one documented member of an enumeration.
type EnumValue struct {
	Name        string
	Description string
}

// Doc is the structured form of one docstring.
type Doc struct {
	Summary     string
	Description string
	Parameters  []Entry
	Attributes  []Entry
	EnumValues  []EnumValue
}

// SyntaxError reports a docstring line that does not follow the dialect.
type SyntaxError struct {
	Line int // 1-based line number within the docstring
	Text string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("docstring line %d: %s: %q", e.Line, e.Msg, e.Text)
}

func (e *SyntaxError) Unwrap() error { return derrors.Malformed }

type mode string

const (
	modeNone       mode = ""
	modeParameters mode = "Parameters"
	modeReturns    mode = "Returns"
	modeExample    mode = "Example"
	modeExamples   mode = "Examples"
	modeAttributes mode = "Attributes"
	modeValues     mode = "Values"
)

var (
	underlineRE = regexp.MustCompile(`^-+$`)
	enumValueRE = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_]*)\s*:\s*(.*)$`)
)

func sectionLabel(line string) (mode, bool) {
	switch m := mode(line); m {
	case modeParameters, modeReturns, modeExample, modeExamples, modeAttributes, modeValues:
		return m, true
	}
	return modeNone, false
}

type parser struct {
	doc         Doc
	description strings.Builder
	mode        mode
	// Index of the entry receiving continuation lines, per section; -1 if none.
	currentParam int
	currentAttr  int
}

// Parse converts raw docstring text into a Doc. Any line that breaks the
// dialect fails the whole parse with a *SyntaxError.
func Parse(raw string) (*Doc, error) {
	lines := strings.Split(raw, "\n")
	p := &parser{currentParam: -1, currentAttr: -1}

	first := 0
	if len(lines) >= 2 && !isBlank(lines[0]) && isBlank(lines[1]) {
		p.doc.Summary = lines[0]
		first = 2
	}
	for i := first; i < len(lines); i++ {
		if err := p.line(i+1, lines[i]); err != nil {
			return nil, err
		}
	}
	p.doc.Description = p.description.String()
	return &p.doc, nil
}

func (p *parser) line(lineno int, line string) error {
	if underlineRE.MatchString(line) {
		return nil
	}
	if m, ok := sectionLabel(line); ok {
		p.mode = m
		return nil
	}
	if isBlank(line) {
		p.mode = modeNone
		return nil
	}
	switch p.mode {
	case modeNone:
		p.description.WriteString(line)
		p.description.WriteByte('\n')
		return nil
	case modeParameters:
		return p.entryLine(lineno, line, &p.doc.Parameters, &p.currentParam)
	case modeAttributes:
		return p.entryLine(lineno, line, &p.doc.Attributes, &p.currentAttr)
	case modeReturns, modeExample, modeExamples:
		return nil
	case modeValues:
		return p.enumLine(lineno, line)
	default:
		return fmt.Errorf("%w: docstring parser in unknown mode %q", derrors.Internal, string(p.mode))
	}
}

func (p *parser) entryLine(lineno int, line string, entries *[]Entry, current *int) error {
	if line[0] == ' ' || line[0] == '\t' {
		if *current < 0 {
			return &SyntaxError{Line: lineno, Text: line, Msg: "description line before any name : type entry"}
		}
		e := &(*entries)[*current]
		text := strings.TrimSpace(line)
		if e.Description == "" {
			e.Description = text
		} else {
			e.Description += " " + text
		}
		return nil
	}
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return &SyntaxError{Line: lineno, Text: line, Msg: "expected name : type"}
	}
	*entries = append(*entries, Entry{
		Name: strings.TrimSpace(parts[0]),
		Type: strings.TrimSpace(parts[1]),
	})
	*current = len(*entries) - 1
	return nil
}

func (p *parser) enumLine(lineno int, line string) error {
	m := enumValueRE.FindStringSubmatch(line)
	if m == nil {
		return &SyntaxError{Line: lineno, Text: line, Msg: "expected NAME : description in Values section"}
	}
	p.doc.EnumValues = append(p.doc.EnumValues, EnumValue{
		Name:        m[1],
		Description: strings.TrimSpace(m[2]),
	})
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
