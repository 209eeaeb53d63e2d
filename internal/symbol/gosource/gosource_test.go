package gosource

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/symbol"
)

func loadShapes(t *testing.T) map[string]symbol.Symbol {
	t.Helper()
	syms, err := New("testdata/shapes", "").Symbols(context.Background())
	require.NoError(t, err)

	var names []string
	byName := make(map[string]symbol.Symbol)
	for _, s := range syms {
		names = append(names, s.Name)
		byName[s.Name] = s
	}
	assert.Equal(t, []string{
		"Area", "Circle", "Color", "Drain", "NewCircle", "ShapeError", "Undocumented", "Unit", "Version",
	}, names)
	return byName
}

func TestSymbolKinds(t *testing.T) {
	syms := loadShapes(t)
	for name, want := range map[string]symbol.Kind{
		"Area":       symbol.Function,
		"Drain":      symbol.Function,
		"NewCircle":  symbol.Function,
		"Circle":     symbol.Class,
		"Color":      symbol.Enumeration,
		"ShapeError": symbol.Exception,
		"Unit":       symbol.Unknown,
		"Version":    symbol.Unknown,
	} {
		assert.Equal(t, want, syms[name].Kind, name)
	}
}

func TestSignatures(t *testing.T) {
	syms := loadShapes(t)
	assert.Equal(t, "(radius float64) float64", syms["Area"].Signature)
	assert.Equal(t, "(ch <-chan int)", syms["Drain"].Signature)
	assert.Equal(t, "(r float64) *Circle", syms["NewCircle"].Signature)
	assert.Empty(t, syms["Circle"].Signature)
}

func TestDocText(t *testing.T) {
	syms := loadShapes(t)
	assert.Equal(t,
		"Area returns the area of a circle.\n\nParameters\n----------\nradius : float64\n    The circle radius.",
		syms["Area"].Doc)
	assert.Empty(t, syms["Undocumented"].Doc)
}

func TestEnumMembers(t *testing.T) {
	syms := loadShapes(t)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, syms["Color"].Members)
	assert.Nil(t, syms["Circle"].Members)
}

func TestLoadError(t *testing.T) {
	_, err := New("testdata/does-not-exist", "").Symbols(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.BadInput), "got %v", err)
}

func TestLocalPattern(t *testing.T) {
	assert.Equal(t, "./testdata/shapes", localPattern("testdata/shapes", ""))
	assert.Equal(t, "./testdata", localPattern("./testdata", ""))
	assert.Equal(t, "fmt", localPattern("fmt", ""))
	assert.Equal(t, "x.go", localPattern("x.go", ""))
}
