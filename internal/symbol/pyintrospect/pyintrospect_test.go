package pyintrospect

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/symbol"
)

func requirePython(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(DefaultInterpreter); err != nil {
		t.Skipf("%s not available: %v", DefaultInterpreter, err)
	}
}

func TestSymbols(t *testing.T) {
	requirePython(t)
	syms, err := New("testdata/colors.py", "").Symbols(context.Background())
	require.NoError(t, err)

	var names []string
	byName := make(map[string]symbol.Symbol)
	for _, s := range syms {
		names = append(names, s.Name)
		byName[s.Name] = s
	}
	assert.Equal(t, []string{"Color", "Mix", "MixError", "PI_SQUARED", "Palette"}, names)

	assert.Equal(t, symbol.Enumeration, byName["Color"].Kind)
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, byName["Color"].Members)
	assert.Contains(t, byName["Color"].Doc, "RED : The color red.")

	assert.Equal(t, symbol.Function, byName["Mix"].Kind)
	assert.Equal(t, "(a, b, *, weight=0.5)", byName["Mix"].Signature)
	assert.Contains(t, byName["Mix"].Doc, "a : Color\n    First color.")

	assert.Equal(t, symbol.Exception, byName["MixError"].Kind)
	assert.Equal(t, symbol.Class, byName["Palette"].Kind)
	assert.Equal(t, symbol.Unknown, byName["PI_SQUARED"].Kind)
	assert.Empty(t, byName["PI_SQUARED"].Doc)
}

func TestImportFailure(t *testing.T) {
	requirePython(t)
	_, err := New("testdata/broken.py", "").Symbols(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.BadInput), "got %v", err)
	assert.Contains(t, err.Error(), "RuntimeError: cannot import this module")
}

func TestMissingInterpreter(t *testing.T) {
	_, err := New("testdata/colors.py", "pydown-no-such-python").Symbols(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.BadInput))
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "ValueError: x", lastLine("Traceback:\n  File x\nValueError: x"))
	assert.Equal(t, "single", lastLine("single"))
}
