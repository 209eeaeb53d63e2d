package manifest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/pydown/internal/derrors"
	"github.com/agentflare-ai/pydown/internal/symbol"
)

func TestProviderYAML(t *testing.T) {
	syms, err := New("testdata/colors.yaml").Symbols(context.Background())
	require.NoError(t, err)
	require.Len(t, syms, 3)

	assert.Equal(t, "Color", syms[0].Name)
	assert.Equal(t, symbol.Enumeration, syms[0].Kind)
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, syms[0].Members)
	assert.True(t, strings.HasSuffix(syms[0].Doc, "BLUE : The color blue."), "trailing newline trimmed: %q", syms[0].Doc)

	assert.Equal(t, "PI", syms[1].Name)
	assert.Equal(t, symbol.Unknown, syms[1].Kind)

	assert.Equal(t, "mix", syms[2].Name)
	assert.Equal(t, symbol.Function, syms[2].Kind)
	assert.Equal(t, "(a, b)", syms[2].Signature)
	assert.True(t, strings.HasPrefix(syms[2].Doc, "Mixes two colors.\n\nParameters\n----------\na : Color\n    First color.\n"))
}

func TestProviderJSON(t *testing.T) {
	syms, err := New("testdata/colors.json").Symbols(context.Background())
	require.NoError(t, err)
	require.Len(t, syms, 2)
	assert.Equal(t, "Color", syms[0].Name)
	assert.Empty(t, syms[0].Doc)
	assert.Equal(t, "mix", syms[1].Name)
}

func TestProviderMissingFile(t *testing.T) {
	_, err := New("testdata/nope.yaml").Symbols(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "testdata/nope.yaml")
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("symbols:\n  - name: x\n    knd: function\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, derrors.BadInput))
}

func TestDecodeEmpty(t *testing.T) {
	syms, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, syms)
}

func TestEncodeDecode(t *testing.T) {
	in := []symbol.Symbol{
		{Name: "Body", Kind: symbol.Enumeration, Doc: "Bodies.\n\nValues\nSun : The Sun.", Members: []string{"Sun"}},
		{Name: "Search", Kind: symbol.Function, Signature: "(t: Time) -> float", Doc: "Searches."},
	}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "astronomy", in))
	assert.Contains(t, buf.String(), "module: astronomy")

	out, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
