package document

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/netformula/internal/network"
)

func TestDecode(t *testing.T) {
	src := `
layers:
  - "LinLayer :: <2, 1>"
  - "SigmaLayer :: <1>"
params: [0.5, 0.5, 1]
`
	doc, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"LinLayer :: <2, 1>", "SigmaLayer :: <1>"}, doc.Layers)
	assert.Equal(t, []float64{0.5, 0.5, 1}, doc.Params)
}

func TestDecodeJSON(t *testing.T) {
	src := `{"layers": ["SigmaLayer :: <2>"], "params": []}`
	doc, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"SigmaLayer :: <2>"}, doc.Layers)
	assert.Empty(t, doc.Params)
}

func TestDecodeEmptyLists(t *testing.T) {
	for _, src := range []string{"layers: []\nparams: []\n", "layers:\nparams:\n"} {
		doc, err := Decode(strings.NewReader(src))
		require.NoError(t, err, src)
		assert.Empty(t, doc.Layers)
		assert.Empty(t, doc.Params)
	}
}

func TestDecodeSpecialFloats(t *testing.T) {
	doc, err := Decode(strings.NewReader("layers: []\nparams: [.inf, -.inf, .nan, 1e-3]\n"))
	require.NoError(t, err)
	require.Len(t, doc.Params, 4)
	assert.True(t, math.IsInf(doc.Params[0], 1))
	assert.True(t, math.IsInf(doc.Params[1], -1))
	assert.True(t, math.IsNaN(doc.Params[2]))
	assert.Equal(t, 1e-3, doc.Params[3])
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"missing layers", "params: [1]\n"},
		{"missing params", "layers: []\n"},
		{"not a mapping", "- a\n- b\n"},
		{"scalar", "hello\n"},
		{"layers not a list", "layers: LinLayer\nparams: []\n"},
		{"params not numbers", "layers: []\nparams: [a, b]\n"},
		{"params mapping", "layers: []\nparams: {a: 1}\n"},
		{"syntax", "layers: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	src := "layers: [\"LinLayer :: <2, 1>\"]\nparams: [0.5, 0.5, 1.0]\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	n, err := doc.Network()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, n.Generate(&buf))
	assert.Equal(t, "s_1_0 = (0.5)*s_0_0 + (0.5)*s_0_1 + (1.0);\n\n", buf.String())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layers: []\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), path)
}

func TestDocumentNetworkOptions(t *testing.T) {
	doc := &Document{Layers: []string{"SigmaLayer :: <1>"}}

	n, err := doc.Network(network.WithSigmaName("act"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, n.Generate(&buf))
	assert.Equal(t, "s_1_0 = act(s_0_0);\n\n", buf.String())
}
