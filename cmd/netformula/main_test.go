package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

const twoLayerDoc = `layers:
  - "LinLayer :: <2, 1>"
  - "SigmaLayer :: <1>"
params: [0.5, 0.5, 1.0]
`

func TestRunFormulas(t *testing.T) {
	code, stdout, stderr := runCLI(writeDoc(t, twoLayerDoc))

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "s_1_0 = (0.5)*s_0_0 + (0.5)*s_0_1 + (1.0);\n\ns_2_0 = sigma(s_1_0);\n\n", stdout)
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"no arguments", nil, "You did not specify filename"},
		{"too many", []string{"a.yaml", "b.yaml"}, "Too many arguments"},
		{"unknown flag", []string{"-nope", "a.yaml"}, "-nope"},
		{"empty sigma", []string{"-sigma", "", "a.yaml"}, "-sigma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tt.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"missing params", "layers: []\n", "malformed data"},
		{"bad layer", "layers: [\"FooLayer :: <1, 1>\"]\nparams: []\n", "bad layer specification"},
		{"mismatch", "layers: [\"LinLayer :: <2, 1>\"]\nparams: [0.5, 0.5]\n", "wrong number of parameters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(writeDoc(t, tt.src))
			assert.Equal(t, exitError, code)
			assert.Empty(t, stdout, "no partial output")
			assert.Contains(t, stderr, "netformula: ")
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestRunMissingFile(t *testing.T) {
	code, stdout, stderr := runCLI(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to open document")
}

func TestRunOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "formulas.txt")
	code, stdout, _ := runCLI("-o", out, "-sigma", "logistic", writeDoc(t, twoLayerDoc))
	require.Equal(t, exitOK, code)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "s_2_0 = logistic(s_1_0);\n")
}

func TestRunStrict(t *testing.T) {
	src := "layers: [\"SigmaLayer :: <2>\", \"SigmaLayer :: <3>\"]\nparams: []\n"
	path := writeDoc(t, src)

	code, _, _ := runCLI(path)
	assert.Equal(t, exitOK, code)

	code, stdout, stderr := runCLI("-strict", path)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "layer 2")
}

func TestRunSummary(t *testing.T) {
	code, stdout, _ := runCLI("-summary", writeDoc(t, twoLayerDoc))
	require.Equal(t, exitOK, code)

	assert.Contains(t, stdout, "LAYER")
	assert.Contains(t, stdout, "LinLayer")
	assert.Contains(t, stdout, "SigmaLayer")
	assert.NotContains(t, stdout, "s_1_0")
}

func TestRunVerbose(t *testing.T) {
	code, stdout, stderr := runCLI("-v", writeDoc(t, twoLayerDoc))
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "s_2_0")
	assert.Contains(t, stderr, "loaded document")
	assert.Contains(t, stderr, "level=DEBUG")
}
