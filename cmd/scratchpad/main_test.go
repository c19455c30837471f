package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestScan(t *testing.T) {
	path := writeFile(t, "a.c", "x = \"hello\" \" \" \"world\";\ny = \"bad\\q\";\n")

	out, errOut, err := run(t, "scan", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "16/65536")
	assert.Contains(t, errOut, path+":2: unknown escape sequence \\q")
}

func TestScanOverflow(t *testing.T) {
	path := writeFile(t, "long.c", "s = \""+strings.Repeat("w", 100)+"\";\n")

	out, _, err := run(t, "scan", "--capacity", "16", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3/16")
}

func TestScanAllocatorFailure(t *testing.T) {
	bad := writeFile(t, "long.c", "s = \""+strings.Repeat("w", 100)+"\";\n")
	good := writeFile(t, "ok.c", "t = 1;\n")

	out, errOut, err := run(t, "scan", "--capacity", "16", "--overflow-limit", "8", bad, good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, errOut, "scan failed")
	assert.Contains(t, errOut, "out of memory")
	assert.Contains(t, out, good, "later files still scanned")
}

func TestScanUnterminated(t *testing.T) {
	path := writeFile(t, "open.c", "s = \"open\n")

	_, errOut, err := run(t, "scan", path)
	require.Error(t, err)
	assert.Contains(t, errOut, "unterminated")
}

func TestScanConfig(t *testing.T) {
	path := writeFile(t, "a.c", "a = b;\n")
	cfg := writeFile(t, "pad.yaml", "capacity: 128\n")

	out, _, err := run(t, "scan", "--config", cfg, path)
	require.NoError(t, err)
	assert.Contains(t, out, "6/128")

	t.Setenv("SCRATCHPAD_CAPACITY", "256")
	out, _, err = run(t, "scan", "--config", cfg, path)
	require.NoError(t, err)
	assert.Contains(t, out, "6/256", "environment wins over the file")
}

func TestBadFlags(t *testing.T) {
	path := writeFile(t, "a.c", "a;\n")

	_, _, err := run(t, "scan", "--log-level", "loud", path)
	assert.Error(t, err)

	_, _, err = run(t, "scan", filepath.Join(t.TempDir(), "missing.c"))
	assert.Error(t, err)

	_, _, err = run(t, "scan")
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	path := writeFile(t, "a.c", "x = 1;\ny = \"two\";\n")

	out, _, err := run(t, "dump", path)
	require.NoError(t, err)
	assert.Equal(t, "x0*y0*\n   l\n      t\noverflow: 0 blocks, 0 bytes\n", out)
}
