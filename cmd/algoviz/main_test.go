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

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI()
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage: algoviz")

	code, _, stderr = runCLI("frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, _, _ = runCLI("sort", "-h")
	assert.Equal(t, exitOK, code)
}

func TestSort(t *testing.T) {
	code, stdout, stderr := runCLI("sort", "-algo", "bubble", "-n", "5", "-kind", "reversed")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "Bubble Sort  n=5 kind=reversed")
	assert.Contains(t, stdout, "input:  [5 4 3 2 1]")
	assert.Contains(t, stdout, "output: [1 2 3 4 5]")
	assert.Contains(t, stdout, "comparisons=10 writes=10")
}

func TestSort_Steps(t *testing.T) {
	code, stdout, _ := runCLI("sort", "-algo", "insertion", "-n", "3", "-kind", "reversed", "-steps")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "compare")
	assert.Contains(t, stdout, "output: [1 2 3]")
}

func TestSort_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"sort", "-algo", "bogo"},
		{"sort", "-kind", "sorted"},
		{"sort", "-n", "-1"},
		{"sort", "-n", "many"},
		{"sort", "extra"},
	} {
		code, _, _ := runCLI(args...)
		assert.Equal(t, exitUsage, code, args)
	}
}

func TestPath(t *testing.T) {
	code, stdout, stderr := runCLI("path", "-algo", "bfs", "-mode", "open", "-rows", "7", "-cols", "7")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "found=true")
	assert.Contains(t, stdout, "pathLen=8")

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, 'S', rune(lines[2][1]))
	assert.Equal(t, 'G', rune(lines[6][5]))
}

func TestPath_Maze(t *testing.T) {
	code, stdout, stderr := runCLI("path", "-algo", "dials", "-rows", "11", "-cols", "11", "-weights", "-seed", "3")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "found=true")
	assert.Contains(t, stdout, "###########")
}

func TestPath_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"path", "-algo", "jps"},
		{"path", "-mode", "spiral"},
		{"path", "-rows", "2"},
		{"path", "-heuristic", "chebyshev"},
	} {
		code, _, _ := runCLI(args...)
		assert.Equal(t, exitUsage, code, args)
	}
}

func TestSweep_CSV(t *testing.T) {
	code, stdout, stderr := runCLI("sweep", "-format", "csv", "-algos", "insertion,merge",
		"-min", "8", "-max", "32", "-points", "3", "-trials", "1", "-metric", "writes")
	require.Equal(t, exitOK, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "n,Insertion Sort (writes),Merge Sort (writes)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "8,"))
	assert.True(t, strings.HasPrefix(lines[3], "32,"))
}

func TestSweep_Errors(t *testing.T) {
	code, _, _ := runCLI("sweep", "-format", "xml")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI("sweep", "-metric", "joules")
	assert.Equal(t, exitUsage, code)

	code, _, stderr := runCLI("sweep", "-trials", "0")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "trials")

	code, _, _ = runCLI("sweep", "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, exitError, code)
}

func TestConfig(t *testing.T) {
	code, stdout, _ := runCLI("config")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "server:")
	assert.Contains(t, stdout, "sweep:")

	path := filepath.Join(t.TempDir(), "algoviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  logMode: prod\n"), 0o600))
	code, stdout, _ = runCLI("config", "-config", path)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "logMode: prod")
}

func TestServe_InvalidFlags(t *testing.T) {
	code, _, _ := runCLI("serve", "-log-mode", "loud")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI("serve", "-addr", "not-an-addr::::", "-log-mode", "silence")
	assert.Equal(t, exitError, code)

	code, _, stderr := runCLI("serve", "-env", filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "read env")
}
