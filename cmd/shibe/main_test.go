package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-shibe/internal/cli"
)

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return cli.ExitOK
	}
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Code
}

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	script := writeScript(t, dir, "hi.shibe", "#!/usr/bin/shibe\nprint \"hi\"\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, strings.NewReader(`print "also"`), []string{script, "-"})
	require.NoError(t, err)
	assert.Equal(t, "hi\nalso\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunNoArguments(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestRunFailureDiagnostics(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeScript(t, dir, "a.shibe", `print "a"`)
	b := writeScript(t, dir, "b.shibe", "print (\n")
	c := writeScript(t, dir, "c.shibe", `print "c"`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, strings.NewReader(""), []string{a, b, c})
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
	assert.Equal(t, "a\n", stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "shibe: "+b+": parse error: "), stderr.String())
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.shibe")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, strings.NewReader(""), []string{missing})
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
	assert.Contains(t, stderr.String(), "shibe: "+missing+": error opening input")
}

func TestRunContinueOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := writeScript(t, dir, "bad.shibe", "print missing\n")
	good := writeScript(t, dir, "good.shibe", `print "ok"`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, strings.NewReader(""),
		[]string{"-continue-on-error", bad, good})
	assert.Equal(t, cli.ExitFailure, exitCode(t, err))
	assert.Equal(t, "ok\n", stdout.String())
	assert.Contains(t, stderr.String(), "interpret error")
}

func TestRunStarlarkFromConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	config := writeScript(t, dir, "shibe.yaml", "dialect: starlark\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, strings.NewReader("print(len('wow'))"),
		[]string{"-config", config, "-"})
	require.NoError(t, err)
	assert.Equal(t, "3\n", stdout.String())
}

func TestRunUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{name: "help", args: []string{"-h"}, wantCode: cli.ExitOK, wantErr: "Usage: shibe"},
		{name: "version", args: []string{"-v"}, wantCode: cli.ExitOK, wantErr: "shibe v0.0.1"},
		{name: "bad flag", args: []string{"-x"}, wantCode: cli.ExitUsage, wantErr: "flag provided but not defined"},
		{name: "bad config file", args: []string{"-config", "shibe.toml"}, wantCode: cli.ExitUsage},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), &stdout, &stderr, strings.NewReader(""), tc.args)
			assert.Equal(t, tc.wantCode, exitCode(t, err))
			assert.Contains(t, stderr.String(), tc.wantErr)
			assert.Empty(t, stdout.String())
		})
	}
}
