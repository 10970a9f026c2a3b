package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testLanguage = `
name: test
segments:
  C: {phonemes: [p, t, k]}
  V: {phonemes: [a, i, u]}
syllables:
  - segments: [C, V]
stem:
  balance: [0, 1]
`

func writeLanguage(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lang.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func runApp(t *testing.T, cfg Config, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	app := newApp(cfg)
	app.Writer = out
	app.ErrWriter = errOut
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"genling"}, args...))
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	path := writeLanguage(t, testLanguage)

	t.Run("prints words", func(t *testing.T) {
		out, logs, err := runApp(t, Config{Count: 10, AppEnv: "production"}, "--file", path, "--count", "5")
		require.NoError(t, err)

		words := strings.Fields(out)
		require.Len(t, words, 5)
		for _, w := range words {
			assert.Regexp(t, `^[ptk][aiu][ptk][aiu]$`, w)
		}
		assert.Contains(t, logs, `"msg":"words generated"`)
		assert.Contains(t, logs, `"run_id"`)
	})

	t.Run("seed makes output reproducible", func(t *testing.T) {
		first, _, err := runApp(t, Config{}, "-f", path, "-n", "20", "--seed", "42")
		require.NoError(t, err)
		second, _, err := runApp(t, Config{}, "-f", path, "-n", "20", "--seed", "42")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("config supplies defaults", func(t *testing.T) {
		out, _, err := runApp(t, Config{File: path, Count: 3})
		require.NoError(t, err)
		assert.Len(t, strings.Fields(out), 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runApp(t, Config{Count: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), errNoFile.Error())

		var exit cli.ExitCoder
		require.ErrorAs(t, err, &exit)
		assert.Equal(t, 2, exit.ExitCode())
	})

	t.Run("unknown log format", func(t *testing.T) {
		var err error
		require.NotPanics(t, func() {
			_, _, err = runApp(t, Config{Count: 1, LogFormat: "yaml"}, "--file", path)
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid LOG_FORMAT "yaml"`)

		var exit cli.ExitCoder
		require.ErrorAs(t, err, &exit)
		assert.Equal(t, 2, exit.ExitCode())
	})

	t.Run("text log format", func(t *testing.T) {
		out, logs, err := runApp(t, Config{Count: 1, AppEnv: "production", LogFormat: "text"}, "--file", path)
		require.NoError(t, err)
		assert.Len(t, strings.Fields(out), 1)
		assert.Contains(t, logs, `msg="words generated"`)
	})

	t.Run("negative count", func(t *testing.T) {
		_, _, err := runApp(t, Config{}, "-f", path, "-n", "-1")
		require.Error(t, err)
	})

	t.Run("invalid definition", func(t *testing.T) {
		bad := writeLanguage(t, "segments: {A: {phonemes: []}}\nsyllables: [{segments: [A]}]")
		_, logs, err := runApp(t, Config{Count: 1}, "-f", bad)
		require.Error(t, err)
		assert.Contains(t, logs, "failed to load language")
	})

	t.Run("exhausted generation", func(t *testing.T) {
		exhausted := writeLanguage(t, testLanguage+"filters: [{kind: regex, pattern: \".\"}]\n")
		_, logs, err := runApp(t, Config{Count: 2}, "-f", exhausted)
		require.Error(t, err)
		assert.Contains(t, logs, "generation failed")
	})
}
