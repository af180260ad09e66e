package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, path := range [][]string{{"macro", "compile"}, {"macro", "check"}, {"sim"}, {"keys"}} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}
	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestMacroCompileStdout(t *testing.T) {
	src := writeFile(t, "m.txt", "# test\nHI: Hi\n")
	out, err := execute(t, "macro", "compile", "--pkg", "demo", src)
	require.NoError(t, err)
	assert.Contains(t, out, "package demo")
	assert.Contains(t, out, "HI types.SequenceID = iota")
	assert.Contains(t, out, "types.PressKey(types.KeyLShift),")
}

func TestMacroCompileToFile(t *testing.T) {
	src := writeFile(t, "m.txt", "A: a\n")
	dst := filepath.Join(t.TempDir(), "gen.go")
	_, err := execute(t, "macro", "compile", "-o", dst, src)
	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "package macros")
}

func TestMacroCompileFailsOnUnmapped(t *testing.T) {
	src := writeFile(t, "m.txt", "OK: fine\nBAD: naïve\n")
	_, err := execute(t, "macro", "compile", src)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "line 2 BAD")
}

func TestMacroCheck(t *testing.T) {
	src := writeFile(t, "m.txt", "X: x\nY: Y\n")
	out, err := execute(t, "macro", "check", src)
	require.NoError(t, err)
	assert.Contains(t, out, "0\tX\t2 steps")
	assert.Contains(t, out, "1\tY\t4 steps")
	assert.Contains(t, out, "2 macro(s) ok")
}

func TestSimPassAndFail(t *testing.T) {
	ok := writeFile(t, "ok.sim", "press A\ntick 5\nexpect A\nreport\n")
	out, err := execute(t, "sim", ok)
	require.NoError(t, err)
	assert.Equal(t, "report: A\n", out)

	bad := writeFile(t, "bad.sim", "press A\ntick 5\nexpect B\n")
	_, err = execute(t, "sim", bad)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, err = execute(t, "sim", "--keymap", "nope", ok)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSimTrace(t *testing.T) {
	script := writeFile(t, "t.sim", "press LCtrl\ntick\n")
	out, err := execute(t, "sim", "--debounce", "1", "--trace", script)
	require.NoError(t, err)
	assert.Equal(t, "tick 1: LCtrl\n", out)
}

func TestKeys(t *testing.T) {
	out, err := execute(t, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "0xE1\tLShift\n")
	assert.Contains(t, out, "0x04\tA\n")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))
}
