package sim

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycore-go/keymaps/clueboard"
	"keycore-go/types"
)

func newClueboard(t *testing.T, opts Options) *Sim {
	t.Helper()
	s, err := New(clueboard.Layers(), clueboard.Macros, opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestScriptGolden(t *testing.T) {
	script, err := os.ReadFile("testdata/fname.sim")
	require.NoError(t, err)

	var out bytes.Buffer
	s := newClueboard(t, Options{Debounce: 1, Trace: true, Out: &out})
	require.NoError(t, s.Run(bytes.NewReader(script)))

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "fname", out.Bytes())
}

func TestDefaultDebounceTap(t *testing.T) {
	s := newClueboard(t, Options{})
	c, err := s.Lookup("Q")
	require.NoError(t, err)
	s.Set(c, true)
	s.Tick(4)
	assert.Equal(t, "-", FormatReport(s.Report()))
	s.Tick(1)
	assert.Equal(t, "Q", FormatReport(s.Report()))
	assert.Equal(t, uint32(5), s.Ticks())
}

func TestExpectMismatch(t *testing.T) {
	s := newClueboard(t, Options{Debounce: 1})
	err := s.Run(strings.NewReader("press A\ntick\nexpect B\n"))
	var ee *ExpectError
	require.True(t, errors.As(err, &ee), "err = %v", err)
	assert.Equal(t, 3, ee.Line)
	assert.Equal(t, "A", ee.Got)
}

func TestLookup(t *testing.T) {
	s := newClueboard(t, Options{})
	c, err := s.Lookup("MO(1)")
	require.NoError(t, err)
	assert.Equal(t, types.Coord{Row: 4, Col: 0}, c)

	c, err = s.Lookup("9,7")
	require.NoError(t, err)
	assert.Equal(t, types.Coord{Row: 9, Col: 7}, c)

	_, err = s.Lookup("10,0")
	assert.Error(t, err)
	_, err = s.Lookup("F13")
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	s := newClueboard(t, Options{})
	assert.ErrorContains(t, s.Run(strings.NewReader("jump\n")), "unknown command")
	assert.ErrorContains(t, s.Run(strings.NewReader("tick x\n")), "bad count")
	assert.ErrorContains(t, s.Run(strings.NewReader("press\n")), "needs at least one key")
}

func TestFormatReport(t *testing.T) {
	r := types.KeyboardReport{Modifiers: types.KeyRGui.ModifierBit() | types.KeyLCtrl.ModifierBit()}
	r.Keys[0] = types.KeyC
	assert.Equal(t, "LCtrl RGui C", FormatReport(r))
	assert.Equal(t, "-", FormatReport(types.KeyboardReport{}))
}
