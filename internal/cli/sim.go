package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"keycore-go/internal/sim"
	"keycore-go/keymaps/clueboard"
	"keycore-go/layout"
	"keycore-go/types"
)

// keymaps known to the simulator.
var keymaps = map[string]func() ([]layout.Layer, []types.Sequence){
	"clueboard": func() ([]layout.Layer, []types.Sequence) { return clueboard.Layers(), clueboard.Macros },
}

// SimOptions holds flags for the sim command.
type SimOptions struct {
	*RootOptions
	Keymap   string
	Debounce int
	Trace    bool
}

// NewSimCommand creates the sim command.
func NewSimCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sim <script>",
		Short: "Run a keymap against a scripted switch matrix",
		Long: `Run a keymap through the scanner, debouncer, layout engine and report
assembler with switches driven by a script. Commands, one per line:

  press KEY...     close switches
  release KEY...   open switches
  tap KEY          press, wait out the debounce, release, wait again
  tick [N]         run N ticks (default 1)
  drain            tick until no macro is playing
  expect KEYS|-    fail unless the current report matches
  report           print the current report
  layers           print the active layers

KEY is "row,col" or a base-layer name such as A, LShift or MO(1).`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Keymap, "keymap", "clueboard", "keymap to load")
	cmd.Flags().IntVar(&opts.Debounce, "debounce", 0, "debounce threshold in ticks (0 = default)")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print every report change")

	return cmd
}

func runSim(opts *SimOptions, path string, cmd *cobra.Command) error {
	load, ok := keymaps[opts.Keymap]
	if !ok {
		return NewExitError(ExitCommandError, "unknown keymap "+opts.Keymap)
	}
	layers, macros := load()

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening script", err)
	}
	defer f.Close()

	log := opts.logger()
	s, err := sim.New(layers, macros, sim.Options{
		Debounce: opts.Debounce,
		Trace:    opts.Trace,
		Out:      cmd.OutOrStdout(),
		Log:      log,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "building keymap", err)
	}
	defer s.Close()

	if err := s.Run(f); err != nil {
		var ee *sim.ExpectError
		if errors.As(err, &ee) {
			return WrapExitError(ExitFailure, path, err)
		}
		return WrapExitError(ExitCommandError, path, err)
	}
	log.Info("script finished", "script", path, "ticks", s.Ticks())
	return nil
}
