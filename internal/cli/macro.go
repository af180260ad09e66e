package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keycore-go/macro"
	"keycore-go/types"
)

// MacroOptions holds flags for the macro commands.
type MacroOptions struct {
	*RootOptions
	Package string
	Output  string
}

// NewMacroCommand creates the macro command group.
func NewMacroCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macro",
		Short: "Compile and check macro sources",
	}
	cmd.AddCommand(newMacroCompileCommand(rootOpts))
	cmd.AddCommand(newMacroCheckCommand(rootOpts))
	return cmd
}

func newMacroCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MacroOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <source>",
		Short: "Compile a macro source into a Go file",
		Long: `Compile a file of NAME: literal lines into Go source declaring one
types.SequenceID constant per macro and the Macros table.

Any character that cannot be typed on a US layout fails the build.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := compileFile(args[0])
			if err != nil {
				return err
			}
			src, err := macro.Generate(opts.Package, seqs)
			if err != nil {
				return WrapExitError(ExitCommandError, "generating source", err)
			}
			log := opts.logger()
			if opts.Output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(opts.Output, src, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "writing output file", err)
			}
			log.Info("macros compiled", "source", args[0], "output", opts.Output, "count", len(seqs))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Package, "pkg", "macros", "Go package name for the generated file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")

	return cmd
}

func newMacroCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MacroOptions{RootOptions: rootOpts}

	return &cobra.Command{
		Use:          "check <source>",
		Short:        "Compile a macro source and list the result",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs, err := compileFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, s := range seqs {
				fmt.Fprintf(w, "%d\t%s\t%d steps\t%q\n", i, s.Name, len(s.Steps), s.Text)
				opts.logger().Debug("macro", "name", s.Name, "steps", fmt.Sprint(s.Steps))
			}
			fmt.Fprintf(w, "%d macro(s) ok\n", len(seqs))
			return nil
		},
	}
}

func compileFile(path string) ([]types.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "opening macro source", err)
	}
	defer f.Close()
	seqs, err := macro.CompileSource(f)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, path, err)
	}
	return seqs, nil
}
