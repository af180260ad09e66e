package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"keycore-go/types"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List key names accepted by scripts and keymaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range types.KeyNames() {
				k, _ := types.KeyByName(name)
				fmt.Fprintf(cmd.OutOrStdout(), "0x%02X\t%s\n", uint8(k), name)
			}
			return nil
		},
	}
}
