package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// newInspectCmd creates the inspect command, which computes a descriptor
// and dumps the resolved geometry of every node.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <descriptor.toml>",
		Short: "Compute a layout descriptor and dump per-node geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			doc, err := LoadDoc(args[0])
			if err != nil {
				return err
			}
			layout, err := doc.Build()
			if err != nil {
				return err
			}

			start := time.Now()
			layout.Compute()
			logger.Debug("computed layout", "descriptor", args[0], "duration", time.Since(start))

			layout.DebugPrint(cmd.OutOrStdout())
			return nil
		},
	}
}
