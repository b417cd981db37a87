package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newRenderCmd creates the render command, which computes a descriptor and
// draws the resulting geometry.
func newRenderCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <descriptor.toml>",
		Short: "Compute a layout descriptor and draw it",
		Long:  `Render decodes a TOML layout descriptor, resolves every node's position and size, and draws the tree as a colored ANSI grid on stdout or as a PNG file.`,
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
			logger.Debug("computed layout",
				"descriptor", args[0],
				"target", fmt.Sprintf("%gx%g", doc.Target.Width, doc.Target.Height),
				"duration", time.Since(start))

			switch format {
			case "ansi":
				fmt.Fprintln(cmd.OutOrStdout(), RenderANSI(layout, doc.Labels()))
				return nil
			case "png":
				if output == "" {
					output = "layout.png"
				}
				if err := RenderPNG(layout, doc.Labels(), output); err != nil {
					return fmt.Errorf("rendering png: %w", err)
				}
				logger.Info("wrote png", "path", output)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want ansi or png)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "ansi", "output format (ansi or png)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path for png format")

	return cmd
}
