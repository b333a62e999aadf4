// Command orthoroute routes rectilinear connectors for diagram documents
// and renders the result as JSON waypoints, SVG, or a terminal preview.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &routeOptions{}

	root := &cobra.Command{
		Use:   "orthoroute",
		Short: "Rectilinear connector routing for diagram documents",
		Long: `orthoroute computes right-angle connector paths between shapes on a
2D canvas, avoiding the other shapes. Documents are JSON or YAML files
listing shapes and connectors.`,
		Example: `  orthoroute route diagram.json
  orthoroute svg -o diagram.svg diagram.yaml
  orthoroute preview diagram.json`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.Float64Var(&opts.stubLength, "stub", 0, "stub length in world units (0 = default)")
	flags.Float64Var(&opts.padding, "padding", 0, "obstacle clearance in world units (0 = default)")
	flags.Float64Var(&opts.connectedPadding, "connected-padding", 0, "clearance around attached shapes (0 = default)")

	root.AddCommand(newRouteCommand(opts))
	root.AddCommand(newSVGCommand(opts))
	root.AddCommand(newPreviewCommand(opts))
	return root
}
