package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orthoroute/export"
	"orthoroute/importer"
	"orthoroute/routing"
	"orthoroute/terminal"
)

// routeOptions carries the tunable flag values shared by all subcommands.
type routeOptions struct {
	stubLength       float64
	padding          float64
	connectedPadding float64
}

// router builds a Router with the default configuration, overridden by
// whichever flags were set.
func (o *routeOptions) router() *routing.Router {
	config := routing.DefaultConfig
	if o.stubLength > 0 {
		config.StubLength = o.stubLength
	}
	if o.padding > 0 {
		config.ObstaclePadding = o.padding
	}
	if o.connectedPadding > 0 {
		config.ConnectedPadding = o.connectedPadding
	}

	router := routing.NewRouter(nil)
	router.SetConfig(config)
	return router
}

func newRouteCommand(opts *routeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "route <document>",
		Short: "Route every connector and print the waypoints as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			routed := opts.router().RouteAll(doc.Connectors, doc.ShapeMap())
			out, err := json.MarshalIndent(routed, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding waypoints: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newSVGCommand(opts *routeOptions) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "svg <document>",
		Short: "Route the document and write an SVG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := importer.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outputFile, err)
				}
				defer f.Close()
				out = f
			}
			return export.WriteSVG(out, doc, opts.router())
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	return cmd
}

func newPreviewCommand(opts *routeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <document>",
		Short: "Show the routed document in the terminal (Esc or q to quit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := importer.Load(args[0])
			if err != nil {
				return err
			}
			return terminal.Preview(doc, opts.router())
		},
	}
}
