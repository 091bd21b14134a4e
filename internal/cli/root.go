package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "prism",
		Short: "Server-driven UI backend for dynamic screen flows",
		Long: `Prism serves JSON screen documents to a server-driven UI client:
navigation responses, brand theming, a file-based screen builder and a
navigation-graph analysis over flow folders.

Screens live on disk as assets/{brand}/{flowId}/{screenId}.json (or
assets/{flowId}/{screenId}.json in flat deployments).`,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  RunServe,
	}
	serveCmd.Flags().Int("port", 0, "Listen port (overrides config)")
	serveCmd.Flags().String("assets", "", "Assets root directory (overrides config)")

	graphCmd := &cobra.Command{
		Use:   "graph <folder>",
		Short: "Build the navigation graph of one flow folder",
		Args:  cobra.ExactArgs(1),
		RunE:  RunGraph,
	}
	graphCmd.Flags().String("assets", "", "Assets root directory (overrides config)")
	graphCmd.Flags().Bool("json", false, "Print the graph as JSON")
	graphCmd.Flags().Bool("unresolved", false, "Also list references that resolved to no screen")

	flowsCmd := &cobra.Command{
		Use:   "flows [brand]",
		Short: "List flows and screens under the assets root",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunFlows,
	}
	flowsCmd.Flags().String("assets", "", "Assets root directory (overrides config)")
	flowsCmd.Flags().Bool("json", false, "Print machine-readable listing")

	validateCmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Lint a screen document against the component catalog",
		Args:  cobra.ExactArgs(1),
		RunE:  RunValidate,
	}
	validateCmd.Flags().Bool("json", false, "Print machine-readable findings")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print prism version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("prism %s\n", version)
		},
	}

	rootCmd.AddCommand(serveCmd, graphCmd, flowsCmd, validateCmd, versionCmd)
	rootCmd.Version = version
	return rootCmd
}
