package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prism-dev/prism/internal/graph"
)

// RunGraph builds the navigation graph of one flow folder offline and
// prints it. The folder argument is relative to the assets root, the
// same addressing the graph endpoint uses.
func RunGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	relPath := filepath.ToSlash(filepath.Clean(args[0]))
	folder := filepath.Join(cfg.AssetsDir, filepath.FromSlash(relPath))
	logger := newLogger(cfg.LogLevel)

	g, err := graph.NewBuilder(logger).Build(folder, relPath)
	if err != nil {
		return fmt.Errorf("failed to build graph for %s: %w", relPath, err)
	}

	showUnresolved, _ := cmd.Flags().GetBool("unresolved")
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		payload := map[string]any{"nodes": g.Nodes, "edges": g.Edges}
		if showUnresolved {
			payload["unresolved"] = g.Unresolved
		}
		return printJSON(payload)
	}

	fmt.Printf("%s: %d screens, %d links\n\n", relPath, len(g.Nodes), len(g.Edges))
	for _, node := range g.Nodes {
		fmt.Printf("  %s (%s)\n", node.ID, node.Path)
	}
	if len(g.Edges) > 0 {
		fmt.Println()
		for _, edge := range g.Edges {
			fmt.Printf("  %s -> %s\n", edge.Source, edge.Target)
		}
	}
	if showUnresolved && len(g.Unresolved) > 0 {
		fmt.Println()
		fmt.Println("unresolved references:")
		for _, ref := range g.Unresolved {
			fmt.Printf("  %s: %q\n", ref.Source, ref.Value)
		}
	}
	return nil
}
