package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prism-dev/prism/internal/screen"
)

// RunFlows lists flows and their screens. With a brand argument the
// listing is scoped to that brand's folder; without one it covers the
// assets root directly (flat deployments).
func RunFlows(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	brandScoped := len(args) == 1
	store := screen.NewStore(cfg.AssetsDir, brandScoped, newLogger(cfg.LogLevel))
	var repo *screen.Repository
	if brandScoped {
		repo = store.Repository(args[0])
	} else {
		repo = store.Repository("")
	}

	flows := repo.ListFlows()
	listing := make(map[string][]string, len(flows))
	for _, flow := range flows {
		listing[flow] = repo.ListScreens(flow)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(map[string]any{"flows": listing, "count": len(flows)})
	}

	if len(flows) == 0 {
		fmt.Printf("no flows under %s\n", repo.Root())
		return nil
	}
	for _, flow := range flows {
		fmt.Println(flow)
		for _, id := range listing[flow] {
			fmt.Printf("  %s\n", id)
		}
	}
	return nil
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
