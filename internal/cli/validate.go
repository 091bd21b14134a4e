package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prism-dev/prism/internal/schema"
)

// RunValidate lints one screen document against the component catalog.
// Findings are advisory: the server never rejects a document over them,
// and the command exits zero either way.
func RunValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s is not valid JSON: %w", args[0], err)
	}

	// Full documents carry the tree under "screen"; bare trees lint
	// as-is.
	target := any(doc)
	if tree, ok := doc["screen"]; ok {
		target = tree
	}

	catalog := schema.Default()
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("component catalog is inconsistent: %w", err)
	}
	warnings := catalog.Lint(target)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(map[string]any{"file": args[0], "warnings": warnings})
	}

	if len(warnings) == 0 {
		fmt.Printf("%s: ok\n", args[0])
		return nil
	}
	fmt.Printf("%s: %d warnings\n", args[0], len(warnings))
	for _, w := range warnings {
		fmt.Printf("  %s: %s\n", w.Path, w.Message)
	}
	return nil
}
