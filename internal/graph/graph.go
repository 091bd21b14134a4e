// Package graph recovers the navigation graph of a flow folder: one node
// per screen document, one edge per navigation reference that resolves
// to a sibling screen. It is an offline analysis over the same JSON
// documents the navigation endpoints serve; it never sits on the live
// request path.
package graph

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// EdgeLabel is attached to every resolved navigation edge.
const EdgeLabel = "navigates to"

// BackRef pops the client's own history stack. It has no server-side
// target, so it never becomes an edge.
const BackRef = ":back"

// Node is one screen document discovered in the folder scan.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Path  string `json:"path"`
}

// Edge is a resolved screen-to-screen transition. Edges are recomputed
// on every build and never deduplicated: two references to the same
// target are two edges.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
}

// Ref is a navigation reference that did not resolve to a node in the
// folder. The default outputs drop these silently; they exist for
// diagnostic tooling only.
type Ref struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Graph is the result of one folder build.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	// Unresolved lists dropped references. Not part of the wire shape
	// of the graph endpoint.
	Unresolved []Ref `json:"-"`
}

// Builder builds navigation graphs from flow folders.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder returns a builder. A nil logger falls back to slog.Default.
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger}
}

// Build scans the *.json files directly inside folder (non-recursive)
// and assembles the navigation graph. relPath is the folder's path
// relative to the assets root, used for node paths. A malformed file
// skips that file's edges only; the build never fails because of it.
func (b *Builder) Build(folder, relPath string) (*Graph, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read flow folder %s: %w", folder, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	g := &Graph{
		Nodes: make([]Node, 0, len(files)),
		Edges: make([]Edge, 0),
	}

	ids := make(map[string]bool, len(files))
	for _, file := range files {
		id := strings.TrimSuffix(file, ".json")
		ids[id] = true
		g.Nodes = append(g.Nodes, Node{
			ID:    id,
			Label: id,
			Type:  "screen",
			Path:  path.Join(relPath, id),
		})
	}

	for _, file := range files {
		sourceID := strings.TrimSuffix(file, ".json")

		data, err := os.ReadFile(filepath.Join(folder, file))
		if err != nil {
			b.logger.Warn("skipping unreadable screen file", "file", file, "error", err)
			continue
		}
		var content any
		if err := json.Unmarshal(data, &content); err != nil {
			b.logger.Warn("skipping malformed screen file", "file", file, "error", err)
			continue
		}

		for _, ref := range CollectRefs(content) {
			target, ok := resolveRef(ref, ids)
			if !ok {
				if ref != BackRef {
					g.Unresolved = append(g.Unresolved, Ref{Source: sourceID, Value: ref})
				}
				continue
			}
			g.Edges = append(g.Edges, Edge{
				Source: sourceID,
				Target: target,
				Label:  EdgeLabel,
			})
		}
	}

	return g, nil
}

// resolveRef maps a reference string to a node id within the folder.
// References may be bare ids or full paths; only the final path segment
// counts. Anything that does not name a sibling screen is dropped:
// graphs are single-folder, cross-folder references stay out.
func resolveRef(ref string, ids map[string]bool) (string, bool) {
	if ref == BackRef {
		return "", false
	}
	parts := strings.Split(ref, "/")
	candidate := parts[len(parts)-1]
	if !ids[candidate] {
		return "", false
	}
	return candidate, true
}
