package builder

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// TreeItem is one entry in the builder's file tree. File paths are
// extension-less, matching the read/write/delete addressing scheme.
type TreeItem struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Path     string     `json:"path"`
	Children []TreeItem `json:"children,omitempty"`
}

// Tree lists the whole assets tree: folders recurse, files are limited
// to *.json. A missing root yields an empty tree.
func (s *Service) Tree() []TreeItem {
	return buildTree(s.root, "")
}

func buildTree(base, relPath string) []TreeItem {
	entries, err := os.ReadDir(filepath.Join(base, filepath.FromSlash(relPath)))
	if err != nil {
		return []TreeItem{}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	items := make([]TreeItem, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		entryPath := path.Join(relPath, name)

		if entry.IsDir() {
			items = append(items, TreeItem{
				Name:     name,
				Type:     "folder",
				Path:     entryPath,
				Children: buildTree(base, entryPath),
			})
			continue
		}
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		items = append(items, TreeItem{
			Name: strings.TrimSuffix(name, ".json"),
			Type: "file",
			Path: strings.TrimSuffix(entryPath, ".json"),
		})
	}
	return items
}
