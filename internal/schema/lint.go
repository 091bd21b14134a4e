package schema

import (
	"fmt"
	"sort"
)

// Warning is one advisory finding from Lint. Path is a slash-joined
// location inside the document ("content/0/children/1").
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Lint walks a decoded screen tree and reports component types absent
// from the catalog and props not declared on their component spec.
// Findings are advisory; documents are served regardless.
func (c Catalog) Lint(root any) []Warning {
	var warnings []Warning

	type frame struct {
		value any
		path  string
	}

	stack := []frame{{value: root, path: ""}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := cur.value.(type) {
		case map[string]any:
			warnings = append(warnings, c.lintComponent(v, cur.path)...)
			keys := make([]string, 0, len(v))
			for key := range v {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				stack = append(stack, frame{value: v[key], path: joinPath(cur.path, key)})
			}
		case []any:
			for i, item := range v {
				stack = append(stack, frame{value: item, path: joinPath(cur.path, fmt.Sprintf("%d", i))})
			}
		}
	}

	sort.Slice(warnings, func(i, j int) bool {
		if warnings[i].Path == warnings[j].Path {
			return warnings[i].Message < warnings[j].Message
		}
		return warnings[i].Path < warnings[j].Path
	})
	return warnings
}

func (c Catalog) lintComponent(obj map[string]any, path string) []Warning {
	typeValue, ok := obj["type"].(string)
	if !ok {
		return nil
	}

	spec, known := c.Lookup(typeValue)
	if !known {
		return []Warning{{Path: path, Message: fmt.Sprintf("unknown component type %q", typeValue)}}
	}

	var warnings []Warning
	props, _ := obj["props"].(map[string]any)
	for name := range props {
		if _, declared := spec.Props[name]; !declared {
			warnings = append(warnings, Warning{
				Path:    joinPath(path, "props"),
				Message: fmt.Sprintf("component %q has no prop %q", typeValue, name),
			})
		}
	}
	if _, hasChildren := obj["children"]; hasChildren && !spec.HasChildren {
		warnings = append(warnings, Warning{
			Path:    path,
			Message: fmt.Sprintf("component %q does not accept children", typeValue),
		})
	}
	return warnings
}

func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}
	return base + "/" + segment
}
