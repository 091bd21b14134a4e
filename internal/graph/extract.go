package graph

// Reference-bearing property names. Any object anywhere in a screen
// document may carry them; the scan makes no assumptions about the
// component tree's shape.
const (
	refPropAPIEndpoint = "apiEndpoint"
	refPropExit        = "exit"
)

// maxScanDepth bounds the structural scan. Stored documents are plain
// JSON trees and cannot contain cycles, so the bound is a cost ceiling
// for pathological nesting, not a correctness requirement.
const maxScanDepth = 64

// CollectRefs walks a decoded JSON value and returns every string-valued
// apiEndpoint or exit property, at any nesting depth inside objects and
// arrays. The traversal is an explicit stack, not recursion, so
// adversarial documents cannot blow the goroutine stack; anything nested
// past maxScanDepth is ignored.
//
// Order follows the stack discipline rather than document order. Edges
// are order-insensitive, so callers must not rely on it.
func CollectRefs(root any) []string {
	type frame struct {
		value any
		depth int
	}

	var refs []string
	stack := []frame{{value: root, depth: 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.depth > maxScanDepth {
			continue
		}

		switch v := cur.value.(type) {
		case map[string]any:
			if endpoint, ok := v[refPropAPIEndpoint].(string); ok {
				refs = append(refs, endpoint)
			}
			if exit, ok := v[refPropExit].(string); ok {
				refs = append(refs, exit)
			}
			for _, child := range v {
				stack = append(stack, frame{value: child, depth: cur.depth + 1})
			}
		case []any:
			for _, item := range v {
				stack = append(stack, frame{value: item, depth: cur.depth + 1})
			}
		}
	}

	return refs
}
