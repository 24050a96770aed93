package comments

import (
	"github.com/jwrfree/jatinotes-sub000/internal/models"
)

// Node is one comment in the reply forest.
type Node struct {
	models.Comment
	Children []*Node
}

// Organize converts a flat, order-preserved list of comments into a forest
// of reply trees. Each record's effective parent is its ParentID when set;
// otherwise its LegacyParentID is resolved against the LegacyExternalID of
// the other records. A comment whose parent cannot be resolved, is missing
// from the input, or is the comment itself becomes a root. Sibling order
// follows input order, so callers should pass the list already sorted.
func Organize(flat []models.Comment) []*Node {
	nodes := make([]*Node, len(flat))
	byID := make(map[string]*Node, len(flat))
	for i := range flat {
		n := &Node{Comment: flat[i]}
		nodes[i] = n
		byID[flat[i].ID] = n
	}

	legacyToID := make(map[int64]string)
	for _, c := range flat {
		if c.LegacyExternalID != nil {
			legacyToID[*c.LegacyExternalID] = c.ID
		}
	}

	roots := make([]*Node, 0, len(flat))
	for _, n := range nodes {
		parentID := resolveParentID(n.Comment, legacyToID)
		if parentID == "" || parentID == n.ID {
			roots = append(roots, n)
			continue
		}
		parent, ok := byID[parentID]
		if !ok {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	return roots
}

// resolveParentID picks the native reference first, then falls back to the
// legacy numeric scheme.
func resolveParentID(c models.Comment, legacyToID map[int64]string) string {
	if c.ParentID != nil && *c.ParentID != "" {
		return *c.ParentID
	}
	if c.LegacyParentID != nil {
		if id, ok := legacyToID[*c.LegacyParentID]; ok {
			return id
		}
	}
	return ""
}

// Walk visits the forest depth-first in sibling order. It refuses to
// re-descend into a node it has already visited, so a cycle in the stored
// parent links cannot hang the traversal.
func Walk(roots []*Node, visit func(n *Node, depth int)) {
	seen := make(map[string]bool)
	var descend func(n *Node, depth int)
	descend = func(n *Node, depth int) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		visit(n, depth)
		for _, child := range n.Children {
			descend(child, depth+1)
		}
	}
	for _, root := range roots {
		descend(root, 0)
	}
}

// Flatten returns the forest as a flat list in traversal order.
func Flatten(roots []*Node) []models.Comment {
	var out []models.Comment
	Walk(roots, func(n *Node, _ int) {
		out = append(out, n.Comment)
	})
	return out
}
