// Package comments assembles a work item's flat, parent-indexed comment
// rows into reply trees on demand. Storage stays flat; the forest only
// exists while rendering or locating a node.
package comments

import (
	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// Node is one comment plus its ordered replies.
type Node struct {
	models.Comment
	Replies []*Node
}

// Build organizes flat comments into a forest: top-level roots in creation
// order, and within each node, children in creation order. The input must
// already be sorted by creation order (the store guarantees this); no depth
// limit applies.
func Build(flat []models.Comment) []*Node {
	byID := make(map[int64]*Node, len(flat))
	nodes := make([]*Node, len(flat))
	for i := range flat {
		nodes[i] = &Node{Comment: flat[i]}
		byID[flat[i].ID] = nodes[i]
	}

	var roots []*Node
	for _, n := range nodes {
		if n.ParentID != nil {
			if parent, ok := byID[*n.ParentID]; ok {
				parent.Replies = append(parent.Replies, n)
				continue
			}
			// Orphaned reply (parent filtered out); surface as a root
			// rather than dropping it.
		}
		roots = append(roots, n)
	}
	return roots
}

// Locate finds a comment anywhere in the forest by id, for the
// highlight-and-scroll path. The second return is false when the id is not
// present (deleted item, stale link); callers get a clear signal instead of
// a panic or a nil walk.
func Locate(forest []*Node, commentID int64) (*Node, bool) {
	for _, n := range forest {
		if n.ID == commentID {
			return n, true
		}
		if found, ok := Locate(n.Replies, commentID); ok {
			return found, true
		}
	}
	return nil, false
}

// FlatNode is a forest node annotated with its depth, for indented
// rendering.
type FlatNode struct {
	*Node
	Level int
}

// Flatten converts the forest into a depth-annotated list in display order.
func Flatten(forest []*Node) []FlatNode {
	var out []FlatNode
	flatten(forest, 0, &out)
	return out
}

func flatten(forest []*Node, level int, out *[]FlatNode) {
	for _, n := range forest {
		*out = append(*out, FlatNode{Node: n, Level: level})
		flatten(n.Replies, level+1, out)
	}
}

// Count returns the total number of nodes in the forest.
func Count(forest []*Node) int {
	total := 0
	for _, n := range forest {
		total += 1 + Count(n.Replies)
	}
	return total
}
