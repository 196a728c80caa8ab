package layout

import "fmt"

// CheckOrder walks the subtree and returns every place the non-decreasing
// rank invariant is violated among siblings. A node's own violations come
// first, followed by each child's subtree in sibling order — not a global
// line sort.
func (n *DeclNode) CheckOrder() []Issue {
	var issues []Issue

	// The baseline always advances to the most recent sibling, flagged or
	// not, so consecutive descending declarations each report against their
	// immediate predecessor. Equal rank is accepted.
	var prev *DeclNode
	for _, child := range n.Children {
		if prev != nil && child.Type.Rank() < prev.Type.Rank() {
			issues = append(issues, Issue{
				Line: child.Line,
				Msg:  fmt.Sprintf("%q should not be after %q", child.Name, prev.Name),
			})
		}
		prev = child
	}

	for _, child := range n.Children {
		issues = append(issues, child.CheckOrder()...)
	}

	return issues
}
