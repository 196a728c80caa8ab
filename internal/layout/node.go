package layout

import (
	"fmt"
	"strings"
)

// DeclNode is one classified declaration together with its classified
// members. A tree has exactly two meaningful levels: module declarations
// under a synthetic root, and class members under each ClassDecl. Children
// are kept in source order; the checker relies on that order to detect
// violations, so they are never re-sorted.
type DeclNode struct {
	Type     DeclType
	Name     string
	Line     int
	Children []*DeclNode
}

func newRoot() *DeclNode {
	return &DeclNode{Type: Root, Name: "root", Line: 0}
}

func (n *DeclNode) addChild(child *DeclNode) {
	n.Children = append(n.Children, child)
}

// PrettyPrint renders the subtree as an indented "LINE RANK TYPE NAME"
// listing, one node per line.
func (n *DeclNode) PrettyPrint() string {
	var sb strings.Builder
	n.prettyPrint(&sb, 0)
	return sb.String()
}

func (n *DeclNode) prettyPrint(sb *strings.Builder, indent int) {
	if indent > 0 {
		sb.WriteString("\n")
	}
	fmt.Fprintf(sb, "%s%d %d %s %s", strings.Repeat(" ", indent), n.Line, n.Type.Rank(), n.Type, n.Name)
	for _, child := range n.Children {
		child.prettyPrint(sb, indent+4)
	}
}
