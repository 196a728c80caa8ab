package layout

import (
	"strings"

	"github.com/mvp-joe/pylayout/internal/pysrc"
)

// Scope is the lexical scope a statement was found in. It determines which
// classification rules apply: assignments only become ClassVar nodes inside
// a class body.
type Scope int

const (
	ScopeModule Scope = iota
	ScopeClass
)

// Decorator and naming markers recognized by the classifier.
const (
	staticMethodMarker = "staticmethod"
	propertyMarker     = "property"
	setterMarker       = "setter"
	dunderMarker       = "__"
	privateMarker      = "_"

	// unknownName is the placeholder for assignment targets whose shape the
	// classifier does not recognize.
	unknownName = "unknown"
)

// Build classifies a module's statement sequence into a declaration tree
// rooted at a synthetic Root node. Statements that map to no recognized
// category are dropped; duplicates are preserved as distinct nodes; nothing
// is reordered.
func Build(stmts []pysrc.Statement) *DeclNode {
	root := newRoot()
	appendChildren(root, stmts, ScopeModule)
	return root
}

func appendChildren(parent *DeclNode, stmts []pysrc.Statement, scope Scope) {
	for _, stmt := range stmts {
		if node, ok := classify(stmt, scope); ok {
			parent.addChild(node)
		}
	}
}

// classify maps one statement to at most one declaration node. It is a pure
// mapping: malformed shapes degrade to the "unknown" name or to no node,
// never to an error.
func classify(stmt pysrc.Statement, scope Scope) (*DeclNode, bool) {
	switch stmt.Kind {
	case pysrc.StmtImport:
		return &DeclNode{Type: Import, Name: strings.Join(stmt.Names, ","), Line: stmt.Line}, true
	case pysrc.StmtClassDef:
		node := &DeclNode{Type: ClassDecl, Name: stmt.Name, Line: stmt.Line}
		appendChildren(node, stmt.Body, ScopeClass)
		return node, true
	case pysrc.StmtFunctionDef:
		return &DeclNode{Type: classifyFunction(stmt), Name: stmt.Name, Line: stmt.Line}, true
	case pysrc.StmtAssign:
		if scope != ScopeClass {
			return nil, false
		}
		return &DeclNode{Type: ClassVar, Name: assignName(stmt), Line: stmt.Line}, true
	}
	return nil, false
}

// classifyFunction applies the decorator rules first, then the naming
// rules. Only the first decorator is ever inspected; additional decorators
// are deliberately ignored.
func classifyFunction(stmt pysrc.Statement) DeclType {
	if len(stmt.Decorators) > 0 {
		switch dec := stmt.Decorators[0]; dec.Kind {
		case pysrc.DecoratorIdentifier:
			if dec.Name == staticMethodMarker {
				return StaticMethod
			}
			if dec.Name == propertyMarker {
				return GetterSetter
			}
		case pysrc.DecoratorAttribute:
			// "@x.setter" counts as a property accessor too.
			if dec.Name == setterMarker {
				return GetterSetter
			}
		}
	}
	if strings.HasPrefix(stmt.Name, dunderMarker) && strings.HasSuffix(stmt.Name, dunderMarker) {
		return MagicMethod
	}
	if strings.HasPrefix(stmt.Name, privateMarker) {
		return PrivateMethod
	}
	return PublicMethod
}

// assignName resolves the display name of a class variable from its first
// assignment target.
func assignName(stmt pysrc.Statement) string {
	if len(stmt.Targets) == 0 {
		return unknownName
	}
	switch target := stmt.Targets[0]; target.Kind {
	case pysrc.TargetIdentifier, pysrc.TargetAttribute:
		return target.Name
	}
	return unknownName
}
