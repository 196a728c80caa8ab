package pysrc

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// ParseError reports that a file is not valid Python. The linter treats the
// file as having no issues; callers that need to distinguish "clean" from
// "unparsable" must check for this error.
type ParseError struct {
	Path string
	Line int // first offending line, 0 if unknown
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: syntax error near line %d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: failed to parse", e.Path)
}

// Parser turns Python source into the statement-level view consumed by the
// layout checker. It is stateless apart from the grammar and safe to reuse
// across files.
type Parser struct {
	language *sitter.Language
}

// NewParser creates a parser backed by the tree-sitter Python grammar.
func NewParser() *Parser {
	return &Parser{language: sitter.NewLanguage(python.Language())}
}

// ParseFile reads and parses one Python source file.
func (p *Parser) ParseFile(path string) (*Module, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(path, source)
}

// Parse parses in-memory Python source. path is used for error reporting
// only. A *ParseError is returned when the source contains syntax errors.
func (p *Parser) Parse(path string, source []byte) (*Module, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{Path: path}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, &ParseError{Path: path, Line: firstErrorLine(root)}
	}

	return &Module{Statements: convertBody(root, source)}, nil
}

// convertBody converts the named children of a module or block node.
func convertBody(node *sitter.Node, source []byte) []Statement {
	stmts := make([]Statement, 0, node.NamedChildCount())
	for i := uint(0); i < node.NamedChildCount(); i++ {
		stmts = append(stmts, convertStatement(node.NamedChild(i), source))
	}
	return stmts
}

func convertStatement(node *sitter.Node, source []byte) Statement {
	switch node.Kind() {
	case "import_statement":
		return convertImport(node, source)
	case "class_definition":
		return convertClass(node, source, nil)
	case "function_definition":
		return convertFunction(node, source, nil)
	case "decorated_definition":
		return convertDecorated(node, source)
	case "expression_statement":
		// Assignments are wrapped in an expression_statement node.
		if assign := findNamedChild(node, "assignment"); assign != nil {
			return convertAssign(assign, source)
		}
	}
	return Statement{Kind: StmtOther, Line: lineOf(node)}
}

// convertImport handles plain "import a, b.c as d" statements. from-imports
// are a different node kind and fall through to StmtOther.
func convertImport(node *sitter.Node, source []byte) Statement {
	stmt := Statement{Kind: StmtImport, Line: lineOf(node)}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		switch child.Kind() {
		case "dotted_name":
			stmt.Names = append(stmt.Names, nodeText(child, source))
		case "aliased_import":
			// "a.b as c" imports the name a.b, not the alias.
			stmt.Names = append(stmt.Names, nodeText(child.ChildByFieldName("name"), source))
		}
	}
	return stmt
}

func convertClass(node *sitter.Node, source []byte, decorators []Decorator) Statement {
	stmt := Statement{
		Kind:       StmtClassDef,
		Line:       lineOf(node),
		Name:       nodeText(node.ChildByFieldName("name"), source),
		Decorators: decorators,
	}
	if body := node.ChildByFieldName("body"); body != nil {
		stmt.Body = convertBody(body, source)
	}
	return stmt
}

func convertFunction(node *sitter.Node, source []byte, decorators []Decorator) Statement {
	return Statement{
		Kind:       StmtFunctionDef,
		Line:       lineOf(node),
		Name:       nodeText(node.ChildByFieldName("name"), source),
		Decorators: decorators,
	}
}

// convertDecorated unwraps tree-sitter's decorated_definition wrapper. The
// reported line is the def/class line, not the first decorator's.
func convertDecorated(node *sitter.Node, source []byte) Statement {
	var decorators []Decorator
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() == "decorator" {
			decorators = append(decorators, convertDecorator(child, source))
		}
	}

	def := node.ChildByFieldName("definition")
	if def == nil {
		return Statement{Kind: StmtOther, Line: lineOf(node)}
	}
	switch def.Kind() {
	case "class_definition":
		return convertClass(def, source, decorators)
	case "function_definition":
		return convertFunction(def, source, decorators)
	}
	return Statement{Kind: StmtOther, Line: lineOf(def)}
}

// convertDecorator inspects the expression after "@". Calls and anything
// else beyond a bare identifier or an attribute access are DecoratorOther.
func convertDecorator(node *sitter.Node, source []byte) Decorator {
	expr := node.NamedChild(0)
	if expr == nil {
		return Decorator{Kind: DecoratorOther}
	}
	switch expr.Kind() {
	case "identifier":
		return Decorator{Kind: DecoratorIdentifier, Name: nodeText(expr, source)}
	case "attribute":
		return Decorator{Kind: DecoratorAttribute, Name: nodeText(expr.ChildByFieldName("attribute"), source)}
	}
	return Decorator{Kind: DecoratorOther}
}

// convertAssign handles both plain and annotated assignments. Chained
// assignments ("a = b = 1") contribute one target per link; an annotated
// assignment always has exactly one target.
func convertAssign(node *sitter.Node, source []byte) Statement {
	stmt := Statement{
		Kind:      StmtAssign,
		Line:      lineOf(node),
		Annotated: node.ChildByFieldName("type") != nil,
	}
	for cur := node; cur != nil && cur.Kind() == "assignment"; {
		if left := cur.ChildByFieldName("left"); left != nil {
			stmt.Targets = append(stmt.Targets, convertTarget(left, source))
		}
		if stmt.Annotated {
			break
		}
		cur = cur.ChildByFieldName("right")
	}
	return stmt
}

func convertTarget(node *sitter.Node, source []byte) Target {
	switch node.Kind() {
	case "identifier":
		return Target{Kind: TargetIdentifier, Name: nodeText(node, source)}
	case "attribute":
		return Target{Kind: TargetAttribute, Name: nodeText(node.ChildByFieldName("attribute"), source)}
	}
	return Target{Kind: TargetOther}
}

// nodeText extracts the source text covered by a node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

func lineOf(node *sitter.Node) int {
	return int(node.StartPosition().Row) + 1
}

// findNamedChild returns the first named child of the given kind.
func findNamedChild(node *sitter.Node, kind string) *sitter.Node {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		if child := node.NamedChild(i); child.Kind() == kind {
			return child
		}
	}
	return nil
}

// firstErrorLine finds the first syntax error in document order.
func firstErrorLine(node *sitter.Node) int {
	if node.IsError() || node.IsMissing() {
		return lineOf(node)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if line := firstErrorLine(node.Child(i)); line > 0 {
			return line
		}
	}
	return 0
}
