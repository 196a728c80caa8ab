package pysrc

// StatementKind discriminates the statement shapes the linter cares about.
// Everything else is StmtOther.
type StatementKind int

const (
	StmtOther StatementKind = iota
	StmtImport
	StmtClassDef
	StmtFunctionDef
	StmtAssign
)

// DecoratorKind discriminates the expression after the "@".
type DecoratorKind int

const (
	DecoratorOther DecoratorKind = iota
	DecoratorIdentifier
	DecoratorAttribute
)

// Decorator is one decorator on a function or class definition. For
// DecoratorAttribute, Name is the trailing attribute ("setter" for
// "@x.setter"); for DecoratorIdentifier it is the bare identifier.
type Decorator struct {
	Kind DecoratorKind
	Name string
}

// TargetKind discriminates the left-hand side of an assignment.
type TargetKind int

const (
	TargetOther TargetKind = iota
	TargetIdentifier
	TargetAttribute
)

// Target is one assignment target. For TargetAttribute, Name is the
// trailing attribute ("x" for "self.x").
type Target struct {
	Kind TargetKind
	Name string
}

// Statement is the statement-level view of a parsed node. Which fields are
// populated depends on Kind:
//
//	StmtImport:      Names (imported names, in clause order)
//	StmtClassDef:    Name, Body (the class body statements, in source order)
//	StmtFunctionDef: Name, Decorators
//	StmtAssign:      Targets, Annotated
type Statement struct {
	Kind       StatementKind
	Line       int // 1-based source line
	Name       string
	Names      []string
	Body       []Statement
	Decorators []Decorator
	Targets    []Target
	Annotated  bool
}

// Module is the ordered sequence of top-level statements of one file.
type Module struct {
	Statements []Statement
}
