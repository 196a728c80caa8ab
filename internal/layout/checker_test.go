package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/pylayout/internal/pysrc"
)

func child(t DeclType, name string, line int) *DeclNode {
	return &DeclNode{Type: t, Name: name, Line: line}
}

func TestCheckOrder_NonDecreasingIsClean(t *testing.T) {
	t.Parallel()

	root := newRoot()
	root.Children = []*DeclNode{
		child(Import, "os", 1),
		child(ClassDecl, "A", 3),
		child(PublicMethod, "main", 10),
	}

	assert.Empty(t, root.CheckOrder())
}

func TestCheckOrder_EqualRankIsAccepted(t *testing.T) {
	t.Parallel()

	root := newRoot()
	root.Children = []*DeclNode{
		child(PublicMethod, "first", 1),
		child(PublicMethod, "second", 4),
	}

	assert.Empty(t, root.CheckOrder())
}

func TestCheckOrder_ZeroOrOneChild(t *testing.T) {
	t.Parallel()

	root := newRoot()
	assert.Empty(t, root.CheckOrder())

	root.Children = []*DeclNode{child(PrivateMethod, "_only", 2)}
	assert.Empty(t, root.CheckOrder())
}

func TestCheckOrder_RankDropIsFlaggedWithLaterLine(t *testing.T) {
	t.Parallel()

	root := newRoot()
	root.Children = []*DeclNode{
		child(PublicMethod, "bark", 2),
		child(Import, "os", 5),
	}

	issues := root.CheckOrder()

	require.Len(t, issues, 1)
	assert.Equal(t, 5, issues[0].Line)
	assert.Equal(t, `"os" should not be after "bark"`, issues[0].Msg)
}

func TestCheckOrder_BaselineAlwaysAdvances(t *testing.T) {
	t.Parallel()

	// Consecutive descending declarations each report against their
	// immediate predecessor, not a resynchronized baseline.
	root := newRoot()
	root.Children = []*DeclNode{
		child(PublicMethod, "bark", 1),
		child(MagicMethod, "__repr__", 2),
		child(ClassVar, "age", 3),
	}

	issues := root.CheckOrder()

	require.Len(t, issues, 2)
	assert.Equal(t, `"__repr__" should not be after "bark"`, issues[0].Msg)
	assert.Equal(t, `"age" should not be after "__repr__"`, issues[1].Msg)
}

func TestCheckOrder_RecoveryAfterDropIsNotFlagged(t *testing.T) {
	t.Parallel()

	// 5 -> 3 is a violation; 3 -> 4 goes back up and is fine.
	root := newRoot()
	root.Children = []*DeclNode{
		child(StaticMethod, "from_dict", 1),
		child(ClassVar, "name", 2),
		child(MagicMethod, "__init__", 3),
	}

	issues := root.CheckOrder()

	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
}

func TestCheckOrder_OwnIssuesPrecedeDescendants(t *testing.T) {
	t.Parallel()

	// The class's internal violation is on an earlier line than the
	// module-level one, but own-level issues still come first.
	cls := child(ClassDecl, "A", 1)
	cls.Children = []*DeclNode{
		child(PublicMethod, "run", 2),
		child(MagicMethod, "__init__", 3),
	}

	root := newRoot()
	root.Children = []*DeclNode{
		cls,
		child(Import, "os", 10),
	}

	issues := root.CheckOrder()

	require.Len(t, issues, 2)
	assert.Equal(t, 10, issues[0].Line, "module-level issue first")
	assert.Equal(t, 3, issues[1].Line, "descendant issue second despite smaller line")
}

func TestCheckOrder_DescendantBlocksInSiblingOrder(t *testing.T) {
	t.Parallel()

	first := child(ClassDecl, "A", 1)
	first.Children = []*DeclNode{
		child(PublicMethod, "a", 2),
		child(ClassVar, "x", 3),
	}
	second := child(ClassDecl, "B", 10)
	second.Children = []*DeclNode{
		child(PrivateMethod, "_b", 11),
		child(MagicMethod, "__init__", 12),
	}

	root := newRoot()
	root.Children = []*DeclNode{first, second}

	issues := root.CheckOrder()

	require.Len(t, issues, 2)
	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, 12, issues[1].Line)
}

func TestCheckOrder_ClassScenario(t *testing.T) {
	t.Parallel()

	// A class whose members appear as: static method, field, constructor,
	// public method, magic method, field. Exactly three issues, in order.
	stmts := []pysrc.Statement{
		{Kind: pysrc.StmtClassDef, Line: 1, Name: "Dog", Body: []pysrc.Statement{
			{Kind: pysrc.StmtFunctionDef, Line: 3, Name: "from_dict", Decorators: []pysrc.Decorator{
				{Kind: pysrc.DecoratorIdentifier, Name: "staticmethod"},
			}},
			{Kind: pysrc.StmtAssign, Line: 6, Targets: []pysrc.Target{{Kind: pysrc.TargetIdentifier, Name: "name"}}},
			{Kind: pysrc.StmtFunctionDef, Line: 8, Name: "__init__"},
			{Kind: pysrc.StmtFunctionDef, Line: 11, Name: "bark"},
			{Kind: pysrc.StmtFunctionDef, Line: 14, Name: "__repr__"},
			{Kind: pysrc.StmtAssign, Line: 17, Targets: []pysrc.Target{{Kind: pysrc.TargetIdentifier, Name: "age"}}},
		}},
	}

	issues := Build(stmts).CheckOrder()

	require.Len(t, issues, 3)
	assert.Equal(t, Issue{Line: 6, Msg: `"name" should not be after "from_dict"`}, issues[0])
	assert.Equal(t, Issue{Line: 14, Msg: `"__repr__" should not be after "bark"`}, issues[1])
	assert.Equal(t, Issue{Line: 17, Msg: `"age" should not be after "__repr__"`}, issues[2])
}

func TestCheckOrder_Deterministic(t *testing.T) {
	t.Parallel()

	stmts := []pysrc.Statement{
		{Kind: pysrc.StmtFunctionDef, Line: 1, Name: "b"},
		{Kind: pysrc.StmtImport, Line: 2, Names: []string{"os"}},
		{Kind: pysrc.StmtClassDef, Line: 3, Name: "C", Body: []pysrc.Statement{
			{Kind: pysrc.StmtFunctionDef, Line: 4, Name: "_p"},
			{Kind: pysrc.StmtFunctionDef, Line: 5, Name: "__init__"},
		}},
	}

	first := Build(stmts).CheckOrder()
	second := Build(stmts).CheckOrder()

	assert.Equal(t, first, second)
}

func TestPrettyPrint(t *testing.T) {
	t.Parallel()

	cls := child(ClassDecl, "Dog", 1)
	cls.Children = []*DeclNode{child(PublicMethod, "bark", 2)}
	root := newRoot()
	root.Children = []*DeclNode{cls}

	out := root.PrettyPrint()

	assert.Equal(t, "0 0 root root\n    1 2 class_decl Dog\n        2 7 public_method bark", out)
}
