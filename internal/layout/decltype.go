package layout

// DeclType is the category of a classified declaration. The categories form
// a closed set with a total order: within one scope, declarations must
// appear in non-decreasing rank order.
type DeclType int

const (
	// Root is the synthetic root of a declaration tree, never produced by
	// classification.
	Root DeclType = iota
	Import
	ClassDecl
	ClassVar
	MagicMethod
	StaticMethod
	GetterSetter
	PublicMethod
	PrivateMethod
)

// declRank is the canonical layout policy: the expected ordering of
// declarations within a scope, lowest rank first. Kept as an explicit table
// (rather than relying on constant declaration order) so the policy is
// auditable and testable on its own.
var declRank = [...]int{
	Root:          0,
	Import:        1,
	ClassDecl:     2,
	ClassVar:      3,
	MagicMethod:   4,
	StaticMethod:  5,
	GetterSetter:  6,
	PublicMethod:  7,
	PrivateMethod: 8,
}

var declNames = [...]string{
	Root:          "root",
	Import:        "import",
	ClassDecl:     "class_decl",
	ClassVar:      "class_var",
	MagicMethod:   "magic_method",
	StaticMethod:  "static_method",
	GetterSetter:  "getter_setter",
	PublicMethod:  "public_method",
	PrivateMethod: "private_method",
}

// Rank returns the position of the type in the canonical order.
func (t DeclType) Rank() int {
	if t < 0 || int(t) >= len(declRank) {
		return 0
	}
	return declRank[t]
}

func (t DeclType) String() string {
	if t < 0 || int(t) >= len(declNames) {
		return "unknown"
	}
	return declNames[t]
}
