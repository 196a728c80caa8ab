package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclType_RankOrder(t *testing.T) {
	t.Parallel()

	// The canonical policy: every category ranks strictly above the one
	// declared before it.
	ordered := []DeclType{
		Root,
		Import,
		ClassDecl,
		ClassVar,
		MagicMethod,
		StaticMethod,
		GetterSetter,
		PublicMethod,
		PrivateMethod,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(),
			"%s should rank above %s", ordered[i], ordered[i-1])
	}

	assert.Equal(t, 0, Root.Rank())
	assert.Equal(t, 8, PrivateMethod.Rank())
}

func TestDeclType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "root", Root.String())
	assert.Equal(t, "magic_method", MagicMethod.String())
	assert.Equal(t, "getter_setter", GetterSetter.String())
	assert.Equal(t, "unknown", DeclType(42).String())
}
