package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentGetAndPut(t *testing.T) {
	env := NewEnvironment(nil)
	env.Put("x", NewNumber(42))

	got := env.Get("x")
	assert.Equal(t, Number, got.Kind)
	assert.Equal(t, int64(42), got.Num)
}

func TestEnvironmentUnboundIsErrorValue(t *testing.T) {
	env := NewEnvironment(nil)

	got := env.Get("missing")
	assert.Equal(t, Error, got.Kind)
	assert.Equal(t, "Unbound Symbol 'missing'", got.Str)
}

func TestEnvironmentParentChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Put("x", NewNumber(1))

	child := NewEnvironment(root)
	child.Put("y", NewNumber(2))

	assert.Equal(t, int64(2), child.Get("y").Num)
	assert.Equal(t, int64(1), child.Get("x").Num)
	assert.Equal(t, Error, root.Get("y").Kind, "parent must not see child bindings")
}

func TestEnvironmentShadowing(t *testing.T) {
	root := NewEnvironment(nil)
	root.Put("x", NewNumber(1))

	child := NewEnvironment(root)
	child.Put("x", NewNumber(2))

	assert.Equal(t, int64(2), child.Get("x").Num)
	assert.Equal(t, int64(1), root.Get("x").Num)
}

func TestEnvironmentDefWalksToRoot(t *testing.T) {
	root := NewEnvironment(nil)
	child := NewEnvironment(root)
	grandchild := NewEnvironment(child)

	grandchild.Def("g", NewNumber(7))

	assert.Equal(t, int64(7), root.Get("g").Num)
}

func TestEnvironmentPutReplacesInPlace(t *testing.T) {
	env := NewEnvironment(nil)
	env.Put("x", NewNumber(1))
	env.Put("x", NewNumber(2))

	assert.Equal(t, int64(2), env.Get("x").Num)
}

func TestEnvironmentBindingsAreOwnedCopies(t *testing.T) {
	env := NewEnvironment(nil)
	v := NewNumber(1)
	env.Put("x", v)

	v.Num = 99
	assert.Equal(t, int64(1), env.Get("x").Num, "Put must copy, not alias, the caller's value")

	got := env.Get("x")
	got.Num = 42
	assert.Equal(t, int64(1), env.Get("x").Num, "Get must return an independent copy")
}

func TestEnvironmentCopySharesParentButNotBindings(t *testing.T) {
	root := NewEnvironment(nil)
	env := NewEnvironment(root)
	env.Put("x", NewNumber(1))

	cp := env.Copy()
	cp.Put("x", NewNumber(2))

	assert.Equal(t, int64(1), env.Get("x").Num)
	assert.Equal(t, int64(2), cp.Get("x").Num)
	assert.Same(t, root, cp.Parent())
}
