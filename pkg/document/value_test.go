package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeepsInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", 1.0)
	o.Set("a", 2.0)
	o.Set("c", 3.0)
	o.Set("a", 4.0)

	assert.Equal(t, []string{"b", "a", "c"}, o.Keys())
	assert.Equal(t, 3, o.Len())

	v, ok := o.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)
	assert.True(t, o.Has("c"))
	assert.False(t, o.Has("z"))

	var visited []string
	o.Range(func(k string, _ any) bool {
		visited = append(visited, k)
		return k != "a"
	})
	assert.Equal(t, []string{"b", "a"}, visited)

	keys := o.Keys()
	keys[0] = "mutated"
	assert.Equal(t, "b", o.Keys()[0])
}

func TestUndefined(t *testing.T) {
	assert.True(t, IsUndefined(Undefined))
	assert.False(t, IsUndefined(nil))
	assert.False(t, IsUndefined(""))
}

func TestIsScalar(t *testing.T) {
	assert.True(t, IsScalar(nil))
	assert.True(t, IsScalar("x"))
	assert.True(t, IsScalar(1.0))
	assert.True(t, IsScalar(false))
	assert.False(t, IsScalar([]any{}))
	assert.False(t, IsScalar(NewObject()))
	assert.False(t, IsScalar(Undefined))
}
