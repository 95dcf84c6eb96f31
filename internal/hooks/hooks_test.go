package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func suffix(s string) Filter {
	return func(v string) string { return v + s }
}

func TestBus_PriorityOrder(t *testing.T) {
	b := New()
	b.Add(PostsWhere, "late", 20, suffix("c"))
	b.Add(PostsWhere, "first", DefaultPriority, suffix("a"))
	b.Add(PostsWhere, "second", DefaultPriority, suffix("b"))

	assert.Equal(t, "abc", b.Apply(PostsWhere, ""))
}

func TestBus_AddReplacesSameID(t *testing.T) {
	b := New()
	b.Add(PostsJoin, "x", DefaultPriority, suffix("1"))
	b.Add(PostsJoin, "x", DefaultPriority, suffix("2"))

	assert.Equal(t, 1, b.Len(PostsJoin))
	assert.Equal(t, "2", b.Apply(PostsJoin, ""))
}

func TestBus_RemoveIdempotent(t *testing.T) {
	b := New()
	b.Add(PostsDistinct, "d", DefaultPriority, suffix("!"))

	assert.True(t, b.Has(PostsDistinct, "d"))
	assert.True(t, b.Remove(PostsDistinct, "d"))
	assert.False(t, b.Remove(PostsDistinct, "d"))
	assert.False(t, b.Has(PostsDistinct, "d"))
	assert.Equal(t, "v", b.Apply(PostsDistinct, "v"))
}

func TestBus_UnknownHook(t *testing.T) {
	b := New()
	assert.Equal(t, "same", b.Apply("nothing", "same"))
	assert.False(t, b.Remove("nothing", "id"))
}

func TestBus_FilterRemovesItself(t *testing.T) {
	b := New()
	b.Add(PostsWhere, "once", DefaultPriority, func(v string) string {
		b.Remove(PostsWhere, "once")
		return v + "x"
	})

	assert.Equal(t, "x", b.Apply(PostsWhere, ""))
	assert.Equal(t, "", b.Apply(PostsWhere, ""))
}

func TestBus_SnapshotIsFrozen(t *testing.T) {
	b := New()
	b.Add(PostsJoin, "j", DefaultPriority, suffix("J"))
	b.Add(PostsDistinct, "d", DefaultPriority, func(string) string { return "DISTINCT" })

	snap := b.Snapshot(PostsJoin, PostsWhere, PostsDistinct)
	b.Remove(PostsJoin, "j")
	b.Remove(PostsDistinct, "d")
	b.Add(PostsWhere, "w", DefaultPriority, suffix("W"))

	assert.Equal(t, "J", snap.Apply(PostsJoin, ""))
	assert.Equal(t, "", snap.Apply(PostsWhere, ""))
	assert.Equal(t, "DISTINCT", snap.Apply(PostsDistinct, ""))
	assert.Equal(t, "", b.Apply(PostsJoin, ""))
}
