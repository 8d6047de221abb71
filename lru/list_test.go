package lru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPushFront(t *testing.T) {
	l := newList(4)
	assert.Equal(t, 0, l.size)
	_, ok := l.tailKey()
	assert.False(t, ok)

	a := l.pushFront("a")
	l.pushFront("b")
	c := l.pushFront("c")
	assert.Equal(t, 3, l.size)
	assert.Equal(t, c, l.head)
	assert.Equal(t, a, l.tail)
	assert.Equal(t, []string{"a", "b", "c"}, l.keys())

	key, ok := l.tailKey()
	assert.True(t, ok)
	assert.Equal(t, "a", key)
}

func TestListMoveToFront(t *testing.T) {
	l := newList(4)
	a := l.pushFront("a")
	b := l.pushFront("b")
	c := l.pushFront("c")

	// moving the head is a no-op
	l.moveToFront(c)
	assert.Equal(t, []string{"a", "b", "c"}, l.keys())

	// moving the tail
	l.moveToFront(a)
	assert.Equal(t, []string{"b", "c", "a"}, l.keys())
	assert.Equal(t, a, l.head)
	assert.Equal(t, b, l.tail)

	// moving a middle node
	l.moveToFront(c)
	assert.Equal(t, []string{"b", "a", "c"}, l.keys())

	// a single node list
	single := newList(1)
	only := single.pushFront("only")
	single.moveToFront(only)
	assert.Equal(t, []string{"only"}, single.keys())
	assert.Equal(t, only, single.head)
	assert.Equal(t, only, single.tail)
}

func TestListRemove(t *testing.T) {
	l := newList(4)
	a := l.pushFront("a")
	b := l.pushFront("b")
	c := l.pushFront("c")
	d := l.pushFront("d")

	// a middle node
	l.remove(b)
	assert.Equal(t, []string{"a", "c", "d"}, l.keys())
	assert.Equal(t, 3, l.size)

	// the tail
	l.remove(a)
	assert.Equal(t, []string{"c", "d"}, l.keys())
	key, ok := l.tailKey()
	assert.True(t, ok)
	assert.Equal(t, "c", key)

	// the head
	l.remove(d)
	assert.Equal(t, []string{"c"}, l.keys())
	assert.Equal(t, c, l.head)
	assert.Equal(t, c, l.tail)

	// the last node empties the list
	l.remove(c)
	assert.Equal(t, 0, l.size)
	assert.Equal(t, none, l.head)
	assert.Equal(t, none, l.tail)
	_, ok = l.tailKey()
	assert.False(t, ok)
}

func TestListReuse(t *testing.T) {
	l := newList(2)
	a := l.pushFront("a")
	l.pushFront("b")
	grown := len(l.nodes)

	// a freed slot is handed out again before the arena grows
	l.remove(a)
	c := l.pushFront("c")
	assert.Equal(t, a, c)
	assert.Equal(t, grown, len(l.nodes))
	assert.Equal(t, []string{"b", "c"}, l.keys())
}

func TestListReset(t *testing.T) {
	l := newList(4)
	l.pushFront("a")
	l.pushFront("b")
	l.reset()

	assert.Equal(t, 0, l.size)
	assert.Equal(t, none, l.head)
	assert.Equal(t, none, l.tail)
	assert.Equal(t, []string{}, l.keys())

	l.pushFront("c")
	assert.Equal(t, []string{"c"}, l.keys())
}
