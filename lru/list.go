package lru

// none marks an empty head/tail/prev/next reference in the arena
const none = -1

// node one slot of the recency arena, linked by index instead of pointer
type node struct {
	key  string
	prev int
	next int
}

// list keeps the recency order in a growable arena of nodes. The head is
// the most recently used entry, the tail the least recently used. Freed
// slots are recycled through the free list before the arena grows.
type list struct {
	nodes []node
	free  []int
	head  int
	tail  int
	size  int
}

func newList(capacity int) *list {
	return &list{
		nodes: make([]node, 0, capacity),
		head:  none,
		tail:  none,
	}
}

// alloc returns a slot for key, reusing a freed slot when one exists
func (l *list) alloc(key string) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node{key: key, prev: none, next: none}
		return i
	}
	l.nodes = append(l.nodes, node{key: key, prev: none, next: none})
	return len(l.nodes) - 1
}

// pushFront links a new node for key as the head and returns its index
func (l *list) pushFront(key string) int {
	i := l.alloc(key)
	l.nodes[i].next = l.head
	if l.head != none {
		l.nodes[l.head].prev = i
	}
	l.head = i
	if l.tail == none {
		l.tail = i
	}
	l.size++
	return i
}

// unlink detaches node i from the order without freeing its slot
func (l *list) unlink(i int) {
	prev, next := l.nodes[i].prev, l.nodes[i].next
	if prev != none {
		l.nodes[prev].next = next
	} else {
		l.head = next
	}
	if next != none {
		l.nodes[next].prev = prev
	} else {
		l.tail = prev
	}
	l.nodes[i].prev = none
	l.nodes[i].next = none
}

// moveToFront relinks node i as the head
func (l *list) moveToFront(i int) {
	if i == l.head {
		return
	}
	// i is linked and not the head, so the list keeps at least one
	// other node and the head stays valid across the unlink
	l.unlink(i)
	l.nodes[i].next = l.head
	l.nodes[l.head].prev = i
	l.head = i
}

// remove unlinks node i and returns its slot to the free list
func (l *list) remove(i int) {
	l.unlink(i)
	l.nodes[i] = node{prev: none, next: none}
	l.free = append(l.free, i)
	l.size--
}

// tailKey returns the key of the least recently used node
func (l *list) tailKey() (string, bool) {
	if l.tail == none {
		return "", false
	}
	return l.nodes[l.tail].key, true
}

// keys walks the order from the least to the most recently used
func (l *list) keys() []string {
	keys := make([]string, 0, l.size)
	for i := l.tail; i != none; i = l.nodes[i].prev {
		keys = append(keys, l.nodes[i].key)
	}
	return keys
}

// reset drops every node and reclaims the arena
func (l *list) reset() {
	l.nodes = l.nodes[:0]
	l.free = l.free[:0]
	l.head = none
	l.tail = none
	l.size = 0
}
