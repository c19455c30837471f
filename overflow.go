package scratchpad

// block is one overflow allocation. Its payload is NUL-terminated and carries
// no length byte; its size is len(data).
type block struct {
	prev, next *block
	data       []byte
	live       bool
}

// overflow keeps every live block in a doubly linked list rooted at the
// sentinel head, so any block can be unlinked in O(1).
type overflow struct {
	head  block
	alloc Allocator
	count int
	bytes int
}

func newOverflow(alloc Allocator) *overflow {
	return &overflow{alloc: alloc}
}

// insert allocates an n byte block and links it at the head of the list.
func (o *overflow) insert(n int) *block {
	data, err := o.alloc.Allocate(n)
	if err != nil {
		fatal(err, "overflow allocate %d bytes", n)
	}
	b := &block{
		prev: &o.head,
		next: o.head.next,
		data: data,
		live: true,
	}
	if b.next != nil {
		b.next.prev = b
	}
	o.head.next = b
	o.count++
	o.bytes += n
	return b
}

// remove unlinks b and hands its memory back to the allocator.
func (o *overflow) remove(b *block) {
	b.prev.next = b.next
	if b.next != nil {
		b.next.prev = b.prev
	}
	o.count--
	o.bytes -= len(b.data)
	o.alloc.Release(b.data)
	b.prev, b.next, b.data, b.live = nil, nil, nil, false
}

// grow resizes b to n bytes. The node keeps its place in the list even when
// the allocator moves the payload.
func (o *overflow) grow(b *block, n int) {
	if n < len(b.data) {
		violationf("overflow grow from %d to %d bytes shrinks", len(b.data), n)
	}
	old := len(b.data)
	data, err := o.alloc.Resize(b.data, n)
	if err != nil {
		fatal(err, "overflow resize %d to %d bytes", old, n)
	}
	b.data = data
	o.bytes += n - old
}

// releaseAll frees every block in the list.
func (o *overflow) releaseAll() {
	for b := o.head.next; b != nil; {
		next := b.next
		o.alloc.Release(b.data)
		b.prev, b.next, b.data, b.live = nil, nil, nil, false
		b = next
	}
	o.head.next = nil
	o.count = 0
	o.bytes = 0
}
