package astibimap

import (
	"maps"
	"slices"
)

// Node 0 is the sentinel: its next is the front and its prev is the back
const orderSentinel = 0

type orderNode[K comparable] struct {
	key  K
	next int
	prev int
}

// orderRecord is a doubly linked list of keys stored in an arena. A node's index is the
// stable identifier of its association for as long as the association lives.
type orderRecord[K comparable] struct {
	free  []int
	ids   map[K]int
	nodes []orderNode[K]
}

func newOrderRecord[K comparable]() *orderRecord[K] {
	return &orderRecord[K]{
		ids:   make(map[K]int),
		nodes: make([]orderNode[K], 1),
	}
}

func (r *orderRecord[K]) clone() *orderRecord[K] {
	return &orderRecord[K]{
		free:  slices.Clone(r.free),
		ids:   maps.Clone(r.ids),
		nodes: slices.Clone(r.nodes),
	}
}

func (r *orderRecord[K]) reset() {
	clear(r.ids)
	r.free = r.free[:0]
	r.nodes = r.nodes[:1]
	r.nodes[orderSentinel] = orderNode[K]{}
}

func (r *orderRecord[K]) front() int { return r.nodes[orderSentinel].next }

func (r *orderRecord[K]) back() int { return r.nodes[orderSentinel].prev }

func (r *orderRecord[K]) alloc(k K) (id int) {
	if l := len(r.free); l > 0 {
		id = r.free[l-1]
		r.free = r.free[:l-1]
		r.nodes[id] = orderNode[K]{key: k}
	} else {
		id = len(r.nodes)
		r.nodes = append(r.nodes, orderNode[K]{key: k})
	}
	r.ids[k] = id
	return
}

// linkAfter inserts node id right after node at
func (r *orderRecord[K]) linkAfter(id, at int) {
	next := r.nodes[at].next
	r.nodes[id].prev = at
	r.nodes[id].next = next
	r.nodes[at].next = id
	r.nodes[next].prev = id
}

func (r *orderRecord[K]) pushBack(k K) int {
	id := r.alloc(k)
	r.linkAfter(id, r.back())
	return id
}

// unlink splices node id out of the list but leaves its own links untouched so that relink
// can put it back
func (r *orderRecord[K]) unlink(id int) {
	n := r.nodes[id]
	r.nodes[n.prev].next = n.next
	r.nodes[n.next].prev = n.prev
}

// relink reverts unlink. Links must be reverted in the reverse order they were made.
func (r *orderRecord[K]) relink(id int) {
	n := r.nodes[id]
	r.nodes[n.prev].next = id
	r.nodes[n.next].prev = id
	r.ids[n.key] = id
}

// release recycles an unlinked node. The key index is only cleared when it still points to
// the node.
func (r *orderRecord[K]) release(id int) {
	if cur, ok := r.ids[r.nodes[id].key]; ok && cur == id {
		delete(r.ids, r.nodes[id].key)
	}
	r.nodes[id] = orderNode[K]{}
	r.free = append(r.free, id)
}

func (r *orderRecord[K]) remove(k K) {
	id, ok := r.ids[k]
	if !ok {
		return
	}
	r.unlink(id)
	r.release(id)
}

func (r *orderRecord[K]) moveToBack(k K) {
	id := r.ids[k]
	if id == r.back() {
		return
	}
	r.unlink(id)
	r.linkAfter(id, r.back())
}

func (r *orderRecord[K]) moveToFront(k K) {
	id := r.ids[k]
	if id == r.front() {
		return
	}
	r.unlink(id)
	r.linkAfter(id, orderSentinel)
}

// forward yields keys front to back. The next node is read before yielding so that the
// yielded key may be deleted.
func (r *orderRecord[K]) forward(yield func(K) bool) {
	for id := r.front(); id != orderSentinel; {
		n := r.nodes[id]
		if !yield(n.key) {
			return
		}
		id = n.next
	}
}

func (r *orderRecord[K]) backward(yield func(K) bool) {
	for id := r.back(); id != orderSentinel; {
		n := r.nodes[id]
		if !yield(n.key) {
			return
		}
		id = n.prev
	}
}
