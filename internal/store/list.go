package store

// listNode is one element of a List: a node-owned string payload plus the
// doubly-linked chain pointers (spec §3).
type listNode struct {
	value string
	prev  *listNode
	next  *listNode
}

// List is a doubly-linked list of strings. The zero value is not usable;
// use NewList. Invariants (spec §3): head.prev == nil, tail.next == nil,
// head == nil iff tail == nil iff length == 0.
type List struct {
	head   *listNode
	tail   *listNode
	length int
}

func NewList() *List {
	return &List{}
}

func (l *List) Len() int {
	return l.length
}

// PushLeft inserts value at the head.
func (l *List) PushLeft(value string) {
	n := &listNode{value: value}

	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}

	l.length++
}

// PushRight inserts value at the tail.
func (l *List) PushRight(value string) {
	n := &listNode{value: value}

	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}

	l.length++
}

// PopLeft removes and returns up to count values starting from the head.
func (l *List) PopLeft(count int) []string {
	out := make([]string, 0, min(count, l.length))

	for i := 0; i < count && l.head != nil; i++ {
		n := l.head
		l.head = n.next

		if l.head != nil {
			l.head.prev = nil
		} else {
			l.tail = nil
		}

		l.length--
		out = append(out, n.value)
	}

	return out
}

// PopRight removes and returns up to count values starting from the tail.
func (l *List) PopRight(count int) []string {
	out := make([]string, 0, min(count, l.length))

	for i := 0; i < count && l.tail != nil; i++ {
		n := l.tail
		l.tail = n.prev

		if l.tail != nil {
			l.tail.next = nil
		} else {
			l.head = nil
		}

		l.length--
		out = append(out, n.value)
	}

	return out
}

// Range returns the elements with zero-based indices [start, stop],
// stop inclusive. stop is clamped to length-1; if start > stop after
// clamping the result is empty (spec §4.2 LRANGE). Traversal starts from
// whichever end is closer to the requested window.
func (l *List) Range(start, stop int) []string {
	if stop > l.length-1 {
		stop = l.length - 1
	}

	if start < 0 || stop < 0 || start > stop {
		return []string{}
	}

	out := make([]string, 0, stop-start+1)

	if start <= l.length-1-stop {
		// Closer to the head.
		n := l.head
		for i := 0; i < start && n != nil; i++ {
			n = n.next
		}

		for i := start; i <= stop && n != nil; i++ {
			out = append(out, n.value)
			n = n.next
		}
	} else {
		// Closer to the tail; walk backwards then reverse.
		n := l.tail
		for i := l.length - 1; i > stop && n != nil; i-- {
			n = n.prev
		}

		rev := make([]string, 0, stop-start+1)
		for i := stop; i >= start && n != nil; i-- {
			rev = append(rev, n.value)
			n = n.prev
		}

		for i := len(rev) - 1; i >= 0; i-- {
			out = append(out, rev[i])
		}
	}

	return out
}

func (l *List) approxBytes() int {
	const nodeOverhead = 40

	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n += nodeOverhead + len(cur.value)
	}

	return n
}
