package promise

// A queue is a FIFO queue of tasks built from two slices.
// Tasks are popped from head and pushed onto tail.
// Everything in head is older than anything in tail, so head drains
// completely before tail is swapped in.
type queue[E any] struct {
	head, tail []E
}

func (q *queue[E]) Empty() bool {
	return len(q.head) == 0 && len(q.tail) == 0
}

func (q *queue[E]) Push(v E) {
	q.tail = append(q.tail, v)
}

func (q *queue[E]) Pop() (v E) {
	if len(q.head) == 0 {
		// The consumed part of head is dead; its spare capacity can be
		// reused by tail without overlapping the slice being swapped in.
		q.head, q.tail = q.tail, q.head[:0]
	}

	q.head[0], v = v, q.head[0]
	q.head = q.head[1:]

	return v
}
