package depgraph

import "container/list"

// workItem is one file waiting for breadth-first expansion.
type workItem struct {
	path string
	name string
}

// workQueue wraps a list-based FIFO queue for the flat collector's
// breadth-first traversal.
type workQueue struct {
	queue *list.List
}

// newWorkQueue creates a new empty work queue.
func newWorkQueue() *workQueue {
	return &workQueue{
		queue: list.New(),
	}
}

// Enqueue adds an item to the back of the queue.
func (q *workQueue) Enqueue(item workItem) {
	q.queue.PushBack(item)
}

// Dequeue removes and returns the item at the front of the queue.
// Returns a zero item and false if the queue is empty.
func (q *workQueue) Dequeue() (workItem, bool) {
	if q.queue.Len() == 0 {
		return workItem{}, false
	}
	elem := q.queue.Front()
	q.queue.Remove(elem)
	return elem.Value.(workItem), true
}

// Len returns the number of items in the queue.
func (q *workQueue) Len() int {
	return q.queue.Len()
}

// IsEmpty returns true if the queue has no items.
func (q *workQueue) IsEmpty() bool {
	return q.queue.Len() == 0
}
