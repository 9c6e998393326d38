package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the buffer has no room left.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic queue.
type Queue interface {
	Enqueue(item interface{}) error
	Size() int
	ReadAllMessages() []interface{}
	ClearQueue()
}
