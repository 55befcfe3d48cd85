package repository

import "context"

// QueueRepository defines the interface for a FIFO queue of days to be crawled.
type QueueRepository interface {
	// Push adds a day to the end of the queue.
	Push(ctx context.Context, day string) error
	// Pop removes and returns a day from the front of the queue.
	// It returns ErrQueueEmpty when there is nothing to do.
	Pop(ctx context.Context) (string, error)
	// Size returns the current number of items in the queue.
	Size(ctx context.Context) (int64, error)
}
