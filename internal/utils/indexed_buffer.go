package utils

import "sync"

// IndexedBuffer is a mutex-guarded, position-addressed result buffer.
// Concurrent workers write results at their input index so the
// collected output keeps input order regardless of completion order.
type IndexedBuffer[T any] struct {
	mu    sync.Mutex
	items []*T
}

func NewIndexedBuffer[T any](size int) *IndexedBuffer[T] {
	return &IndexedBuffer[T]{
		items: make([]*T, size),
	}
}

func (b *IndexedBuffer[T]) Set(index int, item T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.items) {
		return
	}
	b.items[index] = &item
}

// Collect returns the set items in index order, compacting gaps left
// by skipped inputs.
func (b *IndexedBuffer[T]) Collect() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]T, 0, len(b.items))
	for _, item := range b.items {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

func (b *IndexedBuffer[T]) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, item := range b.items {
		if item != nil {
			n++
		}
	}
	return n
}
