package executor

import "wifiscan/pkg/domain"

// ScanBuffer is a fixed-capacity FIFO of background scan generations. Adding
// to a full buffer evicts the oldest generation.
type ScanBuffer struct {
	items []domain.ScanData
	head  int
	size  int
}

// NewScanBuffer returns an empty buffer holding up to capacity generations.
func NewScanBuffer(capacity int) *ScanBuffer {
	return &ScanBuffer{items: make([]domain.ScanData, max(capacity, 1))}
}

// Add appends data and reports whether the oldest generation was evicted.
func (b *ScanBuffer) Add(data domain.ScanData) bool {
	tail := (b.head + b.size) % len(b.items)
	b.items[tail] = data
	if b.size < len(b.items) {
		b.size++

		return false
	}
	b.head = (b.head + 1) % len(b.items)

	return true
}

// Get returns the buffered generations, oldest first.
func (b *ScanBuffer) Get() []domain.ScanData {
	out := make([]domain.ScanData, 0, b.size)
	for i := range b.size {
		out = append(out, b.items[(b.head+i)%len(b.items)])
	}

	return out
}

// Clear drops every buffered generation.
func (b *ScanBuffer) Clear() {
	clear(b.items)
	b.head, b.size = 0, 0
}

// Len returns the number of buffered generations.
func (b *ScanBuffer) Len() int { return b.size }

// Cap returns the number of generations kept before the oldest is evicted.
func (b *ScanBuffer) Cap() int { return len(b.items) }
