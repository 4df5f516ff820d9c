package buffer

// Buffer accumulates a byte sequence streamingly. Whenever an append wouldn't fit into the
// current capacity, the capacity is doubled (as many times as needed), so growing a buffer
// byte by byte costs amortized O(1) per byte.
type Buffer struct {
	memory  []byte
	maxSize int
}

// New returns a buffer with initialSize bytes of capacity. A maxSize of zero means
// the buffer may grow unboundedly.
func New(initialSize, maxSize int) *Buffer {
	return &Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes data, checking whether the new length doesn't exceed the limit, otherwise
// discarding the data and returning false.
func (b *Buffer) Append(data []byte) (ok bool) {
	newLen := len(b.memory) + len(data)
	if b.maxSize > 0 && newLen > b.maxSize {
		return false
	}

	if newLen > cap(b.memory) {
		b.grow(newLen)
	}

	b.memory = append(b.memory, data...)
	return true
}

func (b *Buffer) grow(atLeast int) {
	newCap := max(cap(b.memory), 1)
	for newCap < atLeast {
		newCap *= 2
	}

	if b.maxSize > 0 && newCap > b.maxSize {
		newCap = b.maxSize
	}

	memory := make([]byte, len(b.memory), newCap)
	copy(memory, b.memory)
	b.memory = memory
}

// Bytes returns the accumulated data. The slice is valid until the next Append or Clear.
func (b *Buffer) Bytes() []byte {
	return b.memory
}

// Truncate keeps only the first n bytes.
func (b *Buffer) Truncate(n int) {
	if n < len(b.memory) {
		b.memory = b.memory[:n]
	}
}

func (b *Buffer) Len() int {
	return len(b.memory)
}

func (b *Buffer) Cap() int {
	return cap(b.memory)
}

// Clear just resets the pointer, so old values may be overridden by new ones. The capacity
// is preserved.
func (b *Buffer) Clear() {
	b.memory = b.memory[:0]
}
