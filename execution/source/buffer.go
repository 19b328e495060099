package source

import (
	"fmt"
	"slices"
)

// ReadIncrement is the fixed number of bytes a RawBuffer grows by before each read.
const ReadIncrement = 512

// Terminator is written at offset Len() once reading completes.
const Terminator byte = 0

// RawBuffer holds the complete content of one input. Capacity is tracked
// separately from the number of bytes read; the region between the
// terminator and the capacity is never inspected.
//
// A RawBuffer has one owner at a time. The Text Normalizer mutates it in
// place and the Lexer borrows its bytes; it is released once the Lexer returns.
type RawBuffer struct {
	data   []byte // len(data) is the allocated capacity
	length int
}

// grow extends the allocation by one ReadIncrement and returns the new region.
func (b *RawBuffer) grow() []byte {
	start := len(b.data)
	b.data = slices.Grow(b.data, ReadIncrement)[:start+ReadIncrement]
	return b.data[start:]
}

func (b *RawBuffer) terminate() {
	b.data[b.length] = Terminator
}

// Len returns the number of bytes read.
func (b *RawBuffer) Len() int {
	return b.length
}

// Cap returns the allocated size, always a multiple of ReadIncrement.
func (b *RawBuffer) Cap() int {
	return len(b.data)
}

// Bytes returns the content without the terminator. The slice aliases the buffer.
func (b *RawBuffer) Bytes() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:b.length]
}

// Terminated returns the content followed by the terminator byte.
func (b *RawBuffer) Terminated() []byte {
	if b.data == nil {
		return nil
	}
	return b.data[:b.length+1]
}

// Released reports whether Release has been called.
func (b *RawBuffer) Released() bool {
	return b.data == nil
}

// Release drops the storage. Calling it more than once is harmless.
func (b *RawBuffer) Release() {
	b.data = nil
	b.length = 0
}

func (b *RawBuffer) String() string {
	return fmt.Sprintf("source.RawBuffer{Len: %d, Cap: %d}", b.Len(), b.Cap())
}
