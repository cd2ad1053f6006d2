package bitarray

import (
	"math/bits"
	"strings"
)

// BitArray is a fixed-capacity array of bits packed into uint64 words.
//
// The capacity is fixed at construction. Bits at positions >= Len in the
// last word (padding bits) are always kept at zero; every whole-array
// mutation re-establishes this so that word-wise scans stay correct.
//
// BitArray is not safe for concurrent use.
type BitArray struct {
	size  int
	words []uint64
}

// New creates a BitArray holding size bits, all initially zero.
func New(size int) (*BitArray, error) {
	if size <= 0 {
		return nil, &ErrInvalidSize{Size: size}
	}
	return &BitArray{
		size:  size,
		words: make([]uint64, (size+63)>>6),
	}, nil
}

// Len returns the capacity in bits.
func (b *BitArray) Len() int {
	return b.size
}

// Set sets the bit at index i to value.
func (b *BitArray) Set(i int, value bool) error {
	if err := b.checkBounds(i); err != nil {
		return err
	}
	bitMask := uint64(1) << (i & 63)
	if value {
		b.words[i>>6] |= bitMask
	} else {
		b.words[i>>6] &^= bitMask
	}
	return nil
}

// SetAll sets every bit to one.
func (b *BitArray) SetAll() {
	for w := range b.words {
		b.words[w] = ^uint64(0)
	}
	b.clearPadding()
}

// Reset clears the bit at index i.
func (b *BitArray) Reset(i int) error {
	if err := b.checkBounds(i); err != nil {
		return err
	}
	b.words[i>>6] &^= uint64(1) << (i & 63)
	return nil
}

// ResetAll clears every bit.
func (b *BitArray) ResetAll() {
	for w := range b.words {
		b.words[w] = 0
	}
}

// Flip inverts the bit at index i.
func (b *BitArray) Flip(i int) error {
	if err := b.checkBounds(i); err != nil {
		return err
	}
	b.words[i>>6] ^= uint64(1) << (i & 63)
	return nil
}

// FlipAll inverts every bit.
func (b *BitArray) FlipAll() {
	for w := range b.words {
		b.words[w] = ^b.words[w]
	}
	b.clearPadding()
}

// Get returns the bit at index i.
func (b *BitArray) Get(i int) (bool, error) {
	if err := b.checkBounds(i); err != nil {
		return false, err
	}
	return b.words[i>>6]&(uint64(1)<<(i&63)) != 0, nil
}

// Count returns the number of set bits.
func (b *BitArray) Count() int {
	count := 0
	for _, w := range b.words {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// Any returns true if at least one bit is set.
func (b *BitArray) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// None returns true if no bit is set.
func (b *BitArray) None() bool {
	return !b.Any()
}

// Equal returns true if other has the same capacity and the same bits.
// Word-wise comparison is valid because padding bits are always zero.
func (b *BitArray) Equal(other *BitArray) bool {
	if b.size != other.size {
		return false
	}
	for w, v := range b.words {
		if v != other.words[w] {
			return false
		}
	}
	return true
}

// String renders the bits as a string of '0' and '1' characters, bit 0
// first.
func (b *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for i := 0; i < b.size; i++ {
		if b.words[i>>6]&(uint64(1)<<(i&63)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b *BitArray) checkBounds(i int) error {
	if i < 0 || i >= b.size {
		return &ErrIndexOutOfRange{Index: i, Size: b.size}
	}
	return nil
}

// clearPadding zeroes the bits at positions >= size in the last word.
func (b *BitArray) clearPadding() {
	if rem := b.size & 63; rem != 0 {
		b.words[len(b.words)-1] &= (uint64(1) << rem) - 1
	}
}
