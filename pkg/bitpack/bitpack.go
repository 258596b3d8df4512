// Package bitpack provides the bit-level transformations behind the word
// codec: expanding bytes into an MSB-first bit string, padding it to a chunk
// boundary, splitting it into fixed-width chunks, and reversing each step.
//
// Bits are stored packed, eight per byte, rather than one element per bit.
// All operations are pure; a BitString is never mutated after construction.
package bitpack

import (
	"fmt"
	"strings"
)

// Errors
var (
	ErrInvalidBitLength     = &Error{"bit length is not a multiple of 8"}
	ErrNonASCIIByte         = &Error{"reconstructed byte is not ASCII"}
	ErrIndexOutOfChunkRange = &Error{"index does not fit in chunk"}
	ErrPaddingExceedsLength = &Error{"padding exceeds bit length"}
)

// Error represents a bit packing error
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BitString is an immutable ordered sequence of bits. Bits are packed
// MSB-first within each byte of the backing slice; bits beyond Len in the
// final byte are always zero.
type BitString struct {
	buf    []byte
	bitLen int
}

// FromBytes expands a byte sequence into a bit string, eight bits per byte,
// most significant bit first.
func FromBytes(data []byte) BitString {
	buf := make([]byte, len(data))
	copy(buf, data)
	return BitString{buf: buf, bitLen: 8 * len(data)}
}

// Len returns the number of bits in the string.
func (bs BitString) Len() int {
	return bs.bitLen
}

// Bit returns the bit at position i as 0 or 1. Position 0 is the most
// significant bit of the first byte.
func (bs BitString) Bit(i int) byte {
	return (bs.buf[i/8] >> uint(7-i%8)) & 1
}

// Bytes converts the bit string back to bytes. It fails with
// ErrInvalidBitLength if the length is not a multiple of 8, and with
// ErrNonASCIIByte if any reconstructed byte is >= 128, since the codec
// contract guarantees ASCII-only payloads.
func (bs BitString) Bytes() ([]byte, error) {
	if bs.bitLen%8 != 0 {
		return nil, fmt.Errorf("%w: have %d bits", ErrInvalidBitLength, bs.bitLen)
	}
	out := make([]byte, bs.bitLen/8)
	copy(out, bs.buf[:bs.bitLen/8])
	for i, b := range out {
		if b >= 0x80 {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrNonASCIIByte, b, i)
		}
	}
	return out, nil
}

// PadToMultiple appends zero bits until the length is a multiple of n and
// returns the new string along with the number of bits appended. The count is
// always in [0, n-1].
func (bs BitString) PadToMultiple(n int) (BitString, int) {
	pad := (n - bs.bitLen%n) % n
	out := BitString{
		buf:    make([]byte, (bs.bitLen+pad+7)/8),
		bitLen: bs.bitLen + pad,
	}
	copy(out.buf, bs.buf)
	return out, pad
}

// Split divides the bit string into consecutive n-bit chunks. The length must
// be a multiple of n; callers guarantee this via PadToMultiple.
func (bs BitString) Split(n int) []BitString {
	count := bs.bitLen / n
	chunks := make([]BitString, 0, count)
	for i := 0; i < count; i++ {
		chunks = append(chunks, bs.slice(i*n, n))
	}
	return chunks
}

// Uint interprets the bit string as an unsigned integer, MSB first. The
// length must be at most 64 bits.
func (bs BitString) Uint() uint64 {
	var v uint64
	for i := 0; i < bs.bitLen; i++ {
		v = v<<1 | uint64(bs.Bit(i))
	}
	return v
}

// FromUint builds an n-bit string holding the MSB-first binary representation
// of v. It fails with ErrIndexOutOfChunkRange if v >= 2^n.
func FromUint(v uint64, n int) (BitString, error) {
	if n < 64 && v >= 1<<uint(n) {
		return BitString{}, fmt.Errorf("%w: %d needs more than %d bits", ErrIndexOutOfChunkRange, v, n)
	}
	out := BitString{buf: make([]byte, (n+7)/8), bitLen: n}
	for i := 0; i < n; i++ {
		if v>>uint(n-1-i)&1 == 1 {
			out.buf[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out, nil
}

// TrimTrailing removes count bits from the end of the string. It fails with
// ErrPaddingExceedsLength if count is negative or larger than the length.
func (bs BitString) TrimTrailing(count int) (BitString, error) {
	if count < 0 || count > bs.bitLen {
		return BitString{}, fmt.Errorf("%w: cannot trim %d of %d bits", ErrPaddingExceedsLength, count, bs.bitLen)
	}
	return bs.slice(0, bs.bitLen-count), nil
}

// Concat joins bit strings in order.
func Concat(parts ...BitString) BitString {
	total := 0
	for _, p := range parts {
		total += p.bitLen
	}
	out := BitString{buf: make([]byte, (total+7)/8)}
	for _, p := range parts {
		for i := 0; i < p.bitLen; i++ {
			if p.Bit(i) == 1 {
				out.buf[out.bitLen/8] |= 1 << uint(7-out.bitLen%8)
			}
			out.bitLen++
		}
	}
	return out
}

// String renders the bits as a "0"/"1" sequence, mainly for diagnostics.
func (bs BitString) String() string {
	var sb strings.Builder
	sb.Grow(bs.bitLen)
	for i := 0; i < bs.bitLen; i++ {
		sb.WriteByte('0' + bs.Bit(i))
	}
	return sb.String()
}

// slice copies n bits starting at position start into a fresh BitString.
func (bs BitString) slice(start, n int) BitString {
	out := BitString{buf: make([]byte, (n+7)/8), bitLen: n}
	for i := 0; i < n; i++ {
		if bs.Bit(start+i) == 1 {
			out.buf[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}
