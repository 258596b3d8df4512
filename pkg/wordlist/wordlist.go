// Package wordlist indexes an ordered set of unique words and derives the
// chunk size a codec built on it can carry per word.
package wordlist

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxChunkSize bounds manual chunk size overrides. A chunk index must address
// a word position; no practical wordlist exceeds 2^32 entries.
const MaxChunkSize = 32

// Errors
var (
	ErrInvalidWordlist   = &Error{"invalid wordlist"}
	ErrChunkSizeTooLarge = &Error{"chunk size too large for wordlist"}
	ErrIndexOutOfRange   = &Error{"word index out of range"}
	ErrUnknownWord       = &Error{"word is not in the wordlist"}
)

// Error represents a wordlist error
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Index holds the canonical bidirectional word/index mapping. It is immutable
// after Build and safe for concurrent use.
type Index struct {
	words   []string
	indexes map[string]int
}

// Build constructs an Index from an ordered word sequence. Duplicates are
// collapsed to their first occurrence, preserving order. It fails with
// ErrInvalidWordlist if fewer than 2 unique words remain, or if any word is
// empty or contains whitespace (words are the atomic token on the CLI
// surface; embedded spaces would break word-sequence parsing).
func Build(words []string) (*Index, error) {
	ix := &Index{indexes: make(map[string]int, len(words))}
	for _, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: empty word", ErrInvalidWordlist)
		}
		if strings.ContainsAny(w, " \t\r\n") {
			return nil, fmt.Errorf("%w: word %q contains whitespace", ErrInvalidWordlist, w)
		}
		if _, dup := ix.indexes[w]; dup {
			continue
		}
		ix.indexes[w] = len(ix.words)
		ix.words = append(ix.words, w)
	}
	if len(ix.words) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 unique words, have %d", ErrInvalidWordlist, len(ix.words))
	}
	return ix, nil
}

// Size returns the wordlist cardinality.
func (ix *Index) Size() int {
	return len(ix.words)
}

// Words returns a copy of the indexed words in order.
func (ix *Index) Words() []string {
	out := make([]string, len(ix.words))
	copy(out, ix.words)
	return out
}

// ChunkSize returns floor(log2(size)): the widest chunk whose every value is
// a valid word index. Computed with integer bit-length arithmetic; floating
// point log is unreliable near powers of two.
func (ix *Index) ChunkSize() int {
	return bits.Len(uint(len(ix.words))) - 1
}

// WordAt returns the word at position i. It fails with ErrIndexOutOfRange if
// i is outside the list.
func (ix *Index) WordAt(i int) (string, error) {
	if i < 0 || i >= len(ix.words) {
		return "", fmt.Errorf("%w: index %d, wordlist size %d", ErrIndexOutOfRange, i, len(ix.words))
	}
	return ix.words[i], nil
}

// IndexOf returns the position of a word. It fails with ErrUnknownWord on a
// lookup miss, the ordinary failure mode for hand-typed or corrupted input.
func (ix *Index) IndexOf(word string) (int, error) {
	i, ok := ix.indexes[word]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, word)
	}
	return i, nil
}

// ValidateChunkSize checks a manual chunk size override against the list. It
// fails with ErrChunkSizeTooLarge unless 1 <= n <= MaxChunkSize and
// 2^n <= size.
func (ix *Index) ValidateChunkSize(n int) error {
	if n < 1 || n > MaxChunkSize {
		return fmt.Errorf("%w: chunk size %d outside [1, %d]", ErrChunkSizeTooLarge, n, MaxChunkSize)
	}
	if 1<<uint(n) > len(ix.words) {
		return fmt.Errorf("%w: 2^%d exceeds wordlist size %d", ErrChunkSizeTooLarge, n, len(ix.words))
	}
	return nil
}
