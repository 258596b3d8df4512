// Package codec converts an ASCII seed into an ordered sequence of dictionary
// words and back, with guaranteed round-trip fidelity. It exists for tokens
// that have to survive being read aloud or typed by hand.
//
// # Encoding
//
// A seed is expanded into a bit string (8 bits per byte, MSB first), padded
// with zero bits to a multiple of the chunk size n, and split into n-bit
// chunks. Each chunk value is a position in the wordlist; the word at that
// position represents the chunk. The first output word is reserved metadata:
// its wordlist position is the number of padding bits appended. So the output
// is always
//
//	[padding word] [one word per chunk]
//
// and its length is 1 + ceil(8*len(seed)/n).
//
// # Chunk size
//
// n is floor(log2(wordlist size)), the widest chunk whose every value is a
// valid word position. It can be overridden at construction; the override is
// validated against the same bound. Since n-1 < 2^n <= size, the padding
// count always has a word.
//
// # Self-verification
//
// SeedToHuman decodes its own output and compares it byte-for-byte with the
// input; HumanToSeed re-encodes the recovered seed and compares the word
// sequences word-for-word. A mismatch surfaces as ErrRoundtrip. That error
// signals a logic bug or a word sequence that no encoder produced, never
// ordinary bad input. One consequence worth knowing: only canonical,
// encoder-produced word sequences decode.
//
// # Usage
//
//	c, err := codec.New()
//	if err != nil {
//	    return err
//	}
//
//	words, err := c.SeedToHuman("hunter2")
//	if err != nil {
//	    return err
//	}
//
//	seed, err := c.HumanToSeed(words)
//	if err != nil {
//	    return err // e.g. codec/wordlist typed errors on typos
//	}
//
// # Thread safety
//
// A Codec is immutable after New and safe for concurrent use. Distinct codecs
// with different wordlists share nothing.
package codec
