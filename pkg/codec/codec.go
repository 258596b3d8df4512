package codec

import (
	"fmt"
	"slices"

	"github.com/hrseed/hrseed/pkg/bitpack"
	"github.com/hrseed/hrseed/pkg/wordlist"
)

// Errors
var (
	ErrNonASCIIInput = &Error{"seed contains a non-ASCII character"}
	ErrEmptyInput    = &Error{"word sequence is empty"}
	ErrRoundtrip     = &Error{"round-trip verification failed"}
)

// Error represents a codec error
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// TraceFunc receives diagnostic output about intermediate bit strings and
// chunk indices. It never alters codec outputs.
type TraceFunc func(format string, args ...any)

// Codec converts seeds to word sequences and back against one immutable
// wordlist and chunk size.
type Codec struct {
	index     *wordlist.Index
	chunkSize int
	trace     TraceFunc
}

// Option configures a Codec at construction.
type Option func(*options)

type options struct {
	words     []string
	index     *wordlist.Index
	chunkSize int
	trace     TraceFunc
}

// WithWords supplies a caller-provided wordlist. Duplicates collapse to their
// first occurrence.
func WithWords(words []string) Option {
	return func(o *options) { o.words = words }
}

// WithIndex supplies an already-built wordlist index.
func WithIndex(ix *wordlist.Index) Option {
	return func(o *options) { o.index = ix }
}

// WithChunkSize overrides the derived bits-per-word. The override is
// validated against the wordlist.
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// WithTrace installs a diagnostic hook, typically wired to a --verbose flag.
func WithTrace(trace TraceFunc) Option {
	return func(o *options) { o.trace = trace }
}

// New builds a Codec. Without options it uses the generated default wordlist
// and the derived chunk size.
func New(opts ...Option) (*Codec, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ix := o.index
	if ix == nil && o.words != nil {
		built, err := wordlist.Build(o.words)
		if err != nil {
			return nil, err
		}
		ix = built
	}
	if ix == nil {
		ix = wordlist.Default()
	}

	chunkSize := ix.ChunkSize()
	if o.chunkSize != 0 {
		if err := ix.ValidateChunkSize(o.chunkSize); err != nil {
			return nil, err
		}
		chunkSize = o.chunkSize
	}

	return &Codec{index: ix, chunkSize: chunkSize, trace: o.trace}, nil
}

// ChunkSize returns the active bits-per-word.
func (c *Codec) ChunkSize() int {
	return c.chunkSize
}

// Wordlist returns the codec's wordlist index.
func (c *Codec) Wordlist() *wordlist.Index {
	return c.index
}

// SeedToHuman encodes an ASCII seed as a word sequence. The first word
// encodes the padding bit count; the rest carry the seed, one chunk each.
// The result is decoded again and compared byte-for-byte with the input
// before it is returned; a mismatch is ErrRoundtrip and indicates a logic
// bug, not bad input.
func (c *Codec) SeedToHuman(seed string) ([]string, error) {
	words, err := c.encode(seed)
	if err != nil {
		return nil, err
	}

	recovered, err := c.decode(words)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding own output: %v", ErrRoundtrip, err)
	}
	if recovered != seed {
		return nil, fmt.Errorf("%w: recovered %q, encoded %q", ErrRoundtrip, recovered, seed)
	}
	return words, nil
}

// HumanToSeed decodes a word sequence produced by SeedToHuman. The recovered
// seed is re-encoded and compared word-for-word with the input (padding word
// included) before it is returned, so any sequence that is not a canonical
// encoder output is rejected with ErrRoundtrip.
func (c *Codec) HumanToSeed(words []string) (string, error) {
	seed, err := c.decode(words)
	if err != nil {
		return "", err
	}

	canonical, err := c.encode(seed)
	if err != nil {
		return "", fmt.Errorf("%w: re-encoding %q: %v", ErrRoundtrip, seed, err)
	}
	if !slices.Equal(canonical, words) {
		return "", fmt.Errorf("%w: input is not the canonical encoding of %q", ErrRoundtrip, seed)
	}
	return seed, nil
}

// encode is SeedToHuman without the verification pass.
func (c *Codec) encode(seed string) ([]string, error) {
	for i := 0; i < len(seed); i++ {
		if seed[i] >= 0x80 {
			return nil, fmt.Errorf("%w: byte 0x%02x at position %d", ErrNonASCIIInput, seed[i], i)
		}
	}

	bits := bitpack.FromBytes([]byte(seed))
	padded, padCount := bits.PadToMultiple(c.chunkSize)
	c.tracef("encode: %d seed bits, %d padding bits, chunk size %d", bits.Len(), padCount, c.chunkSize)

	padWord, err := c.index.WordAt(padCount)
	if err != nil {
		return nil, err
	}

	chunks := padded.Split(c.chunkSize)
	words := make([]string, 0, len(chunks)+1)
	words = append(words, padWord)
	for i, chunk := range chunks {
		index := int(chunk.Uint())
		word, err := c.index.WordAt(index)
		if err != nil {
			return nil, err
		}
		c.tracef("chunk %d: %s -> %d -> %s", i+1, chunk, index, word)
		words = append(words, word)
	}
	return words, nil
}

// decode is HumanToSeed without the verification pass.
func (c *Codec) decode(words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyInput
	}

	padCount, err := c.index.IndexOf(words[0])
	if err != nil {
		return "", err
	}
	c.tracef("decode: %d data words, %d padding bits, chunk size %d", len(words)-1, padCount, c.chunkSize)

	chunks := make([]bitpack.BitString, 0, len(words)-1)
	for i, word := range words[1:] {
		index, err := c.index.IndexOf(word)
		if err != nil {
			return "", err
		}
		chunk, err := bitpack.FromUint(uint64(index), c.chunkSize)
		if err != nil {
			return "", err
		}
		c.tracef("word %d: %s -> %d -> %s", i+1, word, index, chunk)
		chunks = append(chunks, chunk)
	}

	bits, err := bitpack.Concat(chunks...).TrimTrailing(padCount)
	if err != nil {
		return "", err
	}
	data, err := bits.Bytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Codec) tracef(format string, args ...any) {
	if c.trace != nil {
		c.trace(format, args...)
	}
}
