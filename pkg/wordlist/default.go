package wordlist

import "sync"

// The default wordlist is generated rather than shipped: every five-letter
// consonant-vowel-consonant-vowel-consonant word over 16 consonants and 4
// vowels, in numeric order. That is 2^16 unique pronounceable words, so the
// derived chunk size is 16 and each data word carries exactly two seed bytes.
const (
	defaultConsonants = "bdfghjklmnprstvz"
	defaultVowels     = "aiou"
)

var (
	defaultOnce  sync.Once
	defaultIndex *Index
)

// Default returns the built-in pronounceable wordlist. The list is built on
// first use and shared; the Index is immutable, so sharing is safe.
func Default() *Index {
	defaultOnce.Do(func() {
		ix, err := Build(defaultWords())
		if err != nil {
			panic("wordlist: default list failed validation: " + err.Error())
		}
		defaultIndex = ix
	})
	return defaultIndex
}

// defaultWords generates the cvcvc words for every 16-bit value. The letter
// layout packs 4+2+4+2+4 bits, high bits first.
func defaultWords() []string {
	words := make([]string, 0, 1<<16)
	var w [5]byte
	for x := 0; x < 1<<16; x++ {
		w[0] = defaultConsonants[x>>12&0x0f]
		w[1] = defaultVowels[x>>10&0x03]
		w[2] = defaultConsonants[x>>6&0x0f]
		w[3] = defaultVowels[x>>4&0x03]
		w[4] = defaultConsonants[x&0x0f]
		words = append(words, string(w[:]))
	}
	return words
}
