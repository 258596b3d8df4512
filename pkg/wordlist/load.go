package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a wordlist from r, one word per line. Blank lines and lines
// starting with '#' are skipped. Surrounding whitespace is trimmed before
// indexing.
func Load(r io.Reader) (*Index, error) {
	sc := bufio.NewScanner(r)
	var words []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return Build(words)
}

// LoadFile reads a wordlist file via Load.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	return Load(f)
}
