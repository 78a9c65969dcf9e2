package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Read builds a list from r, one word per line. Surrounding whitespace is
// removed, empty lines and lines starting with # are skipped.
func Read(name string, rd io.Reader) (List, error) {
	l := List{Name: name}

	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		l.Words = append(l.Words, line)
	}

	if err := sc.Err(); err != nil {
		return List{}, fmt.Errorf("read word list %v: %w", name, err)
	}

	if len(l.Words) == 0 {
		return List{}, fmt.Errorf("word list %v is empty", name)
	}

	return l, nil
}

// Load reads a list from a file. When name is empty, the file name without
// extension is used.
func Load(name, filename string) (List, error) {
	f, err := os.Open(filename)
	if err != nil {
		return List{}, err
	}
	defer f.Close()

	if name == "" {
		base := filepath.Base(filename)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Read(name, f)
}
