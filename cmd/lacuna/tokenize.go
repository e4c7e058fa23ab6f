package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// tokenizeFile reads path and splits each physical line into fields on
// ';', the external tokenization step spec.md §1 places outside the
// core parser's scope. Tokenization is a literal split with no quoting
// or escaping, matching the Python original's
// `csv.reader(file, delimiter=";")` on unquoted input: a bare `"`
// inside a card side is ordinary text, not a quoting delimiter, so
// this deliberately does not use encoding/csv. Blank physical lines
// yield an empty record rather than being dropped, so every record
// index still lines up with its one-based physical line number for
// diagnostics (spec.md §5).
func tokenizeFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records [][]string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		text := scanner.Text()
		if text == "" {
			records = append(records, nil)
			continue
		}
		records = append(records, strings.Split(text, ";"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", path, err)
	}
	return records, nil
}
