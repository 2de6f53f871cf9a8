package main

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const maxLineSize = 1 << 20

// readItems returns the non-empty lines of r, without trailing carriage returns.
func readItems(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var items []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items, scanner.Err()
}

// openSource opens the item file, or stdin for "" and "-".
func openSource(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
