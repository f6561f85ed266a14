// Package input reads prefix lines from stdin or a file.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// FromFile reads all lines of the file at path.
func FromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	return ReadLines(file)
}

// ReadLines reads r until EOF. Line endings, including CRLF, are stripped.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
