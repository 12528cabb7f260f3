// Package console handles the operator-facing terminal I/O.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	InputPrompt  = "Paste your code: "
	ResultHeader = "=== Analysis Result ==="
)

// ErrNoInput is returned when stdin closes before any text arrives.
var ErrNoInput = errors.New("no input received")

// ReadInput writes the input prompt to w and reads a single line from r.
// The trailing line terminator is dropped.
func ReadInput(r io.Reader, w io.Writer) (string, error) {
	if _, err := io.WriteString(w, InputPrompt); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// WriteResult prints the fixed header followed by the result.
func WriteResult(w io.Writer, result string) error {
	_, err := fmt.Fprintf(w, "\n%s\n\n%s\n", ResultHeader, result)
	return err
}
