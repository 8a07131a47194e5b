package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt asks the operator for the level pack directory on in and returns the
// trimmed answer.
func Prompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Enter in the full path to the level pack below.")
	fmt.Fprintln(out, "Note that this tool will recursively search for levels.")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading line: %w", err)
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no level pack path entered")
	}
	return path, nil
}
