// Package report builds the fixture's stdout transcript. The external
// harness compares the transcript byte-for-byte across local and remote
// runs, so every line is produced here deterministically and nothing else
// may reach stdout.
package report

import (
	"fmt"
	"io"
	"strings"

	"hellogo/pkg/hello"
)

// Lines returns the transcript as ordered lines, without trailing
// newlines. The order and formatting are fixed: greeting, addition,
// multiplication.
func Lines() []string {
	return []string{
		hello.GetGreeting(),
		fmt.Sprintf("2 + 2 = %d", hello.Add(2, 2)),
		fmt.Sprintf("3 * 4 = %d", hello.Multiply(3, 4)),
	}
}

// Transcript returns the full transcript as a single string, one line per
// item, each terminated by a newline.
func Transcript() string {
	var b strings.Builder
	for _, line := range Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Write writes the transcript to w.
func Write(w io.Writer) error {
	_, err := io.WriteString(w, Transcript())
	return err
}
