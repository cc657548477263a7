// Package manifest loads the fixture's expectations file and diffs an
// actual transcript against it. The harness historically hard-coded the
// expected output in its own test suite; carrying it as data next to the
// fixture lets the fixture check itself.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes what a successful fixture run must produce.
type Manifest struct {
	// Name identifies the fixture to the harness
	Name string `toml:"name"`

	// ExpectedExitCode is the exit status of a successful run
	ExpectedExitCode int `toml:"expected_exit_code"`

	// ExpectedStdout is the exact stdout transcript, one entry per line,
	// without trailing newlines
	ExpectedStdout []string `toml:"expected_stdout"`
}

// LineResult records the comparison of a single transcript line.
type LineResult struct {
	Index int
	Want  string
	Got   string
	OK    bool
}

// CheckResult is the outcome of comparing a transcript to a manifest.
type CheckResult struct {
	Lines []LineResult

	// ExtraLines holds actual output beyond the expected line count
	ExtraLines []string
}

// Passed reports whether every expected line matched and nothing extra
// was produced.
func (r *CheckResult) Passed() bool {
	for _, line := range r.Lines {
		if !line.OK {
			return false
		}
	}
	return len(r.ExtraLines) == 0
}

// Load parses a fixture manifest from the given path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s has no fixture name", path)
	}
	if len(m.ExpectedStdout) == 0 {
		return nil, fmt.Errorf("manifest %s declares no expected output", path)
	}

	return &m, nil
}

// Check compares an actual transcript (the full stdout of a run) against
// the manifest line by line.
func (m *Manifest) Check(transcript string) *CheckResult {
	actual := splitLines(transcript)
	result := &CheckResult{}

	for i, want := range m.ExpectedStdout {
		got := ""
		if i < len(actual) {
			got = actual[i]
		}
		result.Lines = append(result.Lines, LineResult{
			Index: i,
			Want:  want,
			Got:   got,
			OK:    i < len(actual) && got == want,
		})
	}

	if len(actual) > len(m.ExpectedStdout) {
		result.ExtraLines = actual[len(m.ExpectedStdout):]
	}

	return result
}

// splitLines splits a transcript into lines, dropping the terminator of
// the final line. A transcript of "a\nb\n" is exactly two lines; a bare
// trailing fragment without a newline still counts as a line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
