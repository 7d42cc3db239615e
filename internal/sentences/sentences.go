// Package sentences loads sentence lists for the sentence tracing mode.
package sentences

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Defaults returns the built-in sentences.
func Defaults() []string {
	return []string{
		"Hello World",
		"Practice Makes Perfect",
		"Keep Going Forward",
		"You Can Do It",
	}
}

// Load reads one sentence per line from the provided file path. Blank lines
// are skipped and inner whitespace is collapsed.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only sentence list.
			_ = cerr
		}
	}()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("sentence list is empty")
	}
	return out, nil
}

// LoadOrDefault loads path when set and falls back to Defaults when the file
// is missing, unreadable or has no traceable sentence. The returned error
// describes why the fallback happened.
func LoadOrDefault(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return Defaults(), nil
	}
	loaded, err := Load(path)
	if err != nil {
		return Defaults(), fmt.Errorf("failed to load sentences: %w", err)
	}
	kept := Filter(loaded)
	if len(kept) == 0 {
		return Defaults(), fmt.Errorf("no traceable sentences in %s", path)
	}
	return kept, nil
}
