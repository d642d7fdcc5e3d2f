package playlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadLines reads a UTF-8 playlist file into its raw line sequence.
// Trailing carriage returns are stripped so DOS-edited playlists parse the
// same as Unix ones; all other content is preserved verbatim.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Some playlists carry very wide #EXTINF attribute lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read playlist %q: %w", path, err)
	}
	return lines, nil
}

// WriteLines writes a line sequence to path, one line per row with a
// trailing newline, creating or truncating the file.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("write %q: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	return f.Close()
}
