// Package output writes the assembled Markdown document to disk.
package output

import (
	"bufio"
	"fmt"
	"os"
)

// WriteFile creates or truncates path and writes data to it. The file is
// flushed and closed on every return path; a close failure is reported when
// nothing failed before it.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing file %s: %w", path, err)
	}
	return nil
}
