package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockRegionWriter = (*Writer)(nil)

// Writer replaces everything from the lock marker to the end of a file.
// It does not coordinate concurrent writers of the same file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Block builds the generated region for the given encoded entries.
func Block(entries []string) []string {
	block := make([]string, 0, len(entries)+3)
	block = append(block, domain.LockMarker+" "+domain.LockWarning)
	block = append(block, domain.LockProperty+" = [")
	for _, entry := range entries {
		block = append(block, entry+",")
	}
	return append(block, "]")
}

// Write replaces the generated region of path, appending it when the file has none.
// Lines before the marker are kept byte for byte. A hand-written [ext] table is an error.
func (w *Writer) Write(path string, entries []string) ([]string, bool, error) {
	if err := touch(path); err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is the project's settings file
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrLockFileReadFailed.Error()), "path", path)
	}
	content := string(data)

	lines := splitLines(content)
	split, err := markerIndex(lines)
	if err != nil {
		return nil, false, zerr.With(err, "path", path)
	}
	block := Block(entries)

	out := make([]string, 0, split+len(block))
	out = append(out, lines[:split]...)
	out = append(out, block...)
	updated := strings.Join(out, "\n")

	if err := os.WriteFile(path, []byte(updated), domain.FilePerm); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrLockFileWriteFailed.Error()), "path", path)
	}

	return block, updated != content, nil
}

// Read returns the generated region currently in path.
// A missing file and a file without a marker both report found as false.
func (w *Writer) Read(path string) ([]string, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project's settings file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrLockFileReadFailed.Error()), "path", path)
	}

	lines := splitLines(string(data))
	split, err := markerIndex(lines)
	if err != nil {
		return nil, false, zerr.With(err, "path", path)
	}
	if split == len(lines) {
		return nil, false, nil
	}
	return lines[split:], true, nil
}

func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, domain.FilePerm) //nolint:gosec // path is the project's settings file
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockFileCreateFailed.Error()), "path", path)
	}
	return f.Close()
}

// splitLines splits on newlines, dropping the empty element left by a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// markerIndex returns the index of the first marker line, or len(lines) if there is none.
// Only a marker followed by the generated warning starts the region; a bare [ext] header
// belongs to the user and is reported as ErrForeignExtTable.
func markerIndex(lines []string) (int, error) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, domain.LockMarker) {
			continue
		}
		if strings.TrimSpace(strings.TrimPrefix(trimmed, domain.LockMarker)) == domain.LockWarning {
			return i, nil
		}
		return 0, zerr.With(domain.ErrForeignExtTable, "line", i+1)
	}
	return len(lines), nil
}
