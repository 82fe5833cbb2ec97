// Package adapter contains the infrastructure adapters for the textaug CLI.
package adapter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// StdioPath stands for standard input when reading and standard output when writing.
const StdioPath = "-"

const maxLineBytes = 16 * 1024 * 1024

// SourceFSAdapter abstracts the filesystem access the workflow needs to read
// input texts and write augmented ones, so the workflow can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// Expand resolves doublestar patterns to files, in pattern order without
	// duplicates. Files matching any exclude pattern are dropped. StdioPath is
	// passed through untouched.
	Expand(ctx context.Context, patterns []string, exclude ...string) ([]string, error)

	// ReadLines returns the lines of a file without their line endings.
	ReadLines(ctx context.Context, path string) ([]string, error)

	// WriteLines writes one line per entry, creating parent directories.
	WriteLines(ctx context.Context, path string, lines []string) error
}

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local filesystem.
type LocalSourceFSAdapter struct {
	stdin  io.Reader
	stdout io.Writer
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter wired to the
// process standard streams.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewLocalSourceFSAdapterWithStdio(os.Stdin, os.Stdout)
}

// NewLocalSourceFSAdapterWithStdio constructs a LocalSourceFSAdapter that uses
// the given streams for StdioPath.
func NewLocalSourceFSAdapterWithStdio(stdin io.Reader, stdout io.Writer) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{stdin: stdin, stdout: stdout}
}

// Expand implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Expand(ctx context.Context, patterns []string, exclude ...string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	seen := make(map[string]struct{})
	files := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if pattern == StdioPath {
			files = appendUnique(files, seen, pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}

		for _, match := range matches {
			if excluded(match, exclude) {
				slog.Debug("Excluding input", "path", match)
				continue
			}

			files = appendUnique(files, seen, match)
		}
	}

	return files, nil
}

func appendUnique(files []string, seen map[string]struct{}, path string) []string {
	if _, ok := seen[path]; ok {
		return files
	}

	seen[path] = struct{}{}

	return append(files, path)
}

func excluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)

	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}

		if ok, _ := doublestar.Match(pattern, filepath.Base(path)); ok {
			return true
		}
	}

	return false
}

// ReadLines implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) ReadLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == StdioPath {
		return scanLines(a.stdin)
	}

	// #nosec G304 - input paths are supplied by the user on purpose
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = file.Close()
	}()

	lines, err := scanLines(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// WriteLines implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) WriteLines(ctx context.Context, path string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if path == StdioPath {
		return writeLines(a.stdout, lines)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	// #nosec G304 - output path is supplied by the user on purpose
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	if err := writeLines(file, lines); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return file.Close()
}

func writeLines(w io.Writer, lines []string) error {
	buffered := bufio.NewWriter(w)

	for _, line := range lines {
		if _, err := buffered.WriteString(line); err != nil {
			return err
		}

		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}

	return buffered.Flush()
}
