// Package lint runs the line-width check over a sequence of files.
//
// Files are processed one at a time. The first file that cannot be opened
// or read stops the run: the returned *FileError names it and no later file
// is touched.
package lint

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/Sumatoshi-tech/linewidth/pkg/linewidth"
)

// Finding is a line whose width exceeds the limit.
type Finding struct {
	Path  string
	Line  int
	Width int
	// Text is the line with surrounding white space and terminator removed.
	Text string
}

// FileResult is the per-file summary.
type FileResult struct {
	Path    string
	Lines   int
	Errors  int
	Longest int
}

// Result holds the summaries of every completed file, in processing order.
type Result struct {
	Files []FileResult
}

// TotalErrors returns the number of findings across all files.
func (r Result) TotalErrors() int {
	total := 0
	for _, f := range r.Files {
		total += f.Errors
	}

	return total
}

// TotalLines returns the number of lines read across all files.
func (r Result) TotalLines() int {
	total := 0
	for _, f := range r.Files {
		total += f.Lines
	}

	return total
}

// Reporter receives findings as they are found and a summary once a file
// has been read to the end.
type Reporter interface {
	Finding(f Finding)
	FileDone(r FileResult)
}

// FileError is returned when a file cannot be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Options controls the width check.
type Options struct {
	MaxWidth int
	TabStop  int
}

// DefaultOptions returns an 80 column limit with tab stops every 4 columns.
func DefaultOptions() Options {
	return Options{
		MaxWidth: linewidth.DefaultMaxWidth,
		TabStop:  linewidth.DefaultTabStop,
	}
}

// Linter checks files against Options and streams output to a Reporter.
type Linter struct {
	opts     Options
	reporter Reporter
	logger   *slog.Logger
}

// NewLinter creates a Linter. A nil logger discards diagnostics.
func NewLinter(opts Options, reporter Reporter, logger *slog.Logger) *Linter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Linter{
		opts:     opts,
		reporter: reporter,
		logger:   logger,
	}
}

// Run checks each path in order and stops at the first failure. The Result
// holds the files completed before the failure.
func (l *Linter) Run(paths []string) (Result, error) {
	var result Result

	for _, path := range paths {
		fileResult, err := l.CheckFile(path)
		if err != nil {
			l.logger.Debug("aborting run", "path", path, "error", err)

			return result, err
		}

		result.Files = append(result.Files, fileResult)
	}

	return result, nil
}

// CheckFile reads one file line by line, reporting every line wider than the
// limit and, if the whole file was read, its summary.
func (l *Linter) CheckFile(path string) (FileResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return FileResult{}, &FileError{Path: path, Err: err}
	}
	defer file.Close()

	l.logger.Debug("checking file", "path", path)

	result, err := l.check(path, file)
	if err != nil {
		return FileResult{}, &FileError{Path: path, Err: err}
	}

	l.reporter.FileDone(result)

	return result, nil
}

func (l *Linter) check(path string, src io.Reader) (FileResult, error) {
	result := FileResult{Path: path}
	reader := bufio.NewReader(transform.NewReader(src, encoding.UTF8Validator))

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return result, wrapReadErr(path, readErr)
		}

		if line != "" {
			result.Lines++
			l.checkLine(&result, line)
		}

		if readErr != nil {
			return result, nil
		}
	}
}

func (l *Linter) checkLine(result *FileResult, line string) {
	width := linewidth.Measure(line, l.opts.TabStop)
	result.Longest = max(result.Longest, width)

	if !linewidth.Exceeds(width, l.opts.MaxWidth) {
		return
	}

	result.Errors++

	l.reporter.Finding(Finding{
		Path:  result.Path,
		Line:  result.Lines,
		Width: width,
		Text:  strings.TrimSpace(line),
	})
}

// wrapReadErr names the file unless the error already does.
func wrapReadErr(path string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return err
	}

	return fmt.Errorf("read %s: %w", path, err)
}
