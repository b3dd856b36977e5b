package lint_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/Sumatoshi-tech/linewidth/pkg/lint"
)

// recorder keeps every callback in arrival order.
type recorder struct {
	findings []lint.Finding
	done     []lint.FileResult
	events   []string
}

func (r *recorder) Finding(f lint.Finding) {
	r.findings = append(r.findings, f)
	r.events = append(r.events, "finding:"+f.Path)
}

func (r *recorder) FileDone(res lint.FileResult) {
	r.done = append(r.done, res)
	r.events = append(r.events, "done:"+res.Path)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCheckFile_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "edge.c",
		strings.Repeat("a", 80)+"\n"+
			strings.Repeat("b", 81)+"\n"+
			"\n")

	rec := &recorder{}
	res, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)
	require.NoError(t, err)

	require.Len(t, rec.findings, 1)
	assert.Equal(t, lint.Finding{Path: path, Line: 2, Width: 81, Text: strings.Repeat("b", 81)}, rec.findings[0])
	assert.Equal(t, lint.FileResult{Path: path, Lines: 3, Errors: 1, Longest: 81}, res)
	assert.Equal(t, []lint.FileResult{res}, rec.done)
}

func TestCheckFile_TabsAndStrippedText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// 20 tabs reach column 80, two more characters push past the limit.
	line := strings.Repeat("\t", 20) + "x;  \n"
	path := writeFile(t, dir, "tabs.c", line+"\tok\n")

	rec := &recorder{}
	_, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)
	require.NoError(t, err)

	require.Len(t, rec.findings, 1)
	assert.Equal(t, 84, rec.findings[0].Width)
	assert.Equal(t, "x;", rec.findings[0].Text)
	assert.Equal(t, 1, rec.findings[0].Line)
}

func TestCheckFile_LastLineWithoutTerminator(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "tail.h", "short\n"+strings.Repeat("z", 90))

	rec := &recorder{}
	res, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Lines)
	require.Len(t, rec.findings, 1)
	assert.Equal(t, 90, rec.findings[0].Width)
}

func TestCheckFile_EmptyFileStillSummarised(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "empty.c", "")

	rec := &recorder{}
	res, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)
	require.NoError(t, err)

	assert.Equal(t, lint.FileResult{Path: path}, res)
	assert.Equal(t, []string{"done:" + path}, rec.events)
}

func TestCheckFile_VeryLongLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "huge.c", strings.Repeat("q", 100_000)+"\n")

	rec := &recorder{}
	res, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)
	require.NoError(t, err)

	assert.Equal(t, 100_000, res.Longest)
	require.Len(t, rec.findings, 1)
}

func TestCheckFile_InvalidUTF8AbortsWithoutSummary(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := strings.Repeat("w", 85) + "\n" + "ok\n" + "bad \xff\xfe byte\n" + "after\n"
	path := writeFile(t, dir, "latin1.c", content)

	rec := &recorder{}
	_, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)
	require.Error(t, err)

	var fileErr *lint.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, path, fileErr.Path)

	require.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	assert.Equal(t, 1, strings.Count(err.Error(), path))

	assert.Len(t, rec.findings, 1)
	assert.Empty(t, rec.done)
}

func TestCheckFile_TruncatedTrailingRuneAborts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// First two bytes of a three-byte rune, then end of file.
	path := writeFile(t, dir, "cut.c", "ok\n\xe6\x97")

	rec := &recorder{}
	_, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)

	require.ErrorIs(t, err, encoding.ErrInvalidUTF8)
	assert.Empty(t, rec.done)
}

func TestCheckFile_DirectoryNamesPathOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	rec := &recorder{}
	_, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(dir)

	var fileErr *lint.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, dir, fileErr.Path)
	assert.Equal(t, 1, strings.Count(err.Error(), dir), err.Error())
	assert.Empty(t, rec.events)
}

func TestCheckFile_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.c")

	rec := &recorder{}
	_, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).CheckFile(path)

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.c")
	assert.Empty(t, rec.events)
}

func TestRun_FailFast(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.c", strings.Repeat("g", 81)+"\n")
	missing := filepath.Join(dir, "missing.c")
	good2 := writeFile(t, dir, "good2.c", strings.Repeat("h", 81)+"\n")

	rec := &recorder{}
	res, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).Run([]string{good, missing, good2})

	var fileErr *lint.FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, missing, fileErr.Path)

	assert.Equal(t, []string{"finding:" + good, "done:" + good}, rec.events)
	require.Len(t, res.Files, 1)
	assert.Equal(t, good, res.Files[0].Path)
}

func TestRun_CountersResetPerFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	long := strings.Repeat("l", 81) + "\n"
	first := writeFile(t, dir, "first.c", long+long+"ok\n")
	second := writeFile(t, dir, "second.c", "ok\n")
	third := writeFile(t, dir, "third.c", "ok\n"+long)

	rec := &recorder{}
	res, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).Run([]string{first, second, third})
	require.NoError(t, err)

	require.Len(t, rec.done, 3)
	assert.Equal(t, 2, rec.done[0].Errors)
	assert.Equal(t, 0, rec.done[1].Errors)
	assert.Equal(t, 1, rec.done[2].Errors)

	require.Len(t, rec.findings, 3)
	assert.Equal(t, 2, rec.findings[2].Line)
	assert.Equal(t, third, rec.findings[2].Path)

	assert.Equal(t, 3, res.TotalErrors())
	assert.Equal(t, 6, res.TotalLines())
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	res, err := lint.NewLinter(lint.DefaultOptions(), rec, nil).Run(nil)
	require.NoError(t, err)

	assert.Empty(t, res.Files)
	assert.Empty(t, rec.events)
}

func TestRun_CustomOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "wide.c", strings.Repeat("m", 90)+"\n"+"\t\n")

	rec := &recorder{}
	linter := lint.NewLinter(lint.Options{MaxWidth: 100, TabStop: 8}, rec, nil)
	res, err := linter.Run([]string{path})
	require.NoError(t, err)

	assert.Empty(t, rec.findings)
	assert.Equal(t, 90, res.Files[0].Longest)

	rec = &recorder{}
	_, err = lint.NewLinter(lint.Options{MaxWidth: 4, TabStop: 8}, rec, nil).Run([]string{path})
	require.NoError(t, err)

	require.Len(t, rec.findings, 2)
	assert.Equal(t, 8, rec.findings[1].Width)
}
