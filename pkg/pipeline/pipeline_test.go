package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanworks/hanset/pkg/charset"
	hanseterr "github.com/hanworks/hanset/pkg/errors"
	"github.com/hanworks/hanset/pkg/strokes"
)

// fakeSource classifies only the characters it is told about; everything
// else resolves to unknown. Tests use it to keep the embedded candidate pool
// out of the buckets.
type fakeSource struct {
	counts map[rune]int
}

func (f fakeSource) Strokes(r rune) (int, bool) {
	n, ok := f.counts[r]
	return n, ok
}

func (f fakeSource) Decomposition(rune) ([]rune, bool) {
	return nil, false
}

const baselineDoc = `常用汉字字符集
以下按笔画分组，制表符分隔。

1画	大 小 山

符号与数字
0 1 2 ！ ？`

// writeBaseline writes the standard test baseline and returns its path.
func writeBaseline(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "charset.txt")
	require.NoError(t, os.WriteFile(path, []byte(baselineDoc), 0o644))
	return path
}

// Scenario A: the baseline holds three one-stroke characters and the limit is
// three, so the output is exactly those three in collation order.
func TestExecuteScenarioA(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)
	out := filepath.Join(dir, "out.txt")

	src := fakeSource{counts: map[rune]int{'大': 1, '小': 1, '山': 1}}
	runner := NewRunner(src, nil)

	result, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline,
		OutputPath:   out,
		Limit:        3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Selected)
	// 大 (dà) < 山 (shān) < 小 (xiǎo) under the pinned collation.
	assert.Contains(t, result.Document, "1画\t大 山 小")
	assert.True(t, result.Written)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, result.Document, string(written))
}

// Scenario D: a limit of zero empties the body while the prefix and suffix
// regions survive verbatim.
func TestExecuteScenarioD(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)

	src := fakeSource{counts: map[rune]int{'大': 1, '小': 1, '山': 1}}
	runner := NewRunner(src, nil)

	result, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline,
		Limit:        0,
		Preview:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Selected)
	assert.Contains(t, result.Document, "常用汉字字符集")
	assert.Contains(t, result.Document, "符号与数字")
	assert.NotContains(t, result.Document, "画\t")
}

// Scenario C: a corrupt font is skipped with a warning while the other
// sources still contribute and the run completes.
func TestExecuteScenarioC(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)
	fontDir := filepath.Join(dir, "fonts")
	require.NoError(t, os.Mkdir(fontDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(fontDir, "broken.ttf"), []byte("junk"), 0o644))

	src := fakeSource{counts: map[rune]int{'大': 1, '小': 1, '山': 1}}
	runner := NewRunner(src, nil)

	result, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline,
		Limit:        3,
		FontDir:      fontDir,
		Preview:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Selected)
}

// Scenario B: an include file repeating a baseline character must not grow
// the union.
func TestExecuteScenarioB(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)
	include := filepath.Join(dir, "dup.txt")
	require.NoError(t, os.WriteFile(include, []byte("大"), 0o644))

	src := fakeSource{counts: map[rune]int{'大': 1, '小': 1, '山': 1}}
	runner := NewRunner(src, nil)

	without, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline, Limit: 10, Preview: true,
	})
	require.NoError(t, err)

	with, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline, Limit: 10, Includes: []string{include}, Preview: true,
	})
	require.NoError(t, err)

	assert.Equal(t, without.UnionSize, with.UnionSize)
}

// A broken include file is skipped; the run still completes.
func TestExecuteSkipsBrokenInclude(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)

	src := fakeSource{counts: map[rune]int{'大': 1, '小': 1, '山': 1}}
	runner := NewRunner(src, nil)

	result, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline,
		Limit:        3,
		Includes:     []string{filepath.Join(dir, "absent.txt")},
		Preview:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Selected)
}

// Two runs with identical inputs produce byte-identical documents. This uses
// the real embedded stroke table and collator end to end.
func TestExecuteIdempotent(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)

	table, err := strokes.Load()
	require.NoError(t, err)
	runner := NewRunner(table, nil)

	opts := Options{BaselinePath: baseline, Limit: 200, Preview: true}

	first, err := runner.Execute(context.Background(), opts)
	require.NoError(t, err)
	second, err := runner.Execute(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Document, second.Document)
}

// With a limit at least the union size, nothing bucketed is dropped.
func TestExecuteKeepsAllUnderLimit(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)

	table, err := strokes.Load()
	require.NoError(t, err)
	runner := NewRunner(table, nil)

	result, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline,
		Limit:        100000,
		Preview:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, result.UnionSize, result.Selected+len(result.Unknown),
		"every union character is either bucketed or tallied unknown")
	reparsed := charset.ParseDocument(result.Document)
	assert.Equal(t, result.Selected, reparsed.Len())
}

func TestExecuteUnreadableBaselineIsFatal(t *testing.T) {
	runner := NewRunner(fakeSource{}, nil)

	_, err := runner.Execute(context.Background(), Options{
		BaselinePath: filepath.Join(t.TempDir(), "absent.txt"),
		Limit:        10,
	})
	require.Error(t, err)
	assert.True(t, hanseterr.Is(err, hanseterr.ErrCodeBaselineRead))
}

func TestExecuteUnwritableOutputIsFatal(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)

	src := fakeSource{counts: map[rune]int{'大': 1}}
	runner := NewRunner(src, nil)

	_, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline,
		OutputPath:   filepath.Join(dir, "no", "such", "dir", "out.txt"),
		Limit:        10,
	})
	require.Error(t, err)
	assert.True(t, hanseterr.Is(err, hanseterr.ErrCodeOutputWrite))
}

func TestExecuteNegativeLimit(t *testing.T) {
	runner := NewRunner(fakeSource{}, nil)

	_, err := runner.Execute(context.Background(), Options{BaselinePath: "x", Limit: -1})
	require.Error(t, err)
	assert.True(t, hanseterr.Is(err, hanseterr.ErrCodeInvalidLimit))
}

// The truncation bias is part of the contract: under pressure, low-stroke
// characters win.
func TestExecuteTruncationFavorsLowStroke(t *testing.T) {
	dir := t.TempDir()
	baseline := writeBaseline(t, dir)

	src := fakeSource{counts: map[rune]int{'大': 1, '小': 9, '山': 9}}
	runner := NewRunner(src, nil)

	result, err := runner.Execute(context.Background(), Options{
		BaselinePath: baseline,
		Limit:        1,
		Preview:      true,
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Selected)
	assert.True(t, strings.Contains(result.Document, "1画\t大"))
	assert.False(t, strings.Contains(result.Document, "9画"))
}
