package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWritesOneWordPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := NewWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteWord("aa"))
	require.NoError(t, w.WriteWord("ab"))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "aa\nab\n", string(data))
}

func TestWriterTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o600))

	w, err := NewWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteWord("fresh"))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "fresh\n", string(data))
}

func TestWriterCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := NewWriter(path)
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWriterRejectsBadPath(t *testing.T) {
	_, err := NewWriter(filepath.Join(t.TempDir(), "missing", "out.txt"))

	assert.Error(t, err)
}

func TestDrainWritesEverySequenceWord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := NewWriter(path)
	require.NoError(t, err)

	count, interrupted, err := Drain(context.Background(), NewRange("ab", 1, 2), w, 0, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, uint64(6), count)
	assert.False(t, interrupted)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"},
		strings.Split(strings.TrimRight(string(data), "\n"), "\n"))
}

func TestDrainStopsOnCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := NewWriter(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, interrupted, err := Drain(ctx, NewRange("ab", 1, 8), w, 0, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.True(t, interrupted)
	assert.Zero(t, count)

	// the partial (empty) output file still exists
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestDrainProgressInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := NewWriter(path)
	require.NoError(t, err)
	defer w.Close()

	var calls []uint64

	// 2^1 + 2^2 + 2^3 = 14 words, progress every 5
	count, interrupted, err := Drain(context.Background(), NewRange("ab", 1, 3), w, 5,
		func(n uint64) { calls = append(calls, n) })
	require.NoError(t, err)

	assert.Equal(t, uint64(14), count)
	assert.False(t, interrupted)
	assert.Equal(t, []uint64{5, 10}, calls)
}
