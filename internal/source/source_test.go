package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSource_SkipsBlankLinesKeepsNumbers(t *testing.T) {
	input := "first\n\n   \nsecond\r\nthird"
	src := NewReaderSource("test", strings.NewReader(input))

	lines, err := src.Lines(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Line{
		{Number: 1, Text: "first"},
		{Number: 4, Text: "second"},
		{Number: 5, Text: "third"},
	}, lines)
	assert.Equal(t, "test", src.Name())
}

func TestReaderSource_Empty(t *testing.T) {
	lines, err := NewReaderSource("empty", strings.NewReader("")).Lines(context.Background())

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReaderSource_LineTooLong(t *testing.T) {
	input := strings.Repeat("x", maxLineSize+1)

	_, err := NewReaderSource("long", strings.NewReader(input)).Lines(context.Background())

	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "messages.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))

	t.Run("file", func(t *testing.T) {
		src, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, path, src.Name())

		lines, err := src.Lines(context.Background())
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("stdin", func(t *testing.T) {
		src, err := Open("-")
		require.NoError(t, err)
		assert.Equal(t, "stdin", src.Name())
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Open("  ")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "nope.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Open(dir)
		assert.Error(t, err)
	})
}
