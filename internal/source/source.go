// Package source feeds input lines to the batch service.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/pesa/internal/constants"
)

var ErrEmptyPath = errors.New("input path is empty")

// maxLineSize bounds a single message line.
const maxLineSize = 1 << 20

// Line is one non-blank input line with its 1-based physical position.
type Line struct {
	Number int
	Text   string
}

type Source interface {
	Name() string
	Lines(ctx context.Context) ([]Line, error)
}

// ReaderSource reads lines from an already open reader.
type ReaderSource struct {
	name string
	r    io.Reader
}

func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

func (s *ReaderSource) Name() string {
	return s.name
}

func (s *ReaderSource) Lines(ctx context.Context) ([]Line, error) {
	return scan(ctx, s.r)
}

// FileSource opens its file on each call to Lines.
type FileSource struct {
	path string
}

func (s *FileSource) Name() string {
	return s.path
}

func (s *FileSource) Lines(ctx context.Context) ([]Line, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return scan(ctx, f)
}

// Open returns the source for path; "-" is standard input.
func Open(path string) (Source, error) {
	path = strings.TrimSpace(path)
	switch path {
	case "":
		return nil, ErrEmptyPath
	case constants.StdinSource:
		return NewReaderSource("stdin", os.Stdin), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input file not accessible: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input path %q is a directory", path)
	}

	return &FileSource{path: path}, nil
}

func scan(ctx context.Context, r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []Line
	n := 0
	for sc.Scan() {
		n++
		if n%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input at line %d: %w", n+1, err)
	}

	return lines, nil
}
