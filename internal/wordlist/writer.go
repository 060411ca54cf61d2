package wordlist

import (
	"bufio"
	"context"
	"os"

	"github.com/pkg/errors"
)

// 64KB buffer keeps syscall overhead low on large generations.
const writerBufferSize = 64 * 1024

// Writer owns the output file and streams one word per line to it. The file
// is created (or truncated) on construction and must be closed on every exit
// path so partial output survives an interrupted run.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
}

// NewWriter creates or truncates the output file at path.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create output file")
	}

	return &Writer{
		file: file,
		buf:  bufio.NewWriterSize(file, writerBufferSize),
	}, nil
}

// WriteWord writes word followed by a newline.
func (w *Writer) WriteWord(word string) error {
	if _, err := w.buf.WriteString(word); err != nil {
		return errors.Wrap(err, "failed to write word")
	}

	if err := w.buf.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "failed to write word")
	}

	return nil
}

// Close flushes buffered output and closes the file. Calling Close again is
// a no-op, so it can sit in a defer and still be checked explicitly.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}

	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	w.file = nil

	if flushErr != nil {
		return errors.Wrap(flushErr, "failed to flush output file")
	}

	if closeErr != nil {
		return errors.Wrap(closeErr, "failed to close output file")
	}

	return nil
}

// Drain writes every remaining word of seq to w. It stops early when ctx is
// cancelled and reports whether it did; words already written stay written.
// progress, when non-nil, is invoked every interval words with the running
// count.
func Drain(ctx context.Context, seq *Sequence, w *Writer, interval uint64, progress func(uint64)) (uint64, bool, error) {
	var count uint64

	for {
		select {
		case <-ctx.Done():
			return count, true, nil
		default:
		}

		word, ok := seq.Next()
		if !ok {
			return count, false, nil
		}

		if err := w.WriteWord(word); err != nil {
			return count, false, err
		}

		count++

		if progress != nil && interval > 0 && count%interval == 0 {
			progress(count)
		}
	}
}
