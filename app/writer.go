package app

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// lineWriter writes result lines. It flushes after every line on a terminal
// and buffers otherwise.
type lineWriter struct {
	buf          *bufio.Writer
	lineBuffered bool
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{
		buf:          bufio.NewWriter(w),
		lineBuffered: isTerminal(w),
	}
}

func (lw *lineWriter) WriteLine(line string) error {
	if _, err := lw.buf.WriteString(line); err != nil {
		return err
	}
	if err := lw.buf.WriteByte('\n'); err != nil {
		return err
	}
	if lw.lineBuffered {
		return lw.buf.Flush()
	}
	return nil
}

func (lw *lineWriter) Flush() error {
	return lw.buf.Flush()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
