package service

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// lineFeed yields complete lines from a reader that may keep growing.
// A trailing line without a newline is held back until it is terminated
// or until the caller asks for it with rest.
type lineFeed struct {
	r       *bufio.Reader
	partial strings.Builder
	lineNo  int
}

func newLineFeed(r io.Reader) *lineFeed {
	return &lineFeed{r: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the next complete line without its terminator. ok is false
// when no complete line is available yet.
func (f *lineFeed) next() (line string, ok bool, err error) {
	s, err := f.r.ReadString('\n')
	f.partial.WriteString(s)
	if errors.Is(err, io.EOF) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	line = f.partial.String()
	f.partial.Reset()
	f.lineNo++
	return strings.TrimRight(line, "\r\n"), true, nil
}

// rest drains the unterminated tail, if any.
func (f *lineFeed) rest() (string, bool) {
	if f.partial.Len() == 0 {
		return "", false
	}
	line := strings.TrimRight(f.partial.String(), "\r")
	f.partial.Reset()
	f.lineNo++
	return line, true
}
