package vbc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alexanderramin/bbtree/internal/domain"
)

// maxLineBytes bounds a single log line; info records can be long.
const maxLineBytes = 1 << 20

// NewScanner returns a line scanner sized for VBC logs.
func NewScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return sc
}

// DetectSense scans a whole log once. Any upper-bound record means the
// problem is minimized; otherwise any lower-bound record means maximized.
// Lines that do not parse are skipped here.
func DetectSense(r io.Reader) (domain.Sense, error) {
	var sawUpper, sawLower bool
	sc := NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		rec, err := ParseLine(n, sc.Text())
		if err != nil {
			continue
		}
		if bu, ok := rec.(BoundUpdate); ok {
			switch bu.Kind {
			case BoundUpper:
				sawUpper = true
			case BoundLower:
				sawLower = true
			}
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("scanning log for primal bounds: %w", err)
	}

	switch {
	case sawUpper:
		return domain.Minimize, nil
	case sawLower:
		return domain.Maximize, nil
	}
	return "", &domain.ConfigError{
		Msg: "no primal bound (U or L record) in log; cannot tell minimization from maximization, pass --sense",
	}
}
