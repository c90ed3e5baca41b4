// Package render turns DOT descriptions into image or document files.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrRendererUnavailable means the layout binary could not be found.
var ErrRendererUnavailable = errors.New("graphviz renderer unavailable")

// Renderer lays out a DOT description and writes it to outPath in the
// given output format (pdf, ps, svg, png, ...). Implementations block until
// the file is written.
type Renderer interface {
	Render(ctx context.Context, dot []byte, format, outPath string) error
}

// Graphviz runs the dot binary.
type Graphviz struct {
	Binary string
}

// NewGraphviz creates a renderer for the given binary name or path.
func NewGraphviz(binary string) *Graphviz {
	if binary == "" {
		binary = "dot"
	}
	return &Graphviz{Binary: binary}
}

func (g *Graphviz) Render(ctx context.Context, dot []byte, format, outPath string) error {
	path, err := exec.LookPath(g.Binary)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRendererUnavailable, g.Binary, err)
	}
	cmd := exec.CommandContext(ctx, path, "-T"+format, "-o", outPath)
	cmd.Stdin = bytes.NewReader(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("running %s -T%s -o %s: %w: %s", g.Binary, format, outPath, err, msg)
		}
		return fmt.Errorf("running %s -T%s -o %s: %w", g.Binary, format, outPath, err)
	}
	return nil
}

// Nop renders nothing. Used with --no-render.
type Nop struct{}

func (Nop) Render(context.Context, []byte, string, string) error { return nil }
