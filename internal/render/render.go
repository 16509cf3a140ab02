// Package render writes FileSystem listings to a terminal, optionally styled.
package render

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vvka-141/memtree/internal/config"
	"github.com/vvka-141/memtree/pkg/memtree"
)

// UseColor decides whether output to f should be styled for the given
// color mode (see config.ColorAuto and friends).
//
// In auto mode styling is disabled when NO_COLOR is set or f is not a terminal.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Renderer writes listings. A plain Renderer produces exactly the output of
// memtree.FileSystem.List.
type Renderer struct {
	styled bool
	styles styles
}

// New returns a Renderer. A styled Renderer always emits ANSI 256-color
// sequences; callers decide with UseColor whether the destination wants them.
func New(styled bool) *Renderer {
	r := &Renderer{styled: styled}
	if styled {
		lr := lipgloss.NewRenderer(io.Discard)
		lr.SetColorProfile(termenv.ANSI256)
		r.styles = newStyles(lr)
	}
	return r
}

// List writes the listing of fs to w.
func (r *Renderer) List(w io.Writer, fs *memtree.FileSystem) error {
	if !r.styled {
		return fs.List(w)
	}

	var buf bytes.Buffer
	if err := fs.List(&buf); err != nil {
		return err
	}

	var out strings.Builder
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line == "" {
			continue
		}
		out.WriteString(r.styleLine(strings.TrimSuffix(line, "\n")))
		out.WriteString("\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}

// styleLine colors a single listing line while keeping its indentation.
func (r *Renderer) styleLine(line string) string {
	body := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(body)]

	switch {
	case strings.HasPrefix(body, "+ "):
		return indent + r.styles.directory.Render(body)
	case strings.HasPrefix(body, "- "):
		if i := strings.LastIndex(body, " ("); i >= 0 {
			return indent + r.styles.file.Render(body[:i]) + r.styles.size.Render(body[i:])
		}
		return indent + r.styles.file.Render(body)
	}
	return line
}

// Error formats an error message for the terminal.
func (r *Renderer) Error(msg string) string {
	if !r.styled {
		return msg
	}
	return r.styles.err.Render(msg)
}
