// Package render turns lattice snapshots into text, bytes and styled
// terminal frames.
package render

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ising/internal/lattice"
)

const (
	UpChar   = '#'
	DownChar = '.'
)

// Format selects how a snapshot is written.
type Format string

const (
	FormatText   Format = "text"
	FormatBinary Format = "binary"
)

var ErrUnknownFormat = errors.New("render: unknown output format")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatBinary:
		return FormatBinary, nil
	}
	return "", fmt.Errorf("%w: %q (want text or binary)", ErrUnknownFormat, s)
}

// Write renders snap in the given format.
func Write(w io.Writer, f Format, snap []lattice.Spin, width int) error {
	switch f {
	case FormatText:
		return Text(w, snap, width)
	case FormatBinary:
		return Binary(w, snap)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Text writes len(snap)/width lines of width characters.
func Text(w io.Writer, snap []lattice.Spin, width int) error {
	if width <= 0 || len(snap)%width != 0 {
		return fmt.Errorf("render: snapshot of %d cells is not a multiple of width %d", len(snap), width)
	}
	bw := bufio.NewWriter(w)
	for i, s := range snap {
		if s == lattice.Up {
			bw.WriteByte(UpChar)
		} else {
			bw.WriteByte(DownChar)
		}
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Bytes returns the snapshot as row-major 1/0 bytes.
func Bytes(snap []lattice.Spin) []byte {
	out := make([]byte, len(snap))
	for i, s := range snap {
		if s == lattice.Up {
			out[i] = 1
		}
	}
	return out
}

func Binary(w io.Writer, snap []lattice.Spin) error {
	_, err := w.Write(Bytes(snap))
	return err
}

// Hash returns the hex SHA-256 digest of the binary form of snap.
func Hash(snap []lattice.Spin) string {
	sum := sha256.Sum256(Bytes(snap))
	return hex.EncodeToString(sum[:])
}

// Palette holds the styles used for each spin state by Frame.
type Palette struct {
	Up   lipgloss.Style
	Down lipgloss.Style
}

var DefaultPalette = Palette{
	Up:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	Down: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// Frame renders snap for a terminal, two columns per cell so the lattice
// keeps its aspect ratio.
func Frame(snap []lattice.Spin, width int, p Palette) string {
	if width <= 0 {
		return ""
	}
	up := p.Up.Render("██")
	down := p.Down.Render("░░")

	var b strings.Builder
	for i, s := range snap {
		if s == lattice.Up {
			b.WriteString(up)
		} else {
			b.WriteString(down)
		}
		if (i+1)%width == 0 && i+1 < len(snap) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
