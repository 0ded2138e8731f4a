package render

import (
	"bufio"
	"io"
	"os"

	"lifehash/internal/fingerprint"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const halfBlock = "▀"

// Hex formats c as #rrggbb.
func Hex(c fingerprint.Color) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// WriteANSI draws colors to w using upper half blocks, so each text row
// carries two pixel rows. Odd heights pad the last row with the
// terminal's default background. The Ascii profile emits uncolored blocks.
func WriteANSI(w io.Writer, colors *fingerprint.ColorGrid, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < colors.H; y += 2 {
		for x := 0; x < colors.W; x++ {
			style := profile.String(halfBlock).Foreground(profile.Color(Hex(colors.At(x, y))))
			if y+1 < colors.H {
				style = style.Background(profile.Color(Hex(colors.At(x, y+1))))
			}
			if _, err := bw.WriteString(style.String()); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
