package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"lifehash/internal/core"
	"lifehash/internal/fingerprint"

	"github.com/muesli/termenv"
	"golang.org/x/image/bmp"
)

func checkerGrid() *fingerprint.ColorGrid {
	g := core.NewGrid(2, 3, fingerprint.Black)
	g.Set(1, 0, fingerprint.White)
	g.Set(0, 1, fingerprint.RGB8(255, 0, 0))
	g.Set(1, 2, fingerprint.RGB8(0, 0, 255))
	return g
}

func TestImagePixels(t *testing.T) {
	img := Image(checkerGrid())
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	if c := img.NRGBAAt(1, 0); c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Fatalf("(1,0) = %v", c)
	}
	if c := img.NRGBAAt(0, 1); c.R != 255 || c.G != 0 || c.A != 255 {
		t.Fatalf("(0,1) = %v", c)
	}
}

func TestScaleKeepsModulesSquare(t *testing.T) {
	src := Image(checkerGrid())
	if Scale(src, 1) != src {
		t.Fatalf("module 1 should return the source image")
	}
	dst := Scale(src, 4)
	if b := dst.Bounds(); b.Dx() != 8 || b.Dy() != 12 {
		t.Fatalf("bounds = %v", b)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 8; x++ {
			if dst.NRGBAAt(x, y) != src.NRGBAAt(x/4, y/4) {
				t.Fatalf("pixel (%d,%d) does not match its module", x, y)
			}
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	src := Image(checkerGrid())
	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatPNG); err != nil {
		t.Fatalf("png: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	r, _, b, _ := decoded.At(1, 2).RGBA()
	if r != 0 || b>>8 != 255 {
		t.Fatalf("png pixel (1,2) = %v", decoded.At(1, 2))
	}

	buf.Reset()
	if err := Encode(&buf, src, FormatBMP); err != nil {
		t.Fatalf("bmp: %v", err)
	}
	if _, err := bmp.Decode(&buf); err != nil {
		t.Fatalf("decode bmp: %v", err)
	}

	if err := Encode(&buf, src, Format("gif")); err == nil {
		t.Fatalf("gif accepted")
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("PNG"); err != nil || f != FormatPNG {
		t.Fatalf("PNG = %v, %v", f, err)
	}
	if f, _ := ParseFormat("bmp"); f.Extension() != ".bmp" {
		t.Fatalf("extension = %q", f.Extension())
	}
	if _, err := ParseFormat("tiff"); err == nil {
		t.Fatalf("tiff accepted")
	}
}

func TestHex(t *testing.T) {
	if got := Hex(fingerprint.RGB8(0, 168, 222)); got != "#00a8de" {
		t.Fatalf("hex = %q", got)
	}
	if got := Hex(fingerprint.Color{R: 2, G: -1, B: 0.5}); got != "#ff0080" {
		t.Fatalf("clamped hex = %q", got)
	}
}

func TestWriteANSI(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteANSI(&buf, checkerGrid(), termenv.TrueColor); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, want 2", len(lines))
	}
	if strings.Count(buf.String(), halfBlock) != 4 {
		t.Fatalf("expected 4 half blocks in %q", buf.String())
	}
	if !strings.Contains(lines[0], "38;2;0;0;0") {
		t.Fatalf("top-left foreground missing from %q", lines[0])
	}

	buf.Reset()
	if err := WriteANSI(&buf, checkerGrid(), termenv.Ascii); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("ascii profile emitted escapes: %q", buf.String())
	}
}

func TestFingerprintModule(t *testing.T) {
	img, err := fingerprint.Generate(make([]byte, 32), fingerprint.Version2)
	if err != nil {
		t.Fatal(err)
	}
	out := Fingerprint(img, 3)
	if b := out.Bounds(); b.Dx() != 96 || b.Dy() != 96 {
		t.Fatalf("bounds = %v", b)
	}
}
