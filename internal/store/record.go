package store

import (
	"fmt"

	"lifehash/internal/core"
	"lifehash/internal/fingerprint"

	"github.com/fxamacker/cbor/v2"
)

// Record is the persisted form of a generated fingerprint. Pixels are the
// packed RGB bytes, which is all a cached image has to reproduce.
type Record struct {
	Version     fingerprint.Version `cbor:"1,keyasint"`
	Digest      []byte              `cbor:"2,keyasint"`
	Width       int                 `cbor:"3,keyasint"`
	Height      int                 `cbor:"4,keyasint"`
	Generations int                 `cbor:"5,keyasint"`
	Cycled      bool                `cbor:"6,keyasint"`
	Strategy    int                 `cbor:"7,keyasint"`
	Reversed    bool                `cbor:"8,keyasint"`
	Anchors     [][3]float64        `cbor:"9,keyasint"`
	Pattern     int                 `cbor:"10,keyasint"`
	Pixels      []byte              `cbor:"11,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	opts := cbor.CoreDetEncOptions()
	opts.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = opts.EncMode()
	if err != nil {
		panic("store: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("store: CBOR decoder initialization failed: " + err.Error())
	}
}

// NewRecord captures img for storage.
func NewRecord(digest []byte, img *fingerprint.Image) Record {
	size := img.Size()
	anchors := make([][3]float64, len(img.Gradient.Anchors))
	for i, c := range img.Gradient.Anchors {
		anchors[i] = [3]float64{c.R, c.G, c.B}
	}
	return Record{
		Version:     img.Version,
		Digest:      append([]byte(nil), digest...),
		Width:       size.W,
		Height:      size.H,
		Generations: img.Generations,
		Cycled:      img.Cycled,
		Strategy:    int(img.Gradient.Strategy),
		Reversed:    img.Gradient.Reversed,
		Anchors:     anchors,
		Pattern:     int(img.Pattern),
		Pixels:      img.Pixels(false),
	}
}

// Image rebuilds the fingerprint from the record.
func (r Record) Image() (*fingerprint.Image, error) {
	if r.Width <= 0 || r.Height <= 0 || len(r.Pixels) != r.Width*r.Height*3 {
		return nil, fmt.Errorf("%w: %dx%d image with %d pixel bytes", ErrCorrupt, r.Width, r.Height, len(r.Pixels))
	}
	colors := core.NewGrid(r.Width, r.Height, fingerprint.Black)
	cells := colors.Cells()
	for i := range cells {
		p := r.Pixels[i*3 : i*3+3]
		cells[i] = fingerprint.RGB8(p[0], p[1], p[2])
	}
	anchors := make([]fingerprint.Color, len(r.Anchors))
	for i, a := range r.Anchors {
		anchors[i] = fingerprint.Color{R: a[0], G: a[1], B: a[2]}
	}
	return &fingerprint.Image{
		Version:     r.Version,
		Colors:      colors,
		Generations: r.Generations,
		Cycled:      r.Cycled,
		Gradient:    fingerprint.NewGradient(fingerprint.Strategy(r.Strategy), r.Reversed, anchors...),
		Pattern:     fingerprint.Pattern(r.Pattern),
	}, nil
}
