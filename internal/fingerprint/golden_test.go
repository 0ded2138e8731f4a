package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

// Expected outputs for two fixed digests under every version. A change to
// any constant, rounding step or entropy read shows up here as a different
// pixel hash.
var goldenImages = []struct {
	input       string
	version     Version
	generations int
	cycled      bool
	strategy    Strategy
	reversed    bool
	pattern     Pattern
	firstPixel  string
	pixelSHA256 string
}{
	{"Hello", Version1, 150, false, Monochromatic, false, Snowflake, "001b08", "f6b4eeb92720496031672506db62602fe446007d749fd8a5929463e04adc2af9"},
	{"Hello", Version2, 66, true, Complementary, true, Snowflake, "937e82", "77e54a3068015808307e4e48d27343f359ca6a84ac55f7b7d34343fcbc62c8ce"},
	{"Hello", Detailed, 300, false, Monochromatic, true, Snowflake, "355f2a", "47da69b7c7c23251047a19bbda819456923afb483d2cfb8459f15305d4a3e48b"},
	{"Hello", Fiducial, 300, false, Monochromatic, false, FiducialPattern, "311820", "ec30d3416c0fa92e42f105fce4cb313dc4837ecc4d852038795b89e904b895cc"},
	{"Hello", GrayscaleFiducial, 300, false, Grayscale, false, FiducialPattern, "cfcfcf", "68a7f0f3edc26abe0d1e8f354a0fc42d79928d6b1ce335e9207e1be8c6c5001c"},
	{"", Version1, 1, true, Monochromatic, false, Pinwheel, "f20000", "05ef0111e7ad9901b3732de27236aef456857db0b9e529001dd93e7597587dd6"},
	{"", Version2, 31, true, Monochromatic, false, Pinwheel, "006f92", "5d9315fe920388aedbd6601ba2dcc820b8bffa4750bb2b0a89d3908f2e50b15e"},
	{"", Detailed, 103, true, Monochromatic, false, Pinwheel, "00161d", "e324e16205054e48317b52d924bede115c088ee5665587484bc08280a97802ca"},
	{"", Fiducial, 103, true, Monochromatic, false, FiducialPattern, "2397bc", "d606ab9c346ee11576b9eb3a081a5888ec177be8bf8403a5b8236fb5c0883a9d"},
	{"", GrayscaleFiducial, 300, false, Grayscale, false, FiducialPattern, "e6e6e6", "9f5cee6496353708cd28058108be6a9050c4cc806f3413ab80ca029ce305b889"},
}

// goldenDigest returns sha256 of input, or 32 zero bytes for the empty input.
func goldenDigest(input string) []byte {
	if input == "" {
		return make([]byte, 32)
	}
	sum := sha256.Sum256([]byte(input))
	return sum[:]
}

func TestGoldenImages(t *testing.T) {
	for _, tc := range goldenImages {
		name := tc.input
		if name == "" {
			name = "zero"
		}
		t.Run(name+"/"+tc.version.String(), func(t *testing.T) {
			img, err := Generate(goldenDigest(tc.input), tc.version)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			if img.Generations != tc.generations || img.Cycled != tc.cycled {
				t.Errorf("generations = %d (cycled %v), want %d (cycled %v)", img.Generations, img.Cycled, tc.generations, tc.cycled)
			}
			if img.Gradient.Strategy != tc.strategy || img.Gradient.Reversed != tc.reversed {
				t.Errorf("gradient = %s reversed=%v, want %s reversed=%v", img.Gradient.Strategy, img.Gradient.Reversed, tc.strategy, tc.reversed)
			}
			if img.Pattern != tc.pattern {
				t.Errorf("pattern = %s, want %s", img.Pattern, tc.pattern)
			}
			pixels := img.Pixels(false)
			if got := hex.EncodeToString(pixels[:3]); got != tc.firstPixel {
				t.Errorf("first pixel = %s, want %s", got, tc.firstPixel)
			}
			sum := sha256.Sum256(pixels)
			if got := hex.EncodeToString(sum[:]); got != tc.pixelSHA256 {
				t.Errorf("pixel sha256 = %s, want %s", got, tc.pixelSHA256)
			}
		})
	}
}
