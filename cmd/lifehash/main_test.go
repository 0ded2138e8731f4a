package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDigest = "4c5c7d8b1a6e0f9e2d3c4b5a69788796a5b4c3d2e1f00112233445566778899a"

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LIFEHASH_CONFIG", "")
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunUnknownCommand(t *testing.T) {
	if _, _, err := runCLI(t, "paint"); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if _, _, err := runCLI(t); err == nil {
		t.Fatal("expected error with no command")
	}
}

func TestHelpListsCommands(t *testing.T) {
	out, _, err := runCLI(t, "help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, c := range commands {
		if !strings.Contains(out, c.name) {
			t.Errorf("usage is missing %q", c.name)
		}
	}
}

func TestCommandHelpIsNotAnError(t *testing.T) {
	for _, c := range commands {
		if _, _, err := runCLI(t, c.name, "--help"); err != nil {
			t.Errorf("%s --help: %v", c.name, err)
		}
	}
}

func TestVersionsTable(t *testing.T) {
	out, _, err := runCLI(t, "versions")
	if err != nil {
		t.Fatalf("versions: %v", err)
	}
	for _, want := range []string{"version1", "version2", "detailed", "fiducial", "grayscale-fiducial", "32x32"} {
		if !strings.Contains(out, want) {
			t.Errorf("versions output missing %q:\n%s", want, out)
		}
	}
}

func TestImageWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fp.png")
	if _, _, err := runCLI(t, "image", "--version", "detailed", "-m", "3", "-o", path, testDigest); err != nil {
		t.Fatalf("image: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// detailed renders 64x64 cells at module 3.
	if b := img.Bounds(); b.Dx() != 192 || b.Dy() != 192 {
		t.Fatalf("bounds = %v, want 192x192", b)
	}
}

func TestImageToStdout(t *testing.T) {
	out, _, err := runCLI(t, "image", "hello")
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if !strings.HasPrefix(out, "\x89PNG") {
		t.Fatalf("stdout does not hold a PNG stream")
	}
}

func TestImageRejectsBadFlags(t *testing.T) {
	if _, _, err := runCLI(t, "image", "--version", "version9", "hello"); err == nil {
		t.Error("expected error for unknown version")
	}
	if _, _, err := runCLI(t, "image", "-i", "hex", "not-hex"); err == nil {
		t.Error("expected error for malformed hex input")
	}
	if _, _, err := runCLI(t, "image"); err == nil {
		t.Error("expected usage error without INPUT")
	}
}

func TestVersionFlagHasNoShorthand(t *testing.T) {
	for _, c := range []string{"image", "show", "describe"} {
		if _, _, err := runCLI(t, c, "-v", "detailed", "hello"); err == nil {
			t.Errorf("%s accepted -v as a version flag", c)
		}
	}
}

func TestShowPlain(t *testing.T) {
	out, _, err := runCLI(t, "show", "--color", "none", "--version", "version1", testDigest)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 32 pixel rows fold into 16 text rows.
	if len(lines) != 16 {
		t.Fatalf("got %d rows, want 16", len(lines))
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("plain output carries escape sequences")
	}
}

func TestShowUnknownColorMode(t *testing.T) {
	if _, _, err := runCLI(t, "show", "--color", "sepia", "hello"); err == nil {
		t.Fatal("expected error for unknown color mode")
	}
}

func TestDescribe(t *testing.T) {
	out, _, err := runCLI(t, "describe", "--version", "fiducial", testDigest)
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	for _, want := range []string{testDigest, testDigest[:7], "fiducial", "anchors", "#"} {
		if !strings.Contains(out, want) {
			t.Errorf("describe output missing %q:\n%s", want, out)
		}
	}
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "inputs.txt")
	content := "# fingerprints\nalice\n\nbob\n" + testDigest + "\n"
	if err := os.WriteFile(list, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	out, _, err := runCLI(t, "batch", "-j", "2", "-o", outDir, "-f", "bmp", list)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if !strings.Contains(out, "3 written, 0 failed") {
		t.Fatalf("summary = %q", out)
	}
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d files, want 3", len(entries))
	}
	want := testDigest[:16] + "-version2.bmp"
	if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
		t.Fatalf("missing %s: %v", want, err)
	}
}

func TestBatchKeepGoing(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "inputs.txt")
	if err := os.WriteFile(list, []byte("zz\nalice\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	if _, _, err := runCLI(t, "batch", "-i", "hex", "-o", outDir, list); err == nil {
		t.Fatal("expected failure on malformed hex line")
	}
	out, _, err := runCLI(t, "batch", "-k", "-i", "hex", "-o", outDir, list)
	if err != nil {
		t.Fatalf("batch -k: %v", err)
	}
	if !strings.Contains(out, "0 written, 2 failed") {
		t.Fatalf("summary = %q", out)
	}
}

func TestBatchRequiresOutDir(t *testing.T) {
	if _, _, err := runCLI(t, "batch"); err == nil {
		t.Fatal("expected error without --out-dir")
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lifehash.yaml")
	cfg := "version: version1\nmodule_size: 2\ncache:\n  dir: " + filepath.Join(dir, "store") + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "fp.png")
	if _, _, err := runCLI(t, "image", "--config", cfgPath, "-m", "1", "-o", path, testDigest); err != nil {
		t.Fatalf("image: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// version1 from the file, module 1 from the flag.
	if b := img.Bounds(); b.Dx() != 32 {
		t.Fatalf("width = %d, want 32", b.Dx())
	}
	if _, err := os.Stat(filepath.Join(dir, "store", "version1")); err != nil {
		t.Fatalf("store directory not populated: %v", err)
	}
}
