package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"lifehash/internal/render"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

func runShow(stdout, stderr io.Writer, args []string) error {
	var o options
	var colorMode string
	fs := pflag.NewFlagSet("show", pflag.ContinueOnError)
	o.addFlags(fs)
	fs.StringVar(&colorMode, "color", "auto", "color output: auto, truecolor, 256, 16 or none")
	rest, err := o.parse(fs, args, stderr)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	arg, err := single(rest, "lifehash show [flags] INPUT")
	if err != nil {
		return err
	}
	profile, err := colorProfile(colorMode, stdout)
	if err != nil {
		return err
	}
	fp, err := o.resolve(arg)
	if err != nil {
		return err
	}
	c, err := o.newCache()
	if err != nil {
		return err
	}
	img, err := c.Get(context.Background(), fp.Digest, o.ver)
	if err != nil {
		return err
	}
	return render.WriteANSI(stdout, img.Colors, profile)
}

func colorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case "auto":
		return termenv.NewOutput(w).Profile, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "256", "ansi256":
		return termenv.ANSI256, nil
	case "16", "ansi":
		return termenv.ANSI, nil
	case "none", "ascii":
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color mode: %q", mode)
	}
}
