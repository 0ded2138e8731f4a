package main

import (
	"context"
	"errors"
	"io"
	"os"

	"lifehash/internal/render"

	"github.com/spf13/pflag"
)

func runImage(stdout, stderr io.Writer, args []string) error {
	var o options
	var output string
	fs := pflag.NewFlagSet("image", pflag.ContinueOnError)
	o.addFlags(fs)
	fs.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	rest, err := o.parse(fs, args, stderr)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	arg, err := single(rest, "lifehash image [flags] INPUT")
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
	pixels := render.Fingerprint(img, o.cfg.ModuleSize)

	if output == "" {
		if f, ok := stdout.(*os.File); ok && render.IsTerminal(f) {
			return errors.New("refusing to write binary image data to a terminal; use --output or redirect stdout")
		}
		return render.Encode(stdout, pixels, o.imgFmt)
	}

	if err := render.WriteFile(output, pixels, o.imgFmt); err != nil {
		return err
	}
	o.logger.Info("wrote fingerprint",
		"path", output,
		"digest", fp.Identifier(0),
		"version", o.ver.String(),
		"generations", img.Generations,
	)
	return nil
}
