package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"lifehash/internal/core"
	"lifehash/internal/render"

	"github.com/spf13/pflag"
)

func runDescribe(stdout, stderr io.Writer, args []string) error {
	var o options
	fs := pflag.NewFlagSet("describe", pflag.ContinueOnError)
	o.addFlags(fs)
	rest, err := o.parse(fs, args, stderr)
	if errors.Is(err, errHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	arg, err := single(rest, "lifehash describe [flags] INPUT")
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

	var b strings.Builder
	fmt.Fprintf(&b, "digest      %s\n", fp)
	fmt.Fprintf(&b, "identifier  %s\n", fp.Identifier(0))
	writeSnapshot(&b, img.Parameters())
	anchors := make([]string, len(img.Gradient.Anchors))
	for i, a := range img.Gradient.Anchors {
		anchors[i] = render.Hex(a)
	}
	fmt.Fprintf(&b, "\nanchors     %s\n", strings.Join(anchors, " "))
	_, err = io.WriteString(stdout, b.String())
	return err
}

func writeSnapshot(w io.Writer, s core.ParameterSnapshot) {
	for _, g := range s.Groups {
		fmt.Fprintf(w, "\n%s\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %-20s %s\n", p.Label, p.Value)
		}
	}
}
