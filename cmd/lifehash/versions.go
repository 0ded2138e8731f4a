package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"lifehash/internal/fingerprint"

	"github.com/spf13/pflag"
)

func runVersions(stdout, stderr io.Writer, args []string) error {
	var verbose bool
	fs := pflag.NewFlagSet("versions", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&verbose, "verbose", false, "print every parameter of every version")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if verbose {
		for _, v := range fingerprint.Versions() {
			cfg, _ := v.Config()
			fmt.Fprintf(stdout, "%s\n", v)
			writeSnapshot(stdout, cfg.Parameters())
			fmt.Fprintln(stdout)
		}
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tBOARD\tGENERATIONS\tSEED\tPALETTE\tOUTPUT\tENTROPY")
	for _, v := range fingerprint.Versions() {
		cfg, _ := v.Config()
		out := cfg.OutputSize()
		fmt.Fprintf(tw, "%s\t%dx%d\t%d\t%d+%d\t%s\t%dx%d\t%d bits\n",
			v, cfg.Side, cfg.Side, cfg.MaxGenerations,
			cfg.LeadingRehashes, cfg.SeedBlocks,
			cfg.Palette, out.W, out.H, cfg.EntropyBits())
	}
	return tw.Flush()
}
