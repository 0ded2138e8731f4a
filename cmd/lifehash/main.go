// lifehash renders deterministic visual fingerprints of data.
//
// Usage:
//
//	lifehash image    [flags] INPUT     write an image file
//	lifehash show     [flags] INPUT     draw in the terminal
//	lifehash describe [flags] INPUT     report how the fingerprint was built
//	lifehash versions [flags]           list fingerprint versions
//	lifehash batch    [flags] [FILE]    render one image per input line
//
// INPUT is a 64-character hex digest, a UUID, or any other string; see
// --input for forcing an interpretation. Settings come from the YAML file
// named by --config or LIFEHASH_CONFIG, with flags taking precedence.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type command struct {
	name    string
	summary string
	run     func(stdout, stderr io.Writer, args []string) error
}

var commands = []command{
	{"image", "write a fingerprint image file", runImage},
	{"show", "draw a fingerprint in the terminal", runShow},
	{"describe", "report gradient, pattern and generation details", runDescribe},
	{"versions", "list fingerprint versions and their parameters", runVersions},
	{"batch", "render one image per input line using a worker pool", runBatch},
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return fmt.Errorf("no command given")
	}
	switch args[0] {
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(stdout, stderr, args[1:])
		}
	}
	return fmt.Errorf("unknown command %q (run 'lifehash help')", args[0])
}

func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("lifehash renders deterministic visual fingerprints of data.\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "  %-9s %s\n", c.name, c.summary)
	}
	b.WriteString("\nRun 'lifehash COMMAND --help' for command flags.\n")
	io.WriteString(w, b.String())
}
