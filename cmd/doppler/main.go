// SPDX-License-Identifier: EPL-2.0

// Command doppler renders the Doppler effect of a moving source into a WAV
// file or serves it through the interactive viewer.
//
//	doppler render [flags] <input.{wav|mp3|ogg|aiff}> <output.wav>
//	doppler serve [flags] <input>
//	doppler version
//
// Every flag can also be set through a DOPPLER_* environment variable; flags
// win.
package main

import (
	"fmt"
	"io"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

type env func(string) (string, bool)

func run(args []string, stdout, stderr io.Writer, lookup env) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "render":
		err = renderCmd(args[1:], stdout, stderr, lookup)
	case "serve":
		err = serveCmd(args[1:], stderr, lookup)
	case "version":
		fmt.Fprintln(stdout, "doppler", version)
		return 0
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		usage(stderr)
		return 2
	}

	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage:
  doppler render [flags] <input.{wav|mp3|ogg|aiff}> <output.wav>
  doppler serve [flags] <input>
  doppler version

Run "doppler render -h" for the flag list.
`)
}
