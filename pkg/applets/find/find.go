// Package find implements a regex file-name search over directory trees.
//
// Tokens on the command line are classified at runtime: dash-prefixed tokens
// are options, tokens naming an existing file or directory are roots, and
// everything else is compiled as a regular expression matched against base
// file names.
package find

import (
	"github.com/rcarmo/go-rfind/pkg/core"
	corefs "github.com/rcarmo/go-rfind/pkg/core/fs"
)

const appletName = "find"

// Version is printed by -V/--version.
const Version = appletName + " 0.1.0"

// Run executes the find command with the given arguments.
func Run(stdio *core.Stdio, args []string) int {
	return RunNamed(stdio, appletName, args)
}

// RunNamed is Run with the program name shown in the usage text.
func RunNamed(stdio *core.Stdio, name string, args []string) int {
	return run(stdio, corefs.Host{}, name, args)
}

func run(stdio *core.Stdio, fsys FS, name string, args []string) int {
	parsed, err := Classify(fsys, args)
	if err != nil {
		return core.Fatal(stdio, appletName, err)
	}
	if parsed.Options.Help {
		usage(stdio, name)
		return core.ExitSuccess
	}
	if parsed.Options.Version {
		stdio.Println(Version)
		return core.ExitSuccess
	}

	tracer := NewTracer(stdio.Out, parsed.Options.Verbose)
	finder := NewFinder(fsys, parsed.Options, parsed.Matchers, tracer)
	matches, err := finder.Find(parsed.Paths)
	if err != nil {
		return core.Fatal(stdio, appletName, err)
	}
	Report(stdio.Out, matches)
	return core.ExitSuccess
}

func usage(stdio *core.Stdio, name string) {
	stdio.Printf("Usage: %s [options] [path...] [expressions...]\n", name)
	stdio.Println("Options:")
	stdio.Println("\t-v, --verbose\t\t\tVerbose output")
	stdio.Println("\t-V, --version\t\t\tPrint version information and exit")
	stdio.Println("\t-r, --recursive\t\t\tSearch recursively")
	stdio.Println("\t-h, --help\t\t\tPrint help information and exit")
	stdio.Println("Paths:")
	stdio.Println("\tPath\t\t\t\tSearch for files in the path, default to current directory")
	stdio.Println("Expressions:")
	stdio.Println("\tRegex\t\t\t\tSearch for files matching the regex, should be quoted")
	stdio.Println("Examples:")
	stdio.Printf("\t%s -r . ~/ \"\\.(rs|toml)$\"\n", name)
}
