package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rcarmo/go-rfind/pkg/applets/find"
	"github.com/rcarmo/go-rfind/pkg/core"
	"github.com/rcarmo/go-rfind/pkg/sandbox"
)

// sandboxEnv lists the only directories the search may read, separated by
// the platform list separator.
const sandboxEnv = "RFIND_SANDBOX"

func main() {
	stdio := core.DefaultStdio()
	os.Exit(execute(stdio, os.Args))
}

// newRootCommand wires the applet into cobra. Flag parsing is disabled so
// every token reaches the argument classifier untouched.
func newRootCommand(stdio *core.Stdio, name string, code *int) *cobra.Command {
	return &cobra.Command{
		Use:                "find [options] [path...] [expressions...]",
		Short:              "Search for files whose names match regular expressions",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Run: func(cmd *cobra.Command, args []string) {
			*code = find.RunNamed(stdio, name, args)
		},
	}
}

func execute(stdio *core.Stdio, argv []string) int {
	if list := os.Getenv(sandboxEnv); list != "" {
		if err := sandbox.Init(sandbox.ConfigFromList(list)); err != nil {
			return core.Fatal(stdio, "find", err)
		}
	}

	name := "find"
	args := []string{}
	if len(argv) > 0 {
		name = argv[0]
		args = argv[1:]
	}

	// cobra routes its hidden shell-completion commands before Run, so a
	// pattern spelled like one must skip command lookup.
	if hasCompletionRequest(args) {
		return find.RunNamed(stdio, name, args)
	}

	code := core.ExitSuccess
	cmd := newRootCommand(stdio, name, &code)
	cmd.SetArgs(args)
	cmd.SetOut(stdio.Out)
	cmd.SetErr(stdio.Err)
	if err := cmd.Execute(); err != nil {
		return core.Fatal(stdio, "find", err)
	}
	return code
}

func hasCompletionRequest(args []string) bool {
	for _, arg := range args {
		if arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd {
			return true
		}
	}
	return false
}
