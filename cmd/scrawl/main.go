/*
	scrawl <command> [flags]

	compose				=> open an empty or seeded buffer, print what was written
	open <file>			=> edit a copy of the file, print the result, leave the file alone
	edit <file>			=> edit the file in place, print its saved contents
*/
package main

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/scrawl-go/scrawl/cmd/scrawl/scrawl"
	"github.com/scrawl-go/scrawl/pkg/util"
)

func main() {
	flags := pflag.NewFlagSet("scrawl", pflag.ExitOnError)
	pflag.CommandLine = flags

	root := scrawl.NewCmd(util.StandardStreams())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
