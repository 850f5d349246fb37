package scrawl

import (
	"github.com/scrawl-go/scrawl/cmd/scrawl/compose"
	"github.com/scrawl-go/scrawl/cmd/scrawl/edit"
	"github.com/scrawl-go/scrawl/cmd/scrawl/open"
	"github.com/scrawl-go/scrawl/pkg/util"

	"github.com/spf13/cobra"
)

// NewCmd provides the root scrawl command
func NewCmd(streams util.IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrawl [subcommand] [flags]",
		Short: "open your text editor and capture what you write",
	}

	// Add subcommands
	cmd.AddCommand(compose.NewCmd(streams))
	cmd.AddCommand(open.NewCmd(streams))
	cmd.AddCommand(edit.NewCmd(streams))

	return cmd
}
