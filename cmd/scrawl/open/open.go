package open

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/scrawl-go/scrawl/pkg/config"
	"github.com/scrawl-go/scrawl/pkg/util"
)

var (
	openExample = `
	# edit a copy of the file and print the result, the file itself stays as it was
	%[1]s open notes.txt
`
	errNoFile = fmt.Errorf("no file given to open")
)

type options struct {
	util.IOStreams
	editorFlags *util.EditorFlags
	path        string
}

func newOptions(streams util.IOStreams) *options {
	return &options{
		editorFlags: util.NewEditorFlags(),
		IOStreams:   streams,
	}
}

// NewCmd provides a cobra command wrapping open options
func NewCmd(streams util.IOStreams) *cobra.Command {
	o := newOptions(streams)

	cmd := &cobra.Command{
		Use:           "open [file] [flags]",
		Short:         "edit a copy of a file and print the result",
		Example:       fmt.Sprintf(openExample, "scrawl"),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Complete(c, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			if err := o.Run(); err != nil {
				return err
			}

			return nil
		},
	}

	o.editorFlags.AddFlags(cmd.Flags())
	return cmd
}

// Complete parses the arguments and necessary flags to options
func (c *options) Complete(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errNoFile
	}

	c.path = args[0]
	return nil
}

// Validate ensures that all required arguments and flag values are provided
func (c *options) Validate() error {
	if _, err := os.Stat(c.path); err != nil {
		return err
	}
	if !util.IsInteractive(c.In) {
		return fmt.Errorf("stdin is not a terminal, cannot open an interactive editor")
	}
	return nil
}

// Run edits a temporary copy of the file and prints the captured text
func (c *options) Run() error {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printf("Failed to load configuration: %v\n", err)
		return err
	}

	text, err := c.editorFlags.Configure(cfg).File(c.path).Edit()
	if err != nil {
		pterm.Error.Printf("Editing failed: %v\n", err)
		return err
	}

	fmt.Fprintln(c.Out, text)
	return nil
}
