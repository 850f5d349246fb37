package compose

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/scrawl-go/scrawl/pkg/config"
	"github.com/scrawl-go/scrawl/pkg/util"
)

var (
	composeExample = `
	# open an empty buffer in your editor and print what you wrote
	%[1]s compose

	# seed the buffer from a file, leave the file untouched
	%[1]s compose --from notes.txt

	# markdown highlighting in the editor
	%[1]s compose --ext md
`
	errNotInteractive = fmt.Errorf("stdin is not a terminal, cannot open an interactive editor")
)

type options struct {
	util.IOStreams
	editorFlags *util.EditorFlags
	fromFile    string
}

func newOptions(streams util.IOStreams) *options {
	return &options{
		editorFlags: util.NewEditorFlags(),
		IOStreams:   streams,
	}
}

// NewCmd provides a cobra command wrapping compose options
func NewCmd(streams util.IOStreams) *cobra.Command {
	o := newOptions(streams)

	cmd := &cobra.Command{
		Use:           "compose [flags]",
		Short:         "write text in your editor and print it",
		Example:       fmt.Sprintf(composeExample, "scrawl"),
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

	fl := cmd.Flags()
	fl.StringVarP(&o.fromFile, "from", "f", "", "seed the buffer with a copy of this file")
	o.editorFlags.AddFlags(fl)
	return cmd
}

// Complete parses the arguments and necessary flags to options
func (c *options) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

// Validate ensures that all required arguments and flag values are provided
func (c *options) Validate() error {
	if !util.IsInteractive(c.In) {
		return errNotInteractive
	}
	return nil
}

// Run opens the buffer in the editor and prints the captured text
func (c *options) Run() error {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printf("Failed to load configuration: %v\n", err)
		return err
	}

	e := c.editorFlags.Configure(cfg)
	if c.fromFile != "" {
		e.File(c.fromFile)
	}

	text, err := e.Edit()
	if err != nil {
		pterm.Error.Printf("Editing failed: %v\n", err)
		return err
	}

	fmt.Fprintln(c.Out, text)
	return nil
}
