package util

import (
	"github.com/spf13/pflag"

	"github.com/scrawl-go/scrawl/pkg/config"
	"github.com/scrawl-go/scrawl/pkg/editor"
)

// EditorFlags groups the editor selection flags shared by every scrawl
// subcommand.
type EditorFlags struct {
	Editor    string
	Args      []string
	Extension string
	NoTrim    bool
}

// NewEditorFlags provides an EditorFlags with default values
func NewEditorFlags() *EditorFlags {
	return &EditorFlags{}
}

// AddFlags binds the shared editor flags to the given flag set
func (f *EditorFlags) AddFlags(fl *pflag.FlagSet) {
	fl.StringVarP(&f.Editor, "editor", "e", "", "editor program to use instead of $VISUAL / $EDITOR")
	fl.StringArrayVar(&f.Args, "arg", nil, "extra argument passed to the editor after the file path (repeatable)")
	fl.StringVar(&f.Extension, "ext", "", "file extension for the buffer, used by editors for syntax highlighting")
	fl.BoolVar(&f.NoTrim, "no-trim", false, "keep surrounding whitespace in the captured text")
}

// Configure builds an editor session from the configuration file defaults
// with flag values applied on top.
func (f *EditorFlags) Configure(cfg *config.Config) *editor.Editor {
	e := editor.NewEditor()

	if cfg != nil {
		if cfg.Editor != "" {
			e.Editor(cfg.Editor)
		}
		if len(cfg.Args) > 0 {
			e.Args(cfg.Args...)
		}
		if cfg.Extension != "" {
			e.Extension(cfg.Extension)
		}
		if cfg.Trim != nil {
			e.Trim(*cfg.Trim)
		}
	}

	if f.Editor != "" {
		e.Editor(f.Editor)
	}
	if len(f.Args) > 0 {
		e.Args(f.Args...)
	}
	if f.Extension != "" {
		e.Extension(f.Extension)
	}
	if f.NoTrim {
		e.Trim(false)
	}

	return e
}
