// Package editor opens a buffer in the user's preferred text editor, waits
// for the editor to exit and captures what the user saved.
package editor

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const defaultExtension = ".txt"

// Editor configures a single editing session. The zero value is not usable,
// use NewEditor. Builder methods return the receiver so calls can be
// chained; Edit runs the session.
type Editor struct {
	program      string
	args         []string
	extension    string
	trim         bool
	contents     []byte
	hasContents  bool
	file         string
	editDirectly bool
}

// NewEditor returns an Editor with the default configuration: no explicit
// program (resolution falls back to $VISUAL, $EDITOR and common editors), a
// .txt buffer and trimming enabled.
func NewEditor() *Editor {
	return &Editor{
		extension: defaultExtension,
		trim:      true,
	}
}

// Editor sets the program to invoke. When set it is used exclusively, with
// no fallback to environment variables or common editors.
func (e *Editor) Editor(program string) *Editor {
	e.program = program
	return e
}

// Args appends extra arguments passed to the editor after the buffer path.
func (e *Editor) Args(args ...string) *Editor {
	e.args = append(e.args, args...)
	return e
}

// Extension sets the file extension of the temporary buffer. Editors use it
// to pick syntax highlighting. The leading dot is optional.
func (e *Editor) Extension(ext string) *Editor {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	e.extension = ext
	return e
}

// Trim controls whether surrounding whitespace is stripped from the
// captured text. Enabled by default.
func (e *Editor) Trim(trim bool) *Editor {
	e.trim = trim
	return e
}

// Contents seeds the buffer with the given text before the editor opens.
func (e *Editor) Contents(contents string) *Editor {
	return e.ContentsBytes([]byte(contents))
}

// ContentsBytes seeds the buffer with the given bytes before the editor
// opens.
func (e *Editor) ContentsBytes(b []byte) *Editor {
	e.contents = b
	e.hasContents = true
	return e
}

// File sets the file the session works with. By default its contents are
// copied into the temporary buffer and the file itself is left untouched;
// with EditDirectly(true) the editor opens the file itself.
func (e *Editor) File(path string) *Editor {
	e.file = path
	return e
}

// EditDirectly makes the session open the configured File in place instead
// of a disposable copy. No temporary file is created and nothing is deleted
// afterwards.
func (e *Editor) EditDirectly(edit bool) *Editor {
	e.editDirectly = edit
	return e
}

// Edit runs the session: establish the buffer, block until the editor
// exits, read back the result. Temporary buffers are removed on every
// return path; a file opened with EditDirectly is never deleted.
func (e *Editor) Edit() (string, error) {
	buffer, cleanup, err := e.establishBuffer()
	if err != nil {
		return "", err
	}
	defer cleanup()

	if err := e.launch(buffer); err != nil {
		return "", err
	}

	return e.capture(buffer)
}

func (e *Editor) capture(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCapture, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: buffer is not valid UTF-8", ErrCapture)
	}

	s := string(b)
	if e.trim {
		s = strings.TrimSpace(s)
	}
	return s, nil
}

// New opens an empty buffer in the user's editor and returns the text the
// user wrote.
func New() (string, error) {
	return NewEditor().Edit()
}

// With opens a buffer seeded with contents and returns the edited text.
func With(contents string) (string, error) {
	return NewEditor().Contents(contents).Edit()
}

// Open opens a buffer seeded with a copy of the file at path and returns
// the edited text. The original file is not modified.
func Open(path string) (string, error) {
	return NewEditor().File(path).Edit()
}

// Edit opens the file at path directly in the user's editor and returns its
// contents after the editor exits. The file's saved changes persist on
// disk.
func Edit(path string) (string, error) {
	return NewEditor().File(path).EditDirectly(true).Edit()
}
