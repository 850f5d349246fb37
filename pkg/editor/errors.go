package editor

import "errors"

var (
	// ErrEditorNotFound is returned when no usable editor program could be
	// resolved, either because the explicit override does not exist or
	// because none of the $VISUAL/$EDITOR/guess-list candidates are
	// installed.
	ErrEditorNotFound = errors.New("no text editor found")

	// ErrTempfile is returned when the buffer file or its directory could
	// not be created.
	ErrTempfile = errors.New("could not create a temporary file to serve as a buffer")

	// ErrTempfileCopy is returned when seeding the buffer from a source
	// file failed.
	ErrTempfileCopy = errors.New("could not copy contents to the buffer")

	// ErrEditorFailed is returned when the editor process could not be
	// started or exited with an error. The buffer is not read in that case.
	ErrEditorFailed = errors.New("editor failed or was terminated with errors")

	// ErrCapture is returned when the buffer could not be read back, or its
	// contents were not valid UTF-8.
	ErrCapture = errors.New("could not capture editor input")
)
