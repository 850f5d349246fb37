package editor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// candidates returns the editor programs to try, in order. An explicit
// program is used exclusively; otherwise $VISUAL and $EDITOR come first,
// followed by common editors.
func (e *Editor) candidates() []string {
	if e.program != "" {
		return []string{e.program}
	}

	programs := make([]string, 0, 3)
	if p := os.Getenv("VISUAL"); p != "" {
		programs = append(programs, p)
	}
	if p := os.Getenv("EDITOR"); p != "" {
		programs = append(programs, p)
	}
	return append(programs, guessList()...)
}

func guessList() []string {
	if runtime.GOOS == "windows" {
		return []string{"notepad.exe"}
	}
	return []string{"vim", "neovim", "nvim", "nano", "emacs", "mcedit", "tilde", "micro", "helix", "ne", "vi"}
}

// command builds the invocation for a candidate editor, or reports that the
// candidate cannot be launched. $VISUAL/$EDITOR values may carry their own
// arguments or shell syntax; those are run through the shell so quoting is
// handled for us.
func command(candidate, path string, extra []string) (*exec.Cmd, bool) {
	if exe, err := exec.LookPath(candidate); err == nil {
		return exec.Command(exe, append([]string{path}, extra...)...), true
	}

	if strings.ContainsAny(candidate, " \t") {
		// sh -c 'EDITOR "$@"' -- <path> <extra>...
		args := append([]string{"-c", candidate + ` "$@"`, "--", path}, extra...)
		return exec.Command("sh", args...), true
	}

	return nil, false
}

// launch opens the buffer in the first launchable candidate and blocks
// until the editor exits. A started editor that exits with an error does
// not fall through to the next candidate.
func (e *Editor) launch(path string) error {
	for _, candidate := range e.candidates() {
		cmd, ok := command(candidate, path, e.args)
		if !ok {
			continue
		}

		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrEditorFailed, candidate, err)
		}
		return nil
	}

	if e.program != "" {
		return fmt.Errorf("%w: %s", ErrEditorNotFound, e.program)
	}
	return ErrEditorNotFound
}
