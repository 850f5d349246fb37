package editor

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubEditor writes a shell script to act as the editor under test. The
// script receives the buffer path as $1.
func stubEditor(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub editors are shell scripts")
	}

	path := filepath.Join(t.TempDir(), "stub-editor")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

// tempBuffers lists the buffer files currently present in the session temp
// directory.
func tempBuffers(t *testing.T) map[string]bool {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(os.TempDir(), tempDirName))
	if errors.Is(err, os.ErrNotExist) {
		return map[string]bool{}
	}
	require.NoError(t, err)

	names := make(map[string]bool, len(entries))
	for _, entry := range entries {
		names[entry.Name()] = true
	}
	return names
}

func TestWithSeededContents(t *testing.T) {
	require := require.New(t)
	stub := stubEditor(t, "exit 0")

	out, err := NewEditor().Editor(stub).Contents("  hello world\n").Edit()
	require.NoError(err)
	require.Equal("hello world", out)
}

func TestTrimDisabled(t *testing.T) {
	require := require.New(t)
	stub := stubEditor(t, "exit 0")

	out, err := NewEditor().Editor(stub).Trim(false).Contents("  hello world\n").Edit()
	require.NoError(err)
	require.Equal("  hello world\n", out)
}

func TestOpenLeavesSourceUntouched(t *testing.T) {
	require := require.New(t)
	stub := stubEditor(t, `printf 'edited' > "$1"`)

	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(os.WriteFile(src, []byte("original"), 0o644))

	out, err := NewEditor().Editor(stub).File(src).Edit()
	require.NoError(err)
	require.Equal("edited", out)

	onDisk, err := os.ReadFile(src)
	require.NoError(err)
	require.Equal("original", string(onDisk))
}

func TestEditDirectlyPersistsChanges(t *testing.T) {
	require := require.New(t)
	stub := stubEditor(t, `printf 'version 2' > "$1"`)

	target := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(os.WriteFile(target, []byte("version 1"), 0o644))

	before := tempBuffers(t)

	out, err := NewEditor().Editor(stub).File(target).EditDirectly(true).Edit()
	require.NoError(err)
	require.Equal("version 2", out)

	onDisk, err := os.ReadFile(target)
	require.NoError(err)
	require.Equal("version 2", string(onDisk))

	// direct edits never create a temporary buffer
	require.Equal(before, tempBuffers(t))
}

func TestTempBufferCleanedUpOnSuccess(t *testing.T) {
	require := require.New(t)
	recorded := filepath.Join(t.TempDir(), "buffer-path")
	stub := stubEditor(t, `printf '%s' "$1" > `+recorded)

	_, err := NewEditor().Editor(stub).Contents("secret").Edit()
	require.NoError(err)

	bufferPath, err := os.ReadFile(recorded)
	require.NoError(err)
	require.Contains(string(bufferPath), filepath.Join(os.TempDir(), tempDirName))

	_, err = os.Stat(string(bufferPath))
	require.ErrorIs(err, os.ErrNotExist)
}

func TestTempBufferCleanedUpOnEditorFailure(t *testing.T) {
	require := require.New(t)
	recorded := filepath.Join(t.TempDir(), "buffer-path")
	stub := stubEditor(t, `printf '%s' "$1" > `+recorded+"\nexit 1")

	_, err := NewEditor().Editor(stub).Contents("secret").Edit()
	require.ErrorIs(err, ErrEditorFailed)

	bufferPath, err := os.ReadFile(recorded)
	require.NoError(err)
	_, err = os.Stat(string(bufferPath))
	require.ErrorIs(err, os.ErrNotExist)
}

func TestEditorFailureDoesNotCapture(t *testing.T) {
	require := require.New(t)
	stub := stubEditor(t, `printf 'should not be read' > "$1"`+"\nexit 3")

	out, err := NewEditor().Editor(stub).Edit()
	require.ErrorIs(err, ErrEditorFailed)
	require.Empty(out)
}

func TestExplicitEditorHasNoFallback(t *testing.T) {
	require := require.New(t)
	stub := stubEditor(t, "exit 0")
	t.Setenv("EDITOR", stub)

	_, err := NewEditor().Editor(filepath.Join(t.TempDir(), "no-such-editor")).Contents("x").Edit()
	require.ErrorIs(err, ErrEditorNotFound)
}

func TestEditorNotFoundLeavesNoBuffer(t *testing.T) {
	require := require.New(t)
	if runtime.GOOS == "windows" {
		t.Skip("relies on emptying PATH for shell lookups")
	}
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	t.Setenv("PATH", t.TempDir())

	before := tempBuffers(t)

	_, err := NewEditor().Contents("secret").Edit()
	require.ErrorIs(err, ErrEditorNotFound)
	require.Equal(before, tempBuffers(t))
}

func TestNonUTF8BufferFailsCapture(t *testing.T) {
	require := require.New(t)
	stub := stubEditor(t, `printf '\377\376\375' > "$1"`)

	_, err := NewEditor().Editor(stub).Edit()
	require.ErrorIs(err, ErrCapture)
}

func TestEnvironmentResolutionOrder(t *testing.T) {
	require := require.New(t)
	visual := stubEditor(t, `printf 'from visual' > "$1"`)
	editor := stubEditor(t, `printf 'from editor' > "$1"`)

	t.Setenv("VISUAL", visual)
	t.Setenv("EDITOR", editor)

	out, err := New()
	require.NoError(err)
	require.Equal("from visual", out)

	t.Setenv("VISUAL", "")
	out, err = New()
	require.NoError(err)
	require.Equal("from editor", out)
}

func TestExtraArgsFollowBufferPath(t *testing.T) {
	require := require.New(t)
	recorded := filepath.Join(t.TempDir(), "argv")
	stub := stubEditor(t, `printf '%s\n' "$@" > `+recorded)

	_, err := NewEditor().Editor(stub).Args("-n", "--clean").Edit()
	require.NoError(err)

	argv, err := os.ReadFile(recorded)
	require.NoError(err)
	lines := strings.Split(strings.TrimSpace(string(argv)), "\n")
	require.Len(lines, 3)
	require.Contains(lines[0], tempDirName)
	require.Equal("-n", lines[1])
	require.Equal("--clean", lines[2])
}

func TestExtensionAppliedToBuffer(t *testing.T) {
	require := require.New(t)

	for _, ext := range []string{"md", ".md"} {
		path, cleanup, err := NewEditor().Extension(ext).establishBuffer()
		require.NoError(err)
		require.True(strings.HasSuffix(path, ".md"), "path %q should end in .md", path)
		cleanup()
	}
}

func TestDirectEditRequiresFile(t *testing.T) {
	require := require.New(t)

	_, _, err := NewEditor().EditDirectly(true).establishBuffer()
	require.Error(err)

	_, _, err = NewEditor().File("notes.txt").EditDirectly(true).Contents("seed").establishBuffer()
	require.Error(err)
}

func TestConcurrentBuffersAreUnique(t *testing.T) {
	require := require.New(t)

	const n = 25
	var mu sync.Mutex
	paths := make(map[string]bool, n)
	errs := make([]error, 0, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path, cleanup, err := NewEditor().establishBuffer()

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			defer cleanup()
			paths[path] = true
		}()
	}
	wg.Wait()

	require.Empty(errs)
	require.Len(paths, n)
}

func TestSeedCopyFailure(t *testing.T) {
	require := require.New(t)

	before := tempBuffers(t)

	_, _, err := NewEditor().File(filepath.Join(t.TempDir(), "missing.txt")).establishBuffer()
	require.ErrorIs(err, ErrTempfileCopy)
	require.Equal(before, tempBuffers(t))
}

func TestShellCandidateCommand(t *testing.T) {
	require := require.New(t)

	cmd, ok := command("code --wait", "/tmp/buffer.txt", nil)
	require.True(ok)
	require.Equal("sh", filepath.Base(cmd.Path))
	require.Contains(cmd.Args, "/tmp/buffer.txt")

	_, ok = command(filepath.Join(t.TempDir(), "no-such-editor"), "/tmp/buffer.txt", nil)
	require.False(ok)
}
