package editor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

const tempDirName = "scrawl"

// tempFileCount disambiguates buffers created by concurrent sessions in the
// same process. The process id and a timestamp in the file name handle
// collisions across processes.
var tempFileCount uint64

// establishBuffer returns the path the editor should open and a cleanup
// function. For temporary buffers cleanup deletes the file; for direct
// edits the caller's file is returned as-is and cleanup does nothing.
func (e *Editor) establishBuffer() (string, func(), error) {
	if e.editDirectly {
		if e.file == "" {
			return "", nil, fmt.Errorf("no file configured for direct editing")
		}
		if e.hasContents {
			return "", nil, fmt.Errorf("cannot seed contents when editing a file directly")
		}
		return e.file, func() {}, nil
	}

	dir := filepath.Join(os.TempDir(), tempDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrTempfile, err)
	}

	// e.g. 1674864208_123_17.txt
	name := fmt.Sprintf("%d_%d_%d%s", time.Now().Unix(), os.Getpid(), atomic.AddUint64(&tempFileCount, 1), e.extension)
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrTempfile, err)
	}
	cleanup := func() { os.Remove(path) }

	if err := e.seed(f); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}

	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %v", ErrTempfile, err)
	}

	return path, cleanup, nil
}

func (e *Editor) seed(f *os.File) error {
	switch {
	case e.hasContents:
		if _, err := f.Write(e.contents); err != nil {
			return fmt.Errorf("%w: %v", ErrTempfile, err)
		}
	case e.file != "":
		src, err := os.Open(e.file)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrTempfileCopy, e.file, err)
		}
		defer src.Close()

		if _, err := io.Copy(f, src); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrTempfileCopy, e.file, err)
		}
	}
	return nil
}
