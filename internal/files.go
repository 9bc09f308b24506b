package internal

import (
	"io"
	"os"
	"path/filepath"
)

// FileOpen is os.Open with an IOError in place of the error.
func FileOpen(name string) *os.File {
	file, err := os.Open(name)
	if err != nil {
		IOErrorf("cannot open %v: %v", name, err)
	}
	return file
}

// FileCreate is os.Create with an IOError in place of the error.
func FileCreate(name string) *os.File {
	file, err := os.Create(name)
	if err != nil {
		IOErrorf("cannot create %v: %v", name, err)
	}
	return file
}

// Close closes a file and raises an IOError on failure.
func Close(file io.Closer) {
	if err := file.Close(); err != nil {
		IOErrorf("close: %v", err)
	}
}

// MkdirAll is os.MkdirAll with an IOError in place of the error.
func MkdirAll(path string, perm os.FileMode) {
	if err := os.MkdirAll(path, perm); err != nil {
		IOErrorf("cannot create directory %v: %v", path, err)
	}
}

// FullPathname makes filename absolute against the working directory.
func FullPathname(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	wd, err := os.Getwd()
	if err != nil {
		IOErrorf("cannot determine working directory: %v", err)
	}
	return filepath.Join(wd, filename)
}
