// Package mapfile gives read-only access to the contents of a file, memory
// mapped where the platform supports it and read into memory otherwise.
package mapfile

import (
	"bytes"
	"errors"
	"os"
)

var errClosed = errors.New("mapfile: file already closed")

// A File is the read-only contents of a file. The data is valid until Close.
type File struct {
	name   string
	data   []byte
	unmap  func([]byte) error
	closed bool
}

// Open maps the named file.
func Open(name string) (*File, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	st, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if !st.Mode().IsRegular() {
		return nil, &os.PathError{Op: "mmap", Path: name, Err: errors.New("not a regular file")}
	}
	f := &File{name: name}
	if st.Size() == 0 {
		return f, nil
	}
	if err := f.load(fp, st.Size()); err != nil {
		return nil, &os.PathError{Op: "mmap", Path: name, Err: err}
	}
	return f, nil
}

// Name returns the name the file was opened with.
func (f *File) Name() string { return f.name }

// Len returns the size of the file.
func (f *File) Len() int { return len(f.data) }

// Bytes returns the file contents. The slice must not be modified or used
// after Close.
func (f *File) Bytes() []byte { return f.data }

// Reader returns a new reader over the file contents.
func (f *File) Reader() *bytes.Reader { return bytes.NewReader(f.data) }

// Close releases the mapping.
func (f *File) Close() error {
	if f.closed {
		return errClosed
	}
	f.closed = true
	data := f.data
	f.data = nil
	if f.unmap == nil || data == nil {
		return nil
	}
	return f.unmap(data)
}
