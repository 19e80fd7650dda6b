//go:build !linux && !darwin
// +build !linux,!darwin

package mapfile

import (
	"io"
	"os"
)

func (f *File) load(fp *os.File, size int64) error {
	data := make([]byte, size)
	if _, err := io.ReadFull(fp, data); err != nil {
		return err
	}
	f.data = data
	return nil
}
