//go:build linux || darwin
// +build linux darwin

package mapfile

import (
	"os"

	"golang.org/x/sys/unix"
)

func (f *File) load(fp *os.File, size int64) error {
	if int64(int(size)) != size {
		return unix.EFBIG
	}
	data, err := unix.Mmap(int(fp.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return err
	}
	f.data = data
	f.unmap = unix.Munmap
	return nil
}
