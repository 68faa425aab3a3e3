//go:build !unix

package main

import "os"

// readFile falls back to a plain read on platforms without the unix
// mmap syscalls (see readfile_unix.go).
func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
