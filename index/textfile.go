package index

import (
	"bytes"
	"io"
	"os"
)

// sniffSize bounds how much of a file is inspected for the binary check.
const sniffSize = 4096

// IsTextContent reports whether data looks like text. A NUL byte within the
// sniff window marks the content as binary.
func IsTextContent(data []byte) bool {
	if len(data) > sniffSize {
		data = data[:sniffSize]
	}
	return !bytes.ContainsRune(data, 0)
}

// IsTextFile reads a bounded prefix of the file at path and reports whether it
// looks like text. Unreadable files are reported as non-text.
func IsTextFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	return IsTextContent(buf[:n])
}
