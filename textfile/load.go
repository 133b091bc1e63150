package textfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrNotText is flagged for files which do not contain valid UTF-8 text.
var ErrNotText = errors.New("textfile: file is not valid UTF-8 text")

// MaxSize is the maximum size of a file to load, in bytes. Context trees
// scan their input once per node, so inputs are expected to be moderate.
const MaxSize = 1048576

// Load reads a file, which must be a text file, and returns its content.
// If chomp is set, a single trailing line ending ("\n" or "\r\n") is dropped.
func Load(name string, chomp bool) (string, error) {
	file, info, err := openFile(name)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if info.Size() > MaxSize {
		return "", fmt.Errorf("textfile: %s has %d bytes, limit is %d", name, info.Size(), MaxSize)
	}
	return Read(file, chomp)
}

// Read reads all text from r, with the same semantics as Load.
func Read(r io.Reader, chomp bool) (string, error) {
	buf, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("textfile: error loading text: %w", err)
	}
	if len(buf) > MaxSize {
		return "", fmt.Errorf("textfile: input exceeds %d bytes", MaxSize)
	}
	if !utf8.Valid(buf) {
		return "", ErrNotText
	}
	text := string(buf)
	if chomp {
		if strings.HasSuffix(text, "\r\n") {
			text = text[:len(text)-2]
		} else {
			text = strings.TrimSuffix(text, "\n")
		}
	}
	tracer().Debugf("loaded %d bytes of text", len(text))
	return text, nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*os.File, os.FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, nil, err
	}
	return file, fi, nil
}
