package bplang

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/bp/faults"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const FileExt = ".bp"

// LoadFile reads a .bp program. Lines are trimmed and joined without
// separators, so a program may be split freely across lines.
func LoadFile(path string) (*Source, error) {
	name := filepath.Base(path)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, faults.New(faults.KindIO, "File %s does not exist.", name)
	}
	if err != nil {
		return nil, faults.Wrap(faults.KindIO, err, "Error attempting to open file %s", name)
	}
	defer f.Close()

	if ext := filepath.Ext(path); ext != FileExt {
		return nil, faults.New(faults.KindIO,
			"Unsupported extension, expected %s but found %s",
			strings.TrimPrefix(FileExt, "."), strings.TrimPrefix(ext, "."),
		)
	}

	return ReadSource(path, f)
}

// ReadSource decodes r, honouring a UTF-8 or UTF-16 byte order mark.
func ReadSource(name string, r io.Reader) (*Source, error) {
	reader := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var sb strings.Builder
	for scanner.Scan() {
		sb.WriteString(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, faults.Wrap(faults.KindIO, err, "Error attempting to read %s", filepath.Base(name))
	}
	return NewSource(name, sb.String()), nil
}
