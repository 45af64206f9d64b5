package bplang

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bp/faults"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "hi.bp")
	if err := os.WriteFile(path, []byte("  ={'h'} .{'c'}  \n\t={'i'}.{'c'}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if src.Content != "={'h'} .{'c'}={'i'}.{'c'}" {
		t.Fatalf("got %q", src.Content)
	}
	if src.Name != path {
		t.Fatal()
	}

	_, err = LoadFile(filepath.Join(dir, "missing.bp"))
	if !faults.Is(err, faults.KindIO) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "File missing.bp does not exist." {
		t.Fatalf("got %v", err)
	}

	txt := filepath.Join(dir, "prog.txt")
	if err := os.WriteFile(txt, []byte("+"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(txt)
	if err == nil || err.Error() != "Unsupported extension, expected bp but found txt" {
		t.Fatalf("got %v", err)
	}
}

func TestReadSourceBOM(t *testing.T) {
	// UTF-16LE with BOM
	utf16 := []byte{0xff, 0xfe, '+', 0, '\n', 0, '.', 0}
	src, err := ReadSource("a.bp", strings.NewReader(string(utf16)))
	if err != nil {
		t.Fatal(err)
	}
	if src.Content != "+." {
		t.Fatalf("got %q", src.Content)
	}

	utf8 := "\xef\xbb\xbf+{1}"
	src, err = ReadSource("b.bp", strings.NewReader(utf8))
	if err != nil {
		t.Fatal(err)
	}
	if src.Content != "+{1}" {
		t.Fatalf("got %q", src.Content)
	}
}
