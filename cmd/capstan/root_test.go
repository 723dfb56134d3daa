package capstan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/songstitch/capstan/pkg/dockerfile"
)

func TestParseFileStripsByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Dockerfile")
	content := append([]byte{0xEF, 0xBB, 0xBF}, "FROM ubuntu\nRUN apt-get update\n"...)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := parseFile(path)
	if err != nil {
		t.Fatalf("Expected no error but got %v", err)
	}
	expected := []dockerfile.Instruction{
		dockerfile.From{Image: "ubuntu"},
		dockerfile.Run{Command: "apt-get update"},
	}
	if !reflect.DeepEqual(doc.Instructions, expected) {
		t.Errorf("Expected %v but got %v", expected, doc.Instructions)
	}
}

func TestParseFileWithoutByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Dockerfile")
	if err := os.WriteFile(path, []byte("FROM alpine\n"), 0600); err != nil {
		t.Fatal(err)
	}

	doc, err := parseFile(path)
	if err != nil {
		t.Fatalf("Expected no error but got %v", err)
	}
	if len(doc.Instructions) != 1 || doc.Instructions[0] != (dockerfile.From{Image: "alpine"}) {
		t.Errorf("Expected a single FROM instruction but got %v", doc.Instructions)
	}
}
