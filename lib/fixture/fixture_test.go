package fixture

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	text := `{"a":[1,2,3],"b":"x"}`

	digest, err := Save(path, text)
	if err != nil {
		t.Fatal(err)
	}
	if len(digest) != 16 {
		t.Errorf("expected 16 hex chars, got %q", digest)
	}

	ok, want, got, err := Check(path, text)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("digest mismatch on identical text: want %s, got %s", want, got)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != text {
		t.Errorf("loaded text differs: %q", loaded)
	}
}

func TestCheckDetectsMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if _, err := Save(path, `{"a":1}`); err != nil {
		t.Fatal(err)
	}

	ok, want, got, err := Check(path, `{"a":2}`)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected mismatch for different text")
	}
	if want == got {
		t.Errorf("digests should differ: %s vs %s", want, got)
	}
}

func TestCheckMissingDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Check(path, "{}"); err == nil {
		t.Error("expected error when digest sidecar is missing")
	}
}

func TestDigestStable(t *testing.T) {
	if Digest("hello") != Digest("hello") {
		t.Error("digest not deterministic")
	}
	if Digest("hello") == Digest("hellp") {
		t.Error("distinct inputs produced equal digests")
	}
}
