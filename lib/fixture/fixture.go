package fixture

import (
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// digestSuffix is appended to the fixture path for the sidecar digest file.
const digestSuffix = ".xxh64"

// Digest returns the xxhash-64 digest of text as a hex string.
func Digest(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// Save writes text to path and its digest to path + ".xxh64". Returns the
// digest.
func Save(path, text string) (string, error) {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("fixture: writing %s: %w", path, err)
	}
	digest := Digest(text)
	if err := os.WriteFile(path+digestSuffix, []byte(digest+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("fixture: writing digest for %s: %w", path, err)
	}
	return digest, nil
}

// Check compares text against the stored digest for path. It returns
// whether they match along with the stored and computed digests for
// diagnostics.
func Check(path, text string) (ok bool, want, got string, err error) {
	raw, err := os.ReadFile(path + digestSuffix)
	if err != nil {
		return false, "", "", fmt.Errorf("fixture: reading digest for %s: %w", path, err)
	}
	want = strings.TrimSpace(string(raw))
	got = Digest(text)
	return want == got, want, got, nil
}

// Load reads the stored fixture text.
func Load(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("fixture: reading %s: %w", path, err)
	}
	return string(raw), nil
}
