package serialize

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/coopjson/cjson/lib/value"
)

func TestAppendEscapedMatchesEncodingJSON(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"with \"quotes\" and \\backslashes\\",
		"control \n \r \t \b \f chars",
		"low bytes \x00\x01\x1f here",
		"unicode é 🙂 ✓ passthrough",
	}

	for _, in := range inputs {
		got := `"` + string(appendEscaped(nil, in)) + `"`

		var back string
		if err := json.Unmarshal([]byte(got), &back); err != nil {
			t.Fatalf("%q: escaped form does not parse: %v (%s)", in, err, got)
		}
		if back != in {
			t.Errorf("%q: round-trip mismatch, got %q", in, back)
		}
	}
}

// TestChunkedEscapeIdempotence: chunked escaping must be byte-identical to
// one-pass escaping, for lengths below and above the chunk threshold and
// with multi-byte runes straddling chunk boundaries.
func TestChunkedEscapeIdempotence(t *testing.T) {
	cases := map[string]string{
		"below_threshold": strings.Repeat("x", 50),
		"at_threshold":    strings.Repeat("x", 128),
		"above_threshold": strings.Repeat("abc\"def\\gh\n", 1000),
		// 2-byte rune é: with chunk size 128 and a 3-char period, the rune
		// lands on every possible offset relative to the chunk boundary.
		"multibyte_2": strings.Repeat("aé", 1000),
		// 4-byte rune straddling boundaries.
		"multibyte_4": strings.Repeat("x🙂", 1000),
		"escapes_at_boundary": strings.Repeat("\\", 1000) + strings.Repeat("\"", 1000),
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			onePass, err := Serialize(strVal(s), Options{ChunkSize: 1 << 30})
			if err != nil {
				t.Fatal(err)
			}
			chunked, err := Serialize(strVal(s), Options{ChunkSize: 128, ChunkYieldEvery: 1})
			if err != nil {
				t.Fatal(err)
			}
			if onePass != chunked {
				t.Error("chunked output differs from one-pass output")
			}
		})
	}
}

func TestSplitChunkRuneAlignment(t *testing.T) {
	s := strings.Repeat("é", 100) // 2 bytes each

	rest := s
	for len(rest) > 0 {
		var chunk string
		chunk, rest = splitChunk(rest, 7) // odd size forces misalignment
		if !utf8.ValidString(chunk) {
			t.Fatalf("chunk splits a rune: %q", chunk)
		}
		if len(chunk) == 0 {
			t.Fatal("empty chunk would loop forever")
		}
	}
}

func TestAppendNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-3, "-3"},
		{2.5, "2.5"},
		{1e15, "1e+15"},
		{999999999999999, "999999999999999"},
	}
	for _, c := range cases {
		if got := string(appendNumber(nil, c.in)); got != c.want {
			t.Errorf("appendNumber(%v): expected %s, got %s", c.in, c.want, got)
		}
	}
}

func strVal(s string) value.String { return value.String(s) }
