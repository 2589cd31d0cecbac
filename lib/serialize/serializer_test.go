package serialize

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/coopjson/cjson/lib/value"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() ISerializer{
	"Cooperative": func() ISerializer { return NewCooperativeSerializer(DefaultOptions()) },
	"Reference":   func() ISerializer { return NewReferenceSerializer() },
}

// testDocuments creates a set of documents exercising every value variant
func testDocuments() map[string]value.Value {
	return map[string]value.Value{
		"null":    value.Null{},
		"true":    value.Bool(true),
		"number":  value.Number(42.5),
		"string":  value.String("hello"),
		"escapes": value.String("line\nquote\"back\\slash\ttab\x01end"),
		"unicode": value.String("héllo 🙂 wörld"),
		"time":    value.Time(time.Date(2024, 3, 1, 12, 30, 45, 123456789, time.UTC)),
		"empty_array":  value.NewArray(),
		"empty_object": value.NewObject(),
		"array": value.NewArray(
			value.Number(1), value.String("two"), value.Null{}, value.Bool(false),
		),
		"object": value.NewObject().
			Set("b_first", value.Number(1)).
			Set("a_second", value.String("x")).
			Set("nested", value.NewArray(value.Number(2), value.Number(3))),
	}
}

func TestSerializerOutput(t *testing.T) {
	expected := map[string]string{
		"null":         `null`,
		"true":         `true`,
		"number":       `42.5`,
		"string":       `"hello"`,
		"escapes":      `"line\nquote\"back\\slash\ttab\u0001end"`,
		"unicode":      `"héllo 🙂 wörld"`,
		"time":         `"2024-03-01T12:30:45.123Z"`,
		"empty_array":  `[]`,
		"empty_object": `{}`,
		"array":        `[1,"two",null,false]`,
		"object":       `{"b_first":1,"a_second":"x","nested":[2,3]}`,
	}

	docs := testDocuments()
	for serName, factory := range testSerializers {
		t.Run(serName, func(t *testing.T) {
			ser := factory()
			for docName, doc := range docs {
				got, err := ser.Serialize(doc)
				if err != nil {
					t.Fatalf("%s: unexpected error: %v", docName, err)
				}
				if got != expected[docName] {
					t.Errorf("%s: expected %s, got %s", docName, expected[docName], got)
				}
				if !json.Valid([]byte(got)) {
					t.Errorf("%s: output is not valid JSON: %s", docName, got)
				}
			}
		})
	}
}

// TestCooperativeMatchesReference checks byte-identical output for
// cycle-free inputs across both implementations.
func TestCooperativeMatchesReference(t *testing.T) {
	coop := NewCooperativeSerializer(DefaultOptions())
	ref := NewReferenceSerializer()

	for name, doc := range testDocuments() {
		want, err := ref.Serialize(doc)
		if err != nil {
			t.Fatalf("%s: reference: %v", name, err)
		}
		got, err := coop.Serialize(doc)
		if err != nil {
			t.Fatalf("%s: cooperative: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: cooperative output differs from reference\n  ref:  %s\n  coop: %s", name, want, got)
		}
	}
}

// TestRoundTrip re-parses serialized output and compares it structurally to
// the input.
func TestRoundTrip(t *testing.T) {
	doc := value.NewObject().
		Set("name", value.String("round\ntrip")).
		Set("count", value.Number(3)).
		Set("ratio", value.Number(0.25)).
		Set("tags", value.NewArray(value.String("a"), value.String("b"))).
		Set("none", value.Null{})

	text, err := Serialize(doc, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		t.Fatalf("output does not re-parse: %v", err)
	}

	want := map[string]any{
		"name":  "round\ntrip",
		"count": float64(3),
		"ratio": 0.25,
		"tags":  []any{"a", "b"},
		"none":  nil,
	}
	if !reflect.DeepEqual(parsed, want) {
		t.Errorf("round-trip mismatch:\n  want %#v\n  got  %#v", want, parsed)
	}
}

func TestObjectKeyOrderPreserved(t *testing.T) {
	doc := value.NewObject().
		Set("zz", value.Number(1)).
		Set("aa", value.Number(2)).
		Set("mm", value.Number(3))

	text, err := Serialize(doc, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if text != `{"zz":1,"aa":2,"mm":3}` {
		t.Errorf("insertion order not preserved: %s", text)
	}
}

func TestFuncAndAbsentMembers(t *testing.T) {
	doc := value.NewObject().
		Set("keep", value.Number(1)).
		Set("fn", value.Func("callback")).
		Set("absent", nil).
		Set("also", value.Bool(true))

	text, err := Serialize(doc, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if text != `{"keep":1,"also":true}` {
		t.Errorf("expected func/absent members skipped, got %s", text)
	}

	arr := value.NewArray(value.Number(1), value.Func("f"), nil, value.Number(2))
	text, err = Serialize(arr, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if text != `[1,null,null,2]` {
		t.Errorf("expected func/absent elements to degrade to null, got %s", text)
	}
}

func TestNumberFormatting(t *testing.T) {
	cases := map[float64]string{
		0:        "0",
		1:        "1",
		-7:       "-7",
		3.5:      "3.5",
		1e20:     "1e+20",
		0.000125: "0.000125",
	}
	for in, want := range cases {
		got, err := Serialize(value.Number(in), DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Number(%v): expected %s, got %s", in, want, got)
		}
	}
}

func TestCycleSafety(t *testing.T) {
	obj := value.NewObject().Set("name", value.String("cyclic"))
	obj.Set("self", obj)

	text, err := Serialize(obj, DefaultOptions())
	if err != nil {
		t.Fatalf("cycles must not be errors: %v", err)
	}
	if text != `{"name":"cyclic","self":"[Circular]"}` {
		t.Errorf("unexpected cyclic output: %s", text)
	}
}

func TestCycleSafetyArray(t *testing.T) {
	arr := value.NewArray(value.Number(1))
	arr.Append(arr)

	text, err := Serialize(arr, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if text != `[1,"[Circular]"]` {
		t.Errorf("unexpected cyclic output: %s", text)
	}
}

// TestSharedSubtreeIsNotACycle: the same composite reached twice via
// different paths is not on the active path twice, so it must serialize
// normally both times.
func TestSharedSubtreeIsNotACycle(t *testing.T) {
	shared := value.NewObject().Set("x", value.Number(1))
	doc := value.NewObject().
		Set("first", shared).
		Set("second", shared)

	text, err := Serialize(doc, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(text, "[Circular]") {
		t.Errorf("shared subtree flagged as cycle: %s", text)
	}
	if text != `{"first":{"x":1},"second":{"x":1}}` {
		t.Errorf("unexpected output: %s", text)
	}
}

// TestTrackerUnwindsOnError: an error inside a composite must not leave the
// composite marked, or a retry on the same document would report phantom
// cycles.
func TestTrackerUnwindsOnError(t *testing.T) {
	doc := value.NewObject().
		Set("big", value.String(strings.Repeat("y", 4_000_000)))

	// First call aborts almost immediately.
	_, err := Serialize(doc, Options{Timeout: time.Nanosecond, ChunkYieldEvery: 1})
	if err == nil {
		t.Skip("first call completed before the deadline")
	}

	// Retry with no deadline must succeed and contain no sentinel.
	text, err := Serialize(doc, DefaultOptions())
	if err != nil {
		t.Fatalf("retry after abort failed: %v", err)
	}
	if strings.Contains(text, "[Circular]") {
		t.Error("stale tracker state leaked into retry")
	}
}
