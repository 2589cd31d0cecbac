package generate

import (
	"strings"
	"testing"

	"github.com/coopjson/cjson/lib/serialize"
	"github.com/coopjson/cjson/lib/value"
)

func TestFlat(t *testing.T) {
	obj := Flat(10)
	if obj.Len() != 10 {
		t.Fatalf("expected 10 members, got %d", obj.Len())
	}
	kinds := map[value.Kind]bool{}
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		kinds[v.Kind()] = true
	}
	for _, want := range []value.Kind{value.KindNumber, value.KindString, value.KindBool, value.KindNull, value.KindTime} {
		if !kinds[want] {
			t.Errorf("expected a %v member", want)
		}
	}
}

func TestNestedShape(t *testing.T) {
	doc := Nested(3, 2)
	obj, ok := doc.(*value.Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", doc)
	}
	if obj.Len() != 2 {
		t.Fatalf("expected width 2, got %d", obj.Len())
	}

	depth := 0
	for cur := doc; ; depth++ {
		o, ok := cur.(*value.Object)
		if !ok {
			break
		}
		child, _ := o.Get(o.Keys()[0])
		cur = child
	}
	if depth != 3 {
		t.Errorf("expected depth 3, got %d", depth)
	}
}

func TestDeepChain(t *testing.T) {
	doc := DeepChain(5)
	depth := 0
	for cur := doc; ; depth++ {
		o, ok := cur.(*value.Object)
		if !ok {
			break
		}
		next, _ := o.Get("next")
		cur = next
	}
	if depth != 5 {
		t.Errorf("expected chain of 5, got %d", depth)
	}
}

func TestLongString(t *testing.T) {
	s := LongString(1000)
	if len(s) != 1000 || !strings.HasPrefix(string(s), "xxx") {
		t.Errorf("unexpected long string: len=%d", len(s))
	}
}

// TestMixedDeterminism: the same seed must produce byte-identical documents,
// or fixture digests would churn.
func TestMixedDeterminism(t *testing.T) {
	a, err := serialize.Reference(Mixed(42, 500))
	if err != nil {
		t.Fatal(err)
	}
	b, err := serialize.Reference(Mixed(42, 500))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("same seed produced different documents")
	}

	c, err := serialize.Reference(Mixed(43, 500))
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("different seeds produced identical documents")
	}
}

func TestCyclic(t *testing.T) {
	obj := Cyclic()
	self, ok := obj.Get("self")
	if !ok {
		t.Fatal("missing self reference")
	}
	if self != value.Value(obj) {
		t.Error("self member is not the object itself")
	}

	text, err := serialize.Serialize(obj, serialize.DefaultOptions())
	if err != nil {
		t.Fatalf("cyclic document must serialize: %v", err)
	}
	if !strings.Contains(text, `"[Circular]"`) {
		t.Errorf("expected circular sentinel in %s", text)
	}
}
