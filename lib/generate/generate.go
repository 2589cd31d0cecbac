package generate

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/coopjson/cjson/lib/value"
)

// baseTime anchors generated Time values so output is reproducible.
var baseTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// Flat returns an object with n scalar members of rotating kinds.
func Flat(n int) *value.Object {
	obj := value.NewObject()
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("field_%05d", i)
		switch i % 5 {
		case 0:
			obj.Set(key, value.Number(float64(i)))
		case 1:
			obj.Set(key, value.String(fmt.Sprintf("value-%d", i)))
		case 2:
			obj.Set(key, value.Bool(i%2 == 0))
		case 3:
			obj.Set(key, value.Null{})
		case 4:
			obj.Set(key, value.Time(baseTime.Add(time.Duration(i)*time.Second)))
		}
	}
	return obj
}

// Nested returns a tree of the given depth where every interior object has
// width children. A depth of 0 yields a scalar.
func Nested(depth, width int) value.Value {
	if depth <= 0 {
		return value.Number(float64(depth))
	}
	obj := value.NewObject()
	for i := 0; i < width; i++ {
		obj.Set(fmt.Sprintf("child_%d", i), Nested(depth-1, width))
	}
	return obj
}

// DeepChain returns a linear chain of n single-key objects. Useful for
// producing a large key count without exponential fan-out.
func DeepChain(n int) value.Value {
	var v value.Value = value.String("leaf")
	for i := 0; i < n; i++ {
		v = value.NewObject().Set("next", v)
	}
	return v
}

// WideObject returns an object with n string members. Useful for a large
// key count at depth one.
func WideObject(n int) *value.Object {
	obj := value.NewObject()
	for i := 0; i < n; i++ {
		obj.Set(fmt.Sprintf("key_%06d", i), value.String(fmt.Sprintf("v%d", i)))
	}
	return obj
}

// LongString returns a string of n repetitions of "x".
func LongString(n int) value.String {
	return value.String(strings.Repeat("x", n))
}

// Mixed returns a pseudo-random document of roughly the given node count,
// fully determined by seed.
func Mixed(seed int64, nodes int) value.Value {
	rng := rand.New(rand.NewSource(seed))
	budget := nodes
	return mixedNode(rng, &budget, 0)
}

const maxMixedDepth = 8

func mixedNode(rng *rand.Rand, budget *int, depth int) value.Value {
	*budget--
	if *budget <= 0 || depth >= maxMixedDepth {
		return mixedScalar(rng)
	}

	switch rng.Intn(4) {
	case 0:
		arr := value.NewArray()
		n := 1 + rng.Intn(6)
		for i := 0; i < n && *budget > 0; i++ {
			arr.Append(mixedNode(rng, budget, depth+1))
		}
		return arr
	case 1:
		obj := value.NewObject()
		n := 1 + rng.Intn(6)
		for i := 0; i < n && *budget > 0; i++ {
			obj.Set(fmt.Sprintf("k%d_%d", depth, i), mixedNode(rng, budget, depth+1))
		}
		return obj
	default:
		return mixedScalar(rng)
	}
}

func mixedScalar(rng *rand.Rand) value.Value {
	switch rng.Intn(6) {
	case 0:
		return value.Null{}
	case 1:
		return value.Bool(rng.Intn(2) == 0)
	case 2:
		return value.Number(rng.NormFloat64() * 1000)
	case 3:
		return value.Number(float64(rng.Intn(100000)))
	case 4:
		return value.Time(baseTime.Add(time.Duration(rng.Intn(86400)) * time.Second))
	default:
		return value.String(randomText(rng))
	}
}

func randomText(rng *rand.Rand) string {
	const alphabet = `abcdefghijklmnopqrstuvwxyz "\né🙂`
	runes := []rune(alphabet)
	n := rng.Intn(40)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(runes[rng.Intn(len(runes))])
	}
	return sb.String()
}

// Cyclic returns an object that contains itself (v.self = v) next to some
// ordinary members.
func Cyclic() *value.Object {
	obj := value.NewObject().
		Set("name", value.String("cyclic")).
		Set("count", value.Number(3))
	obj.Set("self", obj)
	return obj
}
